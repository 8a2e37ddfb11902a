package medevents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"school-health-records/internal/middleware"
	"school-health-records/internal/platform/metrics"
	"school-health-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medical-events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc))
		er.Get("/", listEventsHandler(svc))
		er.Get("/stats", statsHandler(svc))

		er.Get("/{eventID}", getEventHandler(svc))
		er.Patch("/{eventID}", updateEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))

		er.Post("/{eventID}/notify-parent", notifyParentHandler(svc))
	})

	r.Get("/notifications", notificationsHandler(svc))
	r.Get("/catalog", catalogHandler())
}

// createEventRequest es el cuerpo para registrar un nuevo evento médico.
type createEventRequest struct {
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Grade       string `json:"grade"`

	Type    EventType `json:"type" enums:"Injury,Illness,Medical Condition,Infectious Disease,Allergic Reaction,Mental Health,Other"`
	Subtype string    `json:"subtype"`

	OccurredAt string `json:"occurred_at"` // RFC3339 o YYYY-MM-DD; vacío = ahora

	Location    string `json:"location"`
	Description string `json:"description"`

	Severity Severity `json:"severity" enums:"Minor,Moderate,Serious,Severe"`
	Status   Status   `json:"status" enums:"Open,In Progress,Requires Follow-up,Resolved"`

	Treatment string `json:"treatment"`
	TreatedBy string `json:"treated_by"`

	FollowUpRequired bool   `json:"follow_up_required"`
	FollowUpDate     string `json:"follow_up_date"` // YYYY-MM-DD opcional

	Notes string `json:"notes"`
}

// updateEventRequest es un PATCH real: punteros, nil = no tocar.
type updateEventRequest struct {
	StudentName *string `json:"student_name"`
	StudentID   *string `json:"student_id"`
	Grade       *string `json:"grade"`

	Type    *EventType `json:"type"`
	Subtype *string    `json:"subtype"`

	OccurredAt *string `json:"occurred_at"`

	Location    *string `json:"location"`
	Description *string `json:"description"`

	Severity *Severity `json:"severity"`
	Status   *Status   `json:"status"`

	Treatment *string `json:"treatment"`
	TreatedBy *string `json:"treated_by"`

	FollowUpRequired *bool   `json:"follow_up_required"`
	FollowUpDate     *string `json:"follow_up_date"`

	Notes *string `json:"notes"`
}

// eventResponse representa un evento médico devuelto por la API.
type eventResponse struct {
	ID int `json:"id"`

	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Grade       string `json:"grade"`

	Type    EventType `json:"type"`
	Subtype string    `json:"subtype,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`

	Location    string `json:"location,omitempty"`
	Description string `json:"description"`

	Severity Severity `json:"severity"`
	Status   Status   `json:"status"`

	Treatment string `json:"treatment,omitempty"`
	TreatedBy string `json:"treated_by,omitempty"`

	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date,omitempty"`

	ParentNotified bool       `json:"parent_notified"`
	NotifiedAt     *time.Time `json:"notified_at,omitempty"`
	NotifiedBy     string     `json:"notified_by,omitempty"`

	Notes string `json:"notes,omitempty"`
}

type notifyParentResponse struct {
	Event eventResponse `json:"event"`
	// Dispatched = false cuando no hay webhook configurado o el despacho
	// falló (el evento queda marcado igual; el caller decide reintentar).
	Dispatched bool   `json:"dispatched"`
	Error      string `json:"error,omitempty"`
}

// createEventHandler godoc
// @Summary Registrar evento médico
// @Description Registra un nuevo evento médico de un alumno. Requiere rol nurse, manager o admin. Autenticación: `X-Debug-User-ID` + `X-Debug-Role` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags medical-events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Datos del evento; occurred_at RFC3339 o YYYY-MM-DD"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / fechas inválidas / catálogo"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /medical-events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		if !claims.Role.CanRecord() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var occurred time.Time
		if strings.TrimSpace(req.OccurredAt) != "" {
			t, err := parseWhen(req.OccurredAt)
			if err != nil {
				http.Error(w, "occurred_at must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			occurred = t
		}

		var followUpDate *time.Time
		if strings.TrimSpace(req.FollowUpDate) != "" {
			t, err := time.Parse("2006-01-02", req.FollowUpDate)
			if err != nil {
				http.Error(w, "follow_up_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			followUpDate = &t
		}

		e, err := svc.Create(r.Context(), CreateInput{
			StudentName:      req.StudentName,
			StudentID:        req.StudentID,
			Grade:            req.Grade,
			Type:             req.Type,
			Subtype:          req.Subtype,
			OccurredAt:       occurred,
			Location:         req.Location,
			Description:      req.Description,
			Severity:         req.Severity,
			Status:           req.Status,
			Treatment:        req.Treatment,
			TreatedBy:        req.TreatedBy,
			FollowUpRequired: req.FollowUpRequired,
			FollowUpDate:     followUpDate,
			Notes:            req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordEventCreated(string(e.Type), string(e.Severity))
		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos médicos
// @Description Lista eventos médicos con filtros opcionales combinados con AND. Los resultados preservan el orden de inserción. Requiere usuario autenticado (cualquier rol).
// @Tags medical-events
// @Produce json
// @Param student_id query string false "Igualdad exacta sobre student_id"
// @Param type query string false "Tipo de evento (valor canónico del catálogo)"
// @Param severity query string false "Severidad (Minor|Moderate|Serious|Severe)"
// @Param status query string false "Estado (Open|In Progress|Requires Follow-up|Resolved)"
// @Param from query string false "Fecha mínima YYYY-MM-DD (inclusive, ignora hora)"
// @Param to query string false "Fecha máxima YYYY-MM-DD (inclusive, ignora hora)"
// @Param follow_up_required query bool false "Solo eventos con (o sin) seguimiento pendiente"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /medical-events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Obtener evento médico por id
// @Tags medical-events
// @Produce json
// @Param eventID path int true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /medical-events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		id, err := eventID(r)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// updateEventHandler godoc
// @Summary Actualizar evento médico (merge parcial)
// @Description Aplica un merge superficial: solo los campos enviados cambian, el resto se preserva. Requiere rol nurse, manager o admin.
// @Tags medical-events
// @Accept json
// @Produce json
// @Param eventID path int true "ID del evento"
// @Param payload body updateEventRequest true "Campos a modificar"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "invalid json / catálogo"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /medical-events/{eventID} [patch]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		if !claims.Role.CanRecord() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		id, err := eventID(r)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		var req updateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			StudentName:      req.StudentName,
			StudentID:        req.StudentID,
			Grade:            req.Grade,
			Type:             req.Type,
			Subtype:          req.Subtype,
			Location:         req.Location,
			Description:      req.Description,
			Severity:         req.Severity,
			Status:           req.Status,
			Treatment:        req.Treatment,
			TreatedBy:        req.TreatedBy,
			FollowUpRequired: req.FollowUpRequired,
			Notes:            req.Notes,
		}

		if req.OccurredAt != nil {
			t, err := parseWhen(*req.OccurredAt)
			if err != nil {
				http.Error(w, "occurred_at must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.OccurredAt = &t
		}
		if req.FollowUpDate != nil {
			t, err := time.Parse("2006-01-02", *req.FollowUpDate)
			if err != nil {
				http.Error(w, "follow_up_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.FollowUpDate = &t
		}

		e, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "event not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Eliminar evento médico
// @Description Elimina el registro. Requiere rol manager o admin.
// @Tags medical-events
// @Param eventID path int true "ID del evento"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /medical-events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		if !claims.Role.CanManage() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		id, err := eventID(r)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// statsHandler godoc
// @Summary Estadísticas de eventos médicos
// @Description Conteos descriptivos sobre el rango de fechas indicado (o todo el registro si no se acota). Solo conteos crudos; porcentajes son tema del cliente.
// @Tags medical-events
// @Produce json
// @Param from query string false "Fecha mínima YYYY-MM-DD (inclusive)"
// @Param to query string false "Fecha máxima YYYY-MM-DD (inclusive)"
// @Success 200 {object} Stats
// @Failure 400 {string} string "fechas inválidas"
// @Failure 401 {string} string "unauthorized"
// @Router /medical-events/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		filter := Filter{}
		if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.DateFrom = &t
		}
		if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.DateTo = &t
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, Summarize(items))
	}
}

// notificationsHandler godoc
// @Summary Feed de notificaciones
// @Description Eventos que requieren atención: seguimiento pendiente más abiertos de severidad Serious/Severe, deduplicados, más reciente primero, acotados a limit (default 5). Un feed vacío es un estado válido.
// @Tags medical-events
// @Produce json
// @Param limit query int false "Máximo de eventos a devolver (default 5)"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Router /notifications [get]
func notificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		items, err := svc.SelectNotifications(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		metrics.RecordNotificationFeed(len(items))

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// notifyParentHandler godoc
// @Summary Notificar al apoderado
// @Description Marca el evento como notificado (notified_at = ahora, notified_by = usuario) y despacha el aviso por webhook si está configurado. Requiere rol nurse, manager o admin.
// @Tags medical-events
// @Produce json
// @Param eventID path int true "ID del evento"
// @Success 200 {object} notifyParentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /medical-events/{eventID}/notify-parent [post]
func notifyParentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		if !claims.Role.CanRecord() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		id, err := eventID(r)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		e, dispatched, err := svc.NotifyParent(r.Context(), id, claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			// El evento quedó marcado pero el despacho falló.
			if e.ID != 0 {
				writeJSON(w, http.StatusOK, notifyParentResponse{
					Event:      toEventResponse(e),
					Dispatched: false,
					Error:      err.Error(),
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, notifyParentResponse{
			Event:      toEventResponse(e),
			Dispatched: dispatched,
		})
	}
}

// catalogHandler godoc
// @Summary Catálogo de vocabulario
// @Description Tipos, subtipos por tipo, severidades y estados permitidos. Público: lo consumen los formularios antes de autenticarse.
// @Tags catalog
// @Produce json
// @Success 200 {object} Catalog
// @Router /catalog [get]
func catalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, GetCatalog())
	}
}

func requireClaims(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, false
	}
	return claims, true
}

func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()

	filter := Filter{
		StudentID: strings.TrimSpace(q.Get("student_id")),
		Type:      EventType(strings.TrimSpace(q.Get("type"))),
		Severity:  Severity(strings.TrimSpace(q.Get("severity"))),
		Status:    Status(strings.TrimSpace(q.Get("status"))),
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Filter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.DateFrom = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Filter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.DateTo = &t
	}
	if v := strings.TrimSpace(q.Get("follow_up_required")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Filter{}, errors.New("follow_up_required must be true or false")
		}
		filter.FollowUpRequired = &b
	}

	return filter, nil
}

// parseWhen acepta RFC3339 o fecha sola (que normaliza a medianoche UTC).
func parseWhen(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", v)
}

func eventID(r *http.Request) (int, error) {
	return strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "eventID")))
}

func toEventResponse(e MedicalEvent) eventResponse {
	return eventResponse{
		ID:               e.ID,
		StudentName:      e.StudentName,
		StudentID:        e.StudentID,
		Grade:            e.Grade,
		Type:             e.Type,
		Subtype:          e.Subtype,
		OccurredAt:       e.OccurredAt,
		RecordedAt:       e.RecordedAt,
		Location:         e.Location,
		Description:      e.Description,
		Severity:         e.Severity,
		Status:           e.Status,
		Treatment:        e.Treatment,
		TreatedBy:        e.TreatedBy,
		FollowUpRequired: e.FollowUpRequired,
		FollowUpDate:     e.FollowUpDate,
		ParentNotified:   e.ParentNotified,
		NotifiedAt:       e.NotifiedAt,
		NotifiedBy:       e.NotifiedBy,
		Notes:            e.Notes,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package campaigns

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"school-health-records/internal/middleware"
	"school-health-records/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/campaigns", func(cr chi.Router) {
		cr.Post("/", createCampaignHandler(svc))
		cr.Get("/", listCampaignsHandler(svc))
		cr.Get("/{campaignID}", getCampaignHandler(svc))

		cr.Post("/{campaignID}/schedule", scheduleCampaignHandler(svc))
		cr.Post("/{campaignID}/start", transitionHandler(svc, "start"))
		cr.Post("/{campaignID}/complete", transitionHandler(svc, "complete"))
		cr.Post("/{campaignID}/cancel", transitionHandler(svc, "cancel"))
	})
}

type createCampaignRequest struct {
	Kind         Kind     `json:"kind" enums:"vaccination,health_check"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	TargetGrades []string `json:"target_grades"`
}

type scheduleCampaignRequest struct {
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
}

type campaignResponse struct {
	ID            string     `json:"id"`
	Kind          Kind       `json:"kind"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	TargetGrades  []string   `json:"target_grades"`
	Status        Status     `json:"status"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// createCampaignHandler godoc
// @Summary Crear campaña
// @Description Crea una campaña de vacunación o chequeo de salud en estado draft. Requiere rol nurse, manager o admin.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param payload body createCampaignRequest true "Datos de la campaña"
// @Success 201 {object} campaignResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /campaigns [post]
func createCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.Role.CanRecord() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Kind:         req.Kind,
			Name:         req.Name,
			Description:  req.Description,
			TargetGrades: req.TargetGrades,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toCampaignResponse(c))
	}
}

// listCampaignsHandler godoc
// @Summary Listar campañas
// @Tags campaigns
// @Produce json
// @Param kind query string false "vaccination | health_check"
// @Param status query string false "draft | scheduled | in_progress | completed | cancelled"
// @Success 200 {array} campaignResponse
// @Failure 401 {string} string "unauthorized"
// @Router /campaigns [get]
func listCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Kind:   Kind(strings.TrimSpace(q.Get("kind"))),
			Status: Status(strings.TrimSpace(q.Get("status"))),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]campaignResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCampaignResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getCampaignHandler godoc
// @Summary Obtener campaña por id
// @Tags campaigns
// @Produce json
// @Param campaignID path string true "ID de la campaña"
// @Success 200 {object} campaignResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "campaign not found"
// @Router /campaigns/{campaignID} [get]
func getCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "campaignID"))
		if err != nil {
			http.Error(w, "campaign not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// scheduleCampaignHandler godoc
// @Summary Programar campaña
// @Description draft -> scheduled, fijando la fecha. Requiere rol nurse, manager o admin.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaignID path string true "ID de la campaña"
// @Param payload body scheduleCampaignRequest true "Fecha programada YYYY-MM-DD"
// @Success 200 {object} campaignResponse
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "campaign not found"
// @Failure 409 {string} string "transición inválida"
// @Router /campaigns/{campaignID}/schedule [post]
func scheduleCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.Role.CanRecord() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req scheduleCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(req.ScheduledDate))
		if err != nil {
			http.Error(w, "scheduled_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		c, err := svc.Schedule(r.Context(), chi.URLParam(r, "campaignID"), date)
		if err != nil {
			writeTransitionError(w, err)
			return
		}

		metrics.RecordCampaignTransition(string(StatusDraft), string(c.Status))
		writeJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// transitionHandler godoc
// @Summary Transicionar campaña (start | complete | cancel)
// @Description start: scheduled -> in_progress; complete: in_progress -> completed; cancel: cualquier estado no terminal. Requiere rol nurse, manager o admin.
// @Tags campaigns
// @Produce json
// @Param campaignID path string true "ID de la campaña"
// @Success 200 {object} campaignResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "campaign not found"
// @Failure 409 {string} string "transición inválida"
// @Router /campaigns/{campaignID}/start [post]
func transitionHandler(svc *Service, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.Role.CanRecord() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		id := chi.URLParam(r, "campaignID")

		before, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "campaign not found", http.StatusNotFound)
			return
		}

		var c Campaign
		switch action {
		case "start":
			c, err = svc.Start(r.Context(), id)
		case "complete":
			c, err = svc.Complete(r.Context(), id)
		case "cancel":
			c, err = svc.Cancel(r.Context(), id)
		default:
			http.Error(w, "unknown action", http.StatusNotFound)
			return
		}
		if err != nil {
			writeTransitionError(w, err)
			return
		}

		metrics.RecordCampaignTransition(string(before.Status), string(c.Status))
		writeJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

func writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, ErrBadTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toCampaignResponse(c Campaign) campaignResponse {
	grades := c.TargetGrades
	if grades == nil {
		grades = []string{}
	}
	return campaignResponse{
		ID:            c.ID,
		Kind:          c.Kind,
		Name:          c.Name,
		Description:   c.Description,
		ScheduledDate: c.ScheduledDate,
		TargetGrades:  grades,
		Status:        c.Status,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

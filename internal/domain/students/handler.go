package students

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"school-health-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/students", func(sr chi.Router) {
		sr.Post("/", createStudentHandler(svc))
		sr.Get("/", listStudentsHandler(svc))
		sr.Get("/{studentID}", getStudentHandler(svc))
		sr.Patch("/{studentID}", updateStudentHandler(svc))
	})
}

type createStudentRequest struct {
	Code        string `json:"code"`
	FullName    string `json:"full_name"`
	Grade       string `json:"grade"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD opcional
	ParentName  string `json:"parent_name"`
	ParentPhone string `json:"parent_phone"`
}

type updateStudentRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Code        *string `json:"code"`
	FullName    *string `json:"full_name"`
	Grade       *string `json:"grade"`
	Gender      *string `json:"gender"`
	BirthDate   *string `json:"birth_date"` // YYYY-MM-DD
	ParentName  *string `json:"parent_name"`
	ParentPhone *string `json:"parent_phone"`
	Active      *bool   `json:"active"`
}

type studentResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	FullName    string     `json:"full_name"`
	Grade       string     `json:"grade"`
	Gender      Gender     `json:"gender,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	ParentName  string     `json:"parent_name,omitempty"`
	ParentPhone string     `json:"parent_phone,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// createStudentHandler godoc
// @Summary Registrar alumno
// @Description Alta de alumno en el registro del portal. Requiere rol nurse, manager o admin.
// @Tags students
// @Accept json
// @Produce json
// @Param payload body createStudentRequest true "Datos del alumno"
// @Success 201 {object} studentResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /students [post]
func createStudentHandler(svc *Service) http.HandlerFunc {
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

		var req createStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		st, err := svc.Create(r.Context(), CreateInput{
			Code:        req.Code,
			FullName:    req.FullName,
			Grade:       req.Grade,
			Gender:      req.Gender,
			BirthDate:   bd,
			ParentName:  req.ParentName,
			ParentPhone: req.ParentPhone,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toStudentResponse(st))
	}
}

// listStudentsHandler godoc
// @Summary Listar alumnos
// @Tags students
// @Produce json
// @Param q query string false "Búsqueda libre sobre nombre/código"
// @Param grade query string false "Curso exacto, ej. 5A"
// @Param active query bool false "Solo activos (true) o inactivos (false)"
// @Success 200 {array} studentResponse
// @Failure 401 {string} string "unauthorized"
// @Router /students [get]
func listStudentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		filter := ListFilter{
			Search: strings.TrimSpace(q.Get("q")),
			Grade:  strings.TrimSpace(q.Get("grade")),
		}
		if v := strings.TrimSpace(q.Get("active")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "active must be true or false", http.StatusBadRequest)
				return
			}
			filter.Active = &b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]studentResponse, 0, len(items))
		for _, st := range items {
			out = append(out, toStudentResponse(st))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getStudentHandler godoc
// @Summary Obtener alumno por id
// @Tags students
// @Produce json
// @Param studentID path string true "ID del alumno"
// @Success 200 {object} studentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "student not found"
// @Router /students/{studentID} [get]
func getStudentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.GetByID(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toStudentResponse(st))
	}
}

// updateStudentHandler godoc
// @Summary Actualizar alumno (merge parcial)
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path string true "ID del alumno"
// @Param payload body updateStudentRequest true "Campos a modificar"
// @Success 200 {object} studentResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "student not found"
// @Router /students/{studentID} [patch]
func updateStudentHandler(svc *Service) http.HandlerFunc {
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

		var req updateStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Code:        req.Code,
			FullName:    req.FullName,
			Grade:       req.Grade,
			Gender:      req.Gender,
			ParentName:  req.ParentName,
			ParentPhone: req.ParentPhone,
			Active:      req.Active,
		}
		if req.BirthDate != nil {
			t, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.BirthDate = &t
		}

		st, err := svc.Update(r.Context(), chi.URLParam(r, "studentID"), in)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "student not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toStudentResponse(st))
	}
}

func toStudentResponse(st Student) studentResponse {
	return studentResponse{
		ID:          st.ID,
		Code:        st.Code,
		FullName:    st.FullName,
		Grade:       st.Grade,
		Gender:      st.Gender,
		BirthDate:   st.BirthDate,
		ParentName:  st.ParentName,
		ParentPhone: st.ParentPhone,
		Active:      st.Active,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

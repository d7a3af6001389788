package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pet-clinic-site/internal/middleware"
	"pet-clinic-site/internal/platform/notify"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de mascotas. search puede ser nil.
func RegisterRoutes(r chi.Router, svc *Service, notices *notify.Center, search http.Handler) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, notices))
		pr.Delete("/", clearPetsHandler(svc, notices))

		// Proyección para la tabla (filas + avisos vigentes)
		pr.Get("/view", viewHandler(svc, notices))

		if search != nil {
			pr.Handle("/search/ws", search)
		}

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, notices))
		pr.Delete("/{petID}", deletePetHandler(svc, notices))
	})
}

type petRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     formAge `json:"age"`
	Owner   string  `json:"owner"`
	Notes   string  `json:"notes"`
}

func (req petRequest) input() CreateInput {
	return CreateInput{
		Name:    req.Name,
		Species: req.Species,
		Age:     string(req.Age),
		Owner:   req.Owner,
		Notes:   req.Notes,
	}
}

// formAge acepta número o string, igual que un <input> del formulario.
// La coerción a número la hace ParseAge.
type formAge string

func (a *formAge) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = formAge(s)
		return nil
	}
	*a = formAge(raw)
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type viewResponse struct {
	View    ViewModel       `json:"view"`
	Notices []notify.Notice `json:"notices"`
}

// listPetsHandler godoc
// @Summary  Lista mascotas filtradas
// @Tags     pets
// @Produce  json
// @Param    species  query  string  false  "Especie exacta o all"
// @Param    q        query  string  false  "Texto en nombre o dueño"
// @Success  200  {array}  Pet
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), filterFromQuery(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createPetHandler godoc
// @Summary  Registra una mascota
// @Tags     pets
// @Accept   json
// @Produce  json
// @Success  201  {object}  Pet
// @Failure  400  {object}  errorResponse
// @Router   /pets [post]
func createPetHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			writeServiceError(w, notices, err)
			return
		}

		notices.Status(notify.LevelSuccess, fmt.Sprintf("%s fue registrada correctamente", p.Name))
		notices.Toast(notify.LevelSuccess, "Mascota registrada")
		writeJSON(w, http.StatusCreated, p)
	}
}

// getPetHandler godoc
// @Summary  Devuelve una mascota (prellenado del formulario de edición)
// @Tags     pets
// @Produce  json
// @Param    petID  path  int  true  "ID"
// @Success  200  {object}  Pet
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary  Edita una mascota existente
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    petID  path  int  true  "ID"
// @Success  200  {object}  Pet
// @Failure  400  {object}  errorResponse
// @Router   /pets/{petID} [put]
func updatePetHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		p, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			writeServiceError(w, notices, err)
			return
		}

		notices.Status(notify.LevelSuccess, fmt.Sprintf("%s fue actualizada", p.Name))
		writeJSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary  Elimina una mascota (requiere X-Confirm: yes)
// @Tags     pets
// @Param    petID  path  int  true  "ID"
// @Success  204
// @Failure  428  {string}  string  "confirmation required"
// @Router   /pets/{petID} [delete]
func deletePetHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.RemoveConfirmed(r.Context(), id, middleware.Confirmer(r.Context())); err != nil {
			writeServiceError(w, notices, err)
			return
		}

		notices.Toast(notify.LevelSuccess, "Mascota eliminada")
		w.WriteHeader(http.StatusNoContent)
	}
}

// clearPetsHandler godoc
// @Summary  Borra todos los registros (requiere X-Confirm: yes)
// @Tags     pets
// @Success  204
// @Failure  428  {string}  string  "confirmation required"
// @Router   /pets [delete]
func clearPetsHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearAllConfirmed(r.Context(), middleware.Confirmer(r.Context())); err != nil {
			writeServiceError(w, notices, err)
			return
		}

		notices.Status(notify.LevelInfo, "Se eliminaron todos los registros")
		w.WriteHeader(http.StatusNoContent)
	}
}

// viewHandler godoc
// @Summary  Vista de la tabla: filas filtradas + avisos vigentes
// @Tags     pets
// @Produce  json
// @Param    species  query  string  false  "Especie exacta o all"
// @Param    q        query  string  false  "Texto en nombre o dueño"
// @Success  200  {object}  viewResponse
// @Router   /pets/view [get]
func viewHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.List(r.Context(), Filter{})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, viewResponse{
			View:    Render(all, filterFromQuery(r)),
			Notices: notices.Active(),
		})
	}
}

func writeServiceError(w http.ResponseWriter, notices *notify.Center, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		notices.Status(notify.LevelError, verr.Message)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotConfirmed):
		http.Error(w, "confirmation required", http.StatusPreconditionRequired)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()
	return Filter{
		Species: Species(q.Get("species")),
		Query:   q.Get("q"),
	}
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid pet id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/users/theme)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

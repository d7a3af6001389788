package theme

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/theme", getThemeHandler(svc))
	r.Put("/theme", setThemeHandler(svc))
	r.Post("/theme/toggle", toggleThemeHandler(svc))
}

type themeBody struct {
	Theme Theme `json:"theme"`
}

// getThemeHandler godoc
// @Summary  Tema actual
// @Tags     theme
// @Produce  json
// @Success  200  {object}  themeBody
// @Router   /theme [get]
func getThemeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, themeBody{Theme: t})
	}
}

// setThemeHandler godoc
// @Summary  Cambia el tema (light|dark)
// @Tags     theme
// @Accept   json
// @Produce  json
// @Success  200  {object}  themeBody
// @Router   /theme [put]
func setThemeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Set(r.Context(), req.Theme)
		if err != nil {
			if errors.Is(err, ErrInvalidTheme) {
				http.Error(w, "theme must be light or dark", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, themeBody{Theme: t})
	}
}

// toggleThemeHandler godoc
// @Summary  Alterna entre light y dark
// @Tags     theme
// @Produce  json
// @Success  200  {object}  themeBody
// @Router   /theme/toggle [post]
func toggleThemeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Toggle(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, themeBody{Theme: t})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

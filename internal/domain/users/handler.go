package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"pet-clinic-site/internal/platform/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, notices *notify.Center) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, notices))
		ar.Post("/login", loginHandler(svc, notices))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User    Public `json:"user"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// registerHandler godoc
// @Summary  Crea una cuenta
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  201  {object}  authResponse
// @Failure  400  {object}  errorResponse
// @Failure  409  {object}  errorResponse
// @Router   /auth/register [post]
func registerHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		u, err := svc.Register(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrPasswordMismatch):
				notices.Status(notify.LevelError, "Las contraseñas no coinciden")
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			case errors.Is(err, ErrPasswordTooLong):
				notices.Status(notify.LevelError, "La contraseña es demasiado larga")
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "password"})
			case errors.Is(err, ErrInvalidInput):
				notices.Status(notify.LevelError, "Completa todos los campos")
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			case errors.Is(err, ErrDuplicateUser):
				notices.Status(notify.LevelError, "Este correo ya está registrado")
				writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		msg := "Cuenta creada con éxito"
		notices.Toast(notify.LevelSuccess, msg)
		writeJSON(w, http.StatusCreated, authResponse{User: u.Public(), Message: msg})
	}
}

// loginHandler godoc
// @Summary  Inicia sesión
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  200  {object}  authResponse
// @Failure  401  {object}  errorResponse
// @Router   /auth/login [post]
func loginHandler(svc *Service, notices *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				notices.Status(notify.LevelError, "Credenciales incorrectas")
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		msg := fmt.Sprintf("¡Bienvenido, %s!", u.FullName)
		notices.Toast(notify.LevelSuccess, msg)
		writeJSON(w, http.StatusOK, authResponse{User: u.Public(), Message: msg})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

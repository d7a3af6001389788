package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-clinic-site/internal/ports/confirm"
)

type ctxKey string

const confirmedKey ctxKey = "confirmed"

// Confirmation lee la respuesta del usuario a "¿seguro?" para acciones
// destructivas. Se acepta el header X-Confirm o el query param confirm.
// No corta el request: el servicio decide si la acción requería confirmación.
func Confirmation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Header.Get("X-Confirm")
		if v == "" {
			v = r.URL.Query().Get("confirm")
		}

		ctx := context.WithValue(r.Context(), confirmedKey, isYes(v))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func Confirmed(ctx context.Context) bool {
	v, _ := ctx.Value(confirmedKey).(bool)
	return v
}

// Confirmer responde con lo que trajo el request; el prompt se ignora
// porque en HTTP la pregunta ya la hizo el cliente.
func Confirmer(ctx context.Context) confirm.Confirmer {
	return confirm.Always(Confirmed(ctx))
}

func isYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1", "si", "sí":
		return true
	}
	return false
}

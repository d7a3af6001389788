package kv

import "context"

// Store es el medio persistente clave/valor (hace el papel de localStorage
// en el navegador). Todos los valores son strings.
type Store interface {
	// Get devuelve (valor, true, nil) si la key existe; ("", false, nil) si no.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete no falla si la key no existe.
	Delete(ctx context.Context, key string) error
}

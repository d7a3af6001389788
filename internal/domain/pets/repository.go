package pets

import "context"

// Repository guarda la colección completa. No hay escrituras parciales:
// toda mutación es LoadAll -> cambio en memoria -> SaveAll.
type Repository interface {
	// LoadAll devuelve vacío si no hay nada guardado o si el contenido está corrupto.
	LoadAll(ctx context.Context) ([]Pet, error)
	SaveAll(ctx context.Context, list []Pet) error
	Clear(ctx context.Context) error
}

package confirm

import "context"

// Confirmer es la capacidad externa de pedir un sí/no antes de una acción
// destructiva (prompt en CLI, header en HTTP).
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Func adapta una función a Confirmer.
type Func func(ctx context.Context, prompt string) (bool, error)

func (f Func) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Always responde siempre lo mismo (p.ej. --yes en el CLI).
type Always bool

func (a Always) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

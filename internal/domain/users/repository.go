package users

import "context"

type Repository interface {
	LoadAll(ctx context.Context) ([]User, error)
	SaveAll(ctx context.Context, list []User) error
}

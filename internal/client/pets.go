// Package client habla con la API HTTP de mascotas. Los errores se traducen
// a los sentinels de pets para que el CLI los trate igual en modo local y remoto.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pet-clinic-site/internal/domain/pets"
	"pet-clinic-site/internal/platform/httpclient"
	"pet-clinic-site/internal/ports/confirm"
)

var ErrRemoteImport = errors.New("import is only supported against a local store")

type Pets struct {
	http *httpclient.Client
}

func NewPets(baseURL string, timeout time.Duration) (*Pets, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Pets{http: c}, nil
}

type petBody struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     string `json:"age"`
	Owner   string `json:"owner"`
	Notes   string `json:"notes,omitempty"`
}

func bodyOf(in pets.CreateInput) petBody {
	return petBody{Name: in.Name, Species: in.Species, Age: in.Age, Owner: in.Owner, Notes: in.Notes}
}

func (c *Pets) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	q := url.Values{}
	if f.Species != "" {
		q.Set("species", string(f.Species))
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	path := "/pets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (c *Pets) Get(ctx context.Context, id int64) (pets.Pet, error) {
	var p pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, petPath(id), nil, nil, &p); err != nil {
		return pets.Pet{}, translate(err)
	}
	return p, nil
}

func (c *Pets) Create(ctx context.Context, in pets.CreateInput) (pets.Pet, error) {
	var p pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets", nil, bodyOf(in), &p); err != nil {
		return pets.Pet{}, translate(err)
	}
	return p, nil
}

func (c *Pets) Update(ctx context.Context, id int64, in pets.CreateInput) (pets.Pet, error) {
	var p pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodPut, petPath(id), nil, bodyOf(in), &p); err != nil {
		return pets.Pet{}, translate(err)
	}
	return p, nil
}

// RemoveConfirmed pregunta localmente y, si la respuesta es sí, manda
// X-Confirm al server.
func (c *Pets) RemoveConfirmed(ctx context.Context, id int64, conf confirm.Confirmer) error {
	p, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := ask(ctx, conf, fmt.Sprintf("¿Eliminar a %s (#%d)?", p.Name, p.ID)); err != nil {
		return err
	}
	return translate(c.http.DoJSON(ctx, http.MethodDelete, petPath(id), confirmed(), nil, nil))
}

func (c *Pets) ClearAllConfirmed(ctx context.Context, conf confirm.Confirmer) error {
	if err := ask(ctx, conf, "¿Eliminar todos los registros?"); err != nil {
		return err
	}
	return translate(c.http.DoJSON(ctx, http.MethodDelete, "/pets", confirmed(), nil, nil))
}

func (c *Pets) Replace(context.Context, []pets.Pet) error {
	return ErrRemoteImport
}

func petPath(id int64) string { return "/pets/" + strconv.FormatInt(id, 10) }

func confirmed() map[string]string { return map[string]string{"X-Confirm": "yes"} }

func ask(ctx context.Context, conf confirm.Confirmer, prompt string) error {
	if conf == nil {
		return pets.ErrNotConfirmed
	}
	ok, err := conf.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return pets.ErrNotConfirmed
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var herr *httpclient.HTTPError
	if !errors.As(err, &herr) {
		return err
	}

	switch herr.StatusCode {
	case http.StatusBadRequest:
		if herr.Field != "" {
			return &pets.ValidationError{Field: herr.Field, Message: herr.Message}
		}
		return fmt.Errorf("%w: %s", pets.ErrInvalidInput, herr.Message)
	case http.StatusNotFound:
		return pets.ErrNotFound
	case http.StatusPreconditionRequired:
		return pets.ErrNotConfirmed
	}
	return err
}

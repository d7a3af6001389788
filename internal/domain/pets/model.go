package pets

import (
	"bytes"
	"encoding/json"
	"time"
)

// Species define las especies que ofrece el formulario.
// @Enum Perro, Gato, Ave, Conejo, Otro
type Species string

const (
	SpeciesDog    Species = "Perro"
	SpeciesCat    Species = "Gato"
	SpeciesBird   Species = "Ave"
	SpeciesRabbit Species = "Conejo"
	SpeciesOther  Species = "Otro"

	// SpeciesAll no es una especie: en filtros desactiva el chequeo.
	SpeciesAll Species = "all"
)

// KnownSpecies en el orden en que se muestran en el selector.
var KnownSpecies = []Species{SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther}

// Pet es un registro de paciente. Se persiste como parte de un único array JSON.
type Pet struct {
	ID      int64   `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Species Species `json:"species" yaml:"species"`
	Age     float64 `json:"age" yaml:"age"`
	Owner   string  `json:"owner" yaml:"owner"`
	Notes   string  `json:"notes,omitempty" yaml:"notes,omitempty"`

	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// UnmarshalJSON acepta age como número o como string: los registros que
// escribió el formulario del navegador guardan "age":"2".
func (p *Pet) UnmarshalJSON(b []byte) error {
	type plain Pet
	aux := struct {
		*plain
		Age json.RawMessage `json:"age"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Age)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		p.Age = 0
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		p.Age = ParseAge(s)
	default:
		p.Age = ParseAge(string(raw))
	}
	return nil
}

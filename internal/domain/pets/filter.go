package pets

import "strings"

// Filter combina especie exacta (o "all") con búsqueda libre en nombre/dueño.
type Filter struct {
	Species Species `json:"species"`
	Query   string  `json:"q"`
}

// Matches reporta si p pasa el filtro.
func (f Filter) Matches(p Pet) bool {
	sp := Species(strings.TrimSpace(string(f.Species)))
	if sp != "" && sp != SpeciesAll && p.Species != sp {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Owner), q)
}

// Apply devuelve los registros que pasan el filtro, en el mismo orden de entrada.
func (f Filter) Apply(all []Pet) []Pet {
	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

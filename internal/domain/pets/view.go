package pets

import (
	"strconv"
	"strings"
)

const (
	emptyStoreMessage  = "Aún no hay mascotas registradas."
	emptyFilterMessage = "Ninguna mascota coincide con el filtro."
)

// ViewModel es la proyección que consume la tabla de la UI.
type ViewModel struct {
	Rows         []RowView       `json:"rows"`
	Total        int             `json:"total"`
	Shown        int             `json:"shown"`
	EmptyMessage string          `json:"empty_message,omitempty"`
	Filter       Filter          `json:"filter"`
	Species      []SpeciesOption `json:"species"`
}

type RowView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Age       string `json:"age"`
	Owner     string `json:"owner"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

type SpeciesOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Render proyecta la colección completa + filtro a lo que muestra la tabla.
// No tiene efectos secundarios.
func Render(all []Pet, f Filter) ViewModel {
	shown := f.Apply(all)

	rows := make([]RowView, 0, len(shown))
	for _, p := range shown {
		rows = append(rows, RowView{
			ID:        p.ID,
			Name:      p.Name,
			Species:   string(p.Species),
			Age:       AgeLabel(p.Age),
			Owner:     p.Owner,
			Notes:     p.Notes,
			CreatedAt: p.CreatedAt.Format("2006-01-02"),
		})
	}

	vm := ViewModel{
		Rows:    rows,
		Total:   len(all),
		Shown:   len(rows),
		Filter:  f,
		Species: speciesOptions(f.Species),
	}
	switch {
	case len(all) == 0:
		vm.EmptyMessage = emptyStoreMessage
	case len(rows) == 0:
		vm.EmptyMessage = emptyFilterMessage
	}
	return vm
}

// AgeLabel muestra enteros sin decimales y el resto con uno.
func AgeLabel(age float64) string {
	if age == float64(int64(age)) {
		return strconv.FormatInt(int64(age), 10)
	}
	return strconv.FormatFloat(age, 'f', 1, 64)
}

func speciesOptions(selected Species) []SpeciesOption {
	sel := Species(strings.TrimSpace(string(selected)))
	if sel == "" {
		sel = SpeciesAll
	}

	out := make([]SpeciesOption, 0, len(KnownSpecies)+1)
	out = append(out, SpeciesOption{Value: string(SpeciesAll), Label: "Todas", Selected: sel == SpeciesAll})
	for _, sp := range KnownSpecies {
		out = append(out, SpeciesOption{Value: string(sp), Label: string(sp), Selected: sel == sp})
	}
	return out
}

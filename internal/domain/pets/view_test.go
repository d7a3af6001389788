package pets

import (
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	all := samplePets()
	all[0].Age = 2
	all[1].Age = 1.5
	all[0].CreatedAt = time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)

	vm := Render(all, Filter{Species: SpeciesCat})
	if vm.Total != 3 || vm.Shown != 1 {
		t.Fatalf("expected total 3 shown 1, got %d/%d", vm.Total, vm.Shown)
	}
	if vm.EmptyMessage != "" {
		t.Fatalf("unexpected empty message %q", vm.EmptyMessage)
	}
	row := vm.Rows[0]
	if row.Name != "Luna" || row.Age != "2" || row.CreatedAt != "2024-05-01" {
		t.Fatalf("unexpected row %+v", row)
	}

	var selected []string
	for _, opt := range vm.Species {
		if opt.Selected {
			selected = append(selected, opt.Value)
		}
	}
	if len(selected) != 1 || selected[0] != "Gato" {
		t.Fatalf("expected only Gato selected, got %v", selected)
	}
	if len(vm.Species) != len(KnownSpecies)+1 {
		t.Fatalf("expected all + known species, got %d options", len(vm.Species))
	}
}

func TestRender_EmptyStates(t *testing.T) {
	vm := Render(nil, Filter{})
	if vm.EmptyMessage != emptyStoreMessage || vm.Rows == nil {
		t.Fatalf("expected empty store message and non-nil rows, got %+v", vm)
	}
	if !vm.Species[0].Selected {
		t.Fatalf("expected 'all' selected by default")
	}

	vm = Render(samplePets(), Filter{Query: "zzz"})
	if vm.EmptyMessage != emptyFilterMessage {
		t.Fatalf("expected filter empty message, got %q", vm.EmptyMessage)
	}
}

func TestAgeLabel(t *testing.T) {
	if got := AgeLabel(3); got != "3" {
		t.Fatalf("got %q", got)
	}
	if got := AgeLabel(1.5); got != "1.5" {
		t.Fatalf("got %q", got)
	}
}

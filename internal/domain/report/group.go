package report

import (
	"sort"

	"zoo-arrivals-report/internal/domain/animals"
)

type Group struct {
	Species animals.Species
	Animals []animals.Animal
}

// EnclosureGroup agrupa por recinto. EnclosureID nil = sin asignar.
type EnclosureGroup struct {
	EnclosureID *int
	Animals     []animals.Animal
}

// BySpecies particiona por especie. Grupos en orden alfabético,
// animales dentro del grupo en el orden de carga.
func BySpecies(list []animals.Animal) []Group {
	idx := make(map[animals.Species]int)
	out := make([]Group, 0)

	for _, a := range list {
		i, ok := idx[a.Species]
		if !ok {
			i = len(out)
			idx[a.Species] = i
			out = append(out, Group{Species: a.Species})
		}
		out[i].Animals = append(out[i].Animals, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Species < out[j].Species
	})
	return out
}

// ByEnclosure particiona por recinto: sin asignar primero, luego id ascendente.
func ByEnclosure(list []animals.Animal) []EnclosureGroup {
	const unassigned = "none"

	idx := make(map[any]int)
	out := make([]EnclosureGroup, 0)

	for _, a := range list {
		var key any = unassigned
		if a.EnclosureID != nil {
			key = *a.EnclosureID
		}

		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			g := EnclosureGroup{}
			if a.EnclosureID != nil {
				id := *a.EnclosureID
				g.EnclosureID = &id
			}
			out = append(out, g)
		}
		out[i].Animals = append(out[i].Animals, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].EnclosureID, out[j].EnclosureID
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return *a < *b
		}
	})
	return out
}

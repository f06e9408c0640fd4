package animals

import (
	"math"
	"strconv"
	"strings"
)

// ParseLine interpreta "species name age [extra]".
//
// Parsing tolerante: tokens ausentes quedan en ""/0, edad negativa o no numérica => 0,
// extra ausente o inválido => 0. Solo devuelve false para líneas en blanco.
func ParseLine(line string) (Animal, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Animal{}, false
	}

	a := Animal{
		Species: Species(tokenAt(fields, 0)),
		Name:    tokenAt(fields, 1),
		Age:     parseInt(tokenAt(fields, 2)),
	}
	if a.Age < 0 {
		a.Age = 0
	}

	extra := tokenAt(fields, 3)
	switch a.Species {
	case SpeciesLion:
		a.Traits = LionTraits{ManeLengthCM: parseFloat(extra)}
	case SpeciesTiger:
		a.Traits = TigerTraits{StripeCount: parseInt(extra)}
	case SpeciesBear:
		a.Traits = BearTraits{HibernationDays: parseInt(extra)}
	case SpeciesHyena:
		a.Traits = HyenaTraits{}
	default:
		a.Traits = GenericTraits{}
	}

	return a, true
}

func tokenAt(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// parseInt rechaza prefijos numéricos ("98stripes" => 0) a propósito.
func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(raw string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

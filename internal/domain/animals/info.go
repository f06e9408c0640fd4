package animals

import "fmt"

const hyenaInfo = "Distinctive laugh and scavenger habits."

// UniqueInfo describe el atributo propio de la especie. Especies genéricas => "".
func UniqueInfo(a Animal) string {
	switch t := a.Traits.(type) {
	case LionTraits:
		return fmt.Sprintf("Mane length: %f cm.", t.ManeLengthCM)
	case TigerTraits:
		return fmt.Sprintf("Stripe count: %d.", t.StripeCount)
	case BearTraits:
		return fmt.Sprintf("Hibernation days: %d.", t.HibernationDays)
	case HyenaTraits:
		return hyenaInfo
	default:
		return ""
	}
}

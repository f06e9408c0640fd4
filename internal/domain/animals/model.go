package animals

// Species es la etiqueta de especie tal cual viene en el archivo de llegadas.
// Cualquier valor es válido; solo las constantes tienen atributos propios.
type Species string

const (
	SpeciesLion  Species = "Lion"
	SpeciesTiger Species = "Tiger"
	SpeciesBear  Species = "Bear"
	SpeciesHyena Species = "Hyena"
)

// Traits es el atributo propio de la especie. Conjunto cerrado:
// LionTraits, TigerTraits, BearTraits, HyenaTraits, GenericTraits.
type Traits interface {
	traits()
}

type LionTraits struct {
	ManeLengthCM float64
}

type TigerTraits struct {
	StripeCount int
}

type BearTraits struct {
	HibernationDays int
}

type HyenaTraits struct{}

// GenericTraits se usa para especies no reconocidas.
type GenericTraits struct{}

func (LionTraits) traits()    {}
func (TigerTraits) traits()   {}
func (BearTraits) traits()    {}
func (HyenaTraits) traits()   {}
func (GenericTraits) traits() {}

// Animal es un registro del archivo de llegadas.
type Animal struct {
	ID string

	Name    string // no es único
	Age     int
	Species Species

	// nil = sin asignar. Se setea una sola vez en el join.
	EnclosureID *int

	Traits Traits
}

func (a Animal) HasEnclosure() bool {
	return a.EnclosureID != nil
}

package enclosures

// Assignment es una fila "name enclosureID" del archivo de recintos.
type Assignment struct {
	Name        string
	EnclosureID int
}

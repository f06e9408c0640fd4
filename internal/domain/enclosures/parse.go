package enclosures

import (
	"strconv"
	"strings"
)

// ParseLine interpreta "name enclosureID". Id ausente o inválido => 0; la fila se registra igual.
func ParseLine(line string) (Assignment, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Assignment{}, false
	}

	as := Assignment{Name: fields[0]}
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			as.EnclosureID = n
		}
	}
	return as, true
}

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"zoo-arrivals-report/internal/domain/animals"
)

var ErrReportUnwritable = errors.New("report unwritable")

const noEnclosure = "None"

// Write serializa los grupos:
//
//	Species: <species>
//	  Name: <name>, Age: <age>, Enclosure: <id|None>, Unique Info: <info>
//	Total count: <N>
//	<línea en blanco>
func Write(w io.Writer, groups []Group) error {
	bw := bufio.NewWriter(w)

	for _, g := range groups {
		if _, err := fmt.Fprintf(bw, "Species: %s\n", g.Species); err != nil {
			return err
		}
		for _, a := range g.Animals {
			if _, err := fmt.Fprintf(bw, "  %s\n", FormatAnimal(a)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "Total count: %d\n\n", len(g.Animals)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// FormatAnimal arma la línea de un animal, sin indentación.
func FormatAnimal(a animals.Animal) string {
	return fmt.Sprintf("Name: %s, Age: %d, Enclosure: %s, Unique Info: %s",
		a.Name, a.Age, enclosureLabel(a), animals.UniqueInfo(a))
}

// WriteFile crea (o trunca) path y escribe el reporte. Cualquier falla de
// apertura, escritura o cierre se reporta como ErrReportUnwritable.
func WriteFile(path string, groups []Group) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("%w: %s: %v", ErrReportUnwritable, path, mkErr)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReportUnwritable, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", ErrReportUnwritable, path, cerr)
		}
	}()

	if err := Write(f, groups); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrReportUnwritable, path, err)
	}
	return nil
}

func enclosureLabel(a animals.Animal) string {
	if a.EnclosureID == nil {
		return noEnclosure
	}
	return strconv.Itoa(*a.EnclosureID)
}

// Package runner arma repos y servicios y ejecuta la corrida completa:
// carga de llegadas -> join de recintos -> agrupado -> reporte.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	mem "zoo-arrivals-report/internal/adapters/storage/memory"
	"zoo-arrivals-report/internal/domain/animals"
	"zoo-arrivals-report/internal/domain/enclosures"
	"zoo-arrivals-report/internal/domain/report"
	"zoo-arrivals-report/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrArrivalsUnreadable = errors.New("arrivals unreadable")
	ErrReportUnwritable   = report.ErrReportUnwritable
)

type Options struct {
	ArrivalsPath   string
	EnclosuresPath string // vacío => join omitido
	ReportPath     string

	Logger logger.Logger // puede ser nil
}

type Occupancy struct {
	EnclosureID *int
	Count       int
}

type Summary struct {
	RunID      string
	ReportPath string

	Animals int
	Species int
	Matched int

	// false si el archivo de recintos no se cargó (ausente o sin ruta).
	EnclosuresLoaded bool

	Occupancy []Occupancy
}

func Run(ctx context.Context, opts Options) (Summary, error) {
	sum := Summary{
		RunID:      uuid.NewString(),
		ReportPath: opts.ReportPath,
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(map[string]any{"run_id": sum.RunID})

	animalsSvc := animals.NewService(mem.NewAnimalRepo())
	enclosuresSvc := enclosures.NewService(mem.NewEnclosureRepo())

	n, err := loadArrivals(ctx, animalsSvc, opts.ArrivalsPath)
	if err != nil {
		log.Error("arrivals load failed", map[string]any{"path": opts.ArrivalsPath, "error": err})
		return sum, err
	}
	sum.Animals = n
	log.Info("arrivals loaded", map[string]any{"path": opts.ArrivalsPath, "animals": n})

	loaded, err := loadEnclosures(ctx, enclosuresSvc, opts.EnclosuresPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return sum, ctxErr
		}
		// Modo degradado: sin recintos, todos quedan "None".
		log.Warn("could not open enclosures file, proceeding without enclosure data", map[string]any{
			"path":  opts.EnclosuresPath,
			"error": err,
		})
	}
	sum.EnclosuresLoaded = loaded

	if sum.EnclosuresLoaded {
		matched, err := enclosuresSvc.Apply(ctx, animalsSvc)
		if err != nil {
			return sum, fmt.Errorf("join enclosures: %w", err)
		}
		sum.Matched = matched
		log.Info("enclosures joined", map[string]any{"path": opts.EnclosuresPath, "matched": matched})
	}

	list, err := animalsSvc.List(ctx)
	if err != nil {
		return sum, err
	}

	groups := report.BySpecies(list)
	sum.Species = len(groups)
	for _, g := range report.ByEnclosure(list) {
		sum.Occupancy = append(sum.Occupancy, Occupancy{EnclosureID: g.EnclosureID, Count: len(g.Animals)})
		log.Debug("enclosure occupancy", map[string]any{"enclosure": enclosureField(g.EnclosureID), "animals": len(g.Animals)})
	}

	if err := report.WriteFile(opts.ReportPath, groups); err != nil {
		log.Error("report write failed", map[string]any{"path": opts.ReportPath, "error": err})
		return sum, err
	}
	log.Info("report written", map[string]any{
		"path":    opts.ReportPath,
		"species": sum.Species,
		"animals": sum.Animals,
	})

	return sum, nil
}

func loadArrivals(ctx context.Context, svc *animals.Service, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrArrivalsUnreadable, err)
	}
	defer f.Close()

	n, err := svc.Load(ctx, f)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrArrivalsUnreadable, err)
	}
	return n, nil
}

// loadEnclosures devuelve (false, nil) si no hay ruta configurada.
func loadEnclosures(ctx context.Context, svc *enclosures.Service, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := svc.Load(ctx, f); err != nil {
		return false, err
	}
	return true, nil
}

func enclosureField(id *int) any {
	if id == nil {
		return "none"
	}
	return *id
}

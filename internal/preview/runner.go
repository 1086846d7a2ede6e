package preview

import (
	"context"
	"fmt"
	"io"

	service "github.com/okian/pitchgen/internal/app"
	"github.com/okian/pitchgen/internal/report"
	"github.com/okian/pitchgen/pkg/logger"
)

// Run generates the selected datasets with svc and writes them to out.
func Run(ctx context.Context, cfg *Config, svc *service.Service, out io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	names := svc.Names()
	if cfg.Dataset != "" && cfg.Dataset != AllDatasets {
		names = []string{cfg.Dataset}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := svc.Dataset(ctx, name, cfg.Seed)
		if err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
		if cfg.CSV {
			return report.WriteCSV(out, t)
		}
		title, err := svc.Title(name)
		if err != nil {
			return err
		}
		if err := report.Write(out, title, t,
			report.WithPreviewRows(cfg.Rows),
			report.WithLanguage(cfg.Locale),
		); err != nil {
			return fmt.Errorf("report %s: %w", name, err)
		}
		log.Debug(ctx, "dataset reported", logger.String("dataset", name), logger.Int("rows", t.NumRows()))
	}

	if _, err := fmt.Fprintf(out, "\nGenerated %d dataset(s) with seed %d.\n", len(names), cfg.Seed); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Package preview runs the dataset generators and prints a report for
// each table, or a single table as CSV.
package preview

import (
	"fmt"

	"github.com/okian/pitchgen/pkg/logger"
	"golang.org/x/text/language"
)

// AllDatasets selects every dataset.
const AllDatasets = "all"

// Config holds the preview run settings.
type Config struct {
	Seed    int64
	Rows    int
	Dataset string
	CSV     bool
	Locale  language.Tag
	Logger  logger.Logger
}

func (c *Config) validate() error {
	if c.Rows < 0 {
		return fmt.Errorf("rows must not be negative, got %d", c.Rows)
	}
	if c.CSV && (c.Dataset == "" || c.Dataset == AllDatasets) {
		return fmt.Errorf("csv output needs a single dataset")
	}
	return nil
}

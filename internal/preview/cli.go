package preview

import (
	"io"
)

// ShowHelp writes usage information to w.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `pitchgen datasets
=================

Generates the synthetic sports tables and prints a preview of each one.

Usage:
  go run ./cmd/datasets [options]

Options:
  -seed int
        Random seed (default 42)
  -rows int
        Number of preview rows per table (default 3)
  -dataset string
        athletes, sessions, tracking, events, wellness or all (default "all")
  -csv
        Write the selected dataset as CSV to stdout instead of the report
  -help
        Show this help message

Environment:
  PITCHGEN_CONFIG, PITCHGEN_SESSION_COUNT, PITCHGEN_EVENT_COUNT,
  PITCHGEN_TRACKING_FRAMES, PITCHGEN_TRACKING_HZ, PITCHGEN_WELLNESS_DAYS,
  PITCHGEN_LOCALE

Examples:
  # Preview every table
  go run ./cmd/datasets

  # Ten rows of the event log with another seed
  go run ./cmd/datasets -dataset events -rows 10 -seed 7

  # Export tracking samples
  go run ./cmd/datasets -dataset tracking -csv > tracking.csv
`)
}

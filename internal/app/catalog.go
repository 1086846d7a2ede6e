package service

import (
	"fmt"

	"github.com/okian/pitchgen/internal/domain/datasets"
	"github.com/okian/pitchgen/internal/domain/table"
)

// Dataset names served by the catalog.
const (
	Athletes = "athletes"
	Sessions = "sessions"
	Tracking = "tracking"
	Events   = "events"
	Wellness = "wellness"
)

type generator struct {
	name  string
	title func(hz float64) string
	build func(opts []datasets.Option) table.Table
}

func fixedTitle(s string) func(float64) string {
	return func(float64) string { return s }
}

// catalog lists the generators in report order.
var catalog = []generator{
	{
		name:  Athletes,
		title: fixedTitle("ATHLETES"),
		build: func([]datasets.Option) table.Table {
			return table.From(Athletes, datasets.Athletes())
		},
	},
	{
		name:  Sessions,
		title: fixedTitle("GPS SESSIONS"),
		build: func(opts []datasets.Option) table.Table {
			return table.From(Sessions, datasets.Sessions(opts...))
		},
	},
	{
		name:  Tracking,
		title: func(hz float64) string { return fmt.Sprintf("TRACKING (%gHz)", hz) },
		build: func(opts []datasets.Option) table.Table {
			return table.From(Tracking, datasets.Tracking(opts...))
		},
	},
	{
		name:  Events,
		title: fixedTitle("EVENTS"),
		build: func(opts []datasets.Option) table.Table {
			return table.From(Events, datasets.Events(opts...))
		},
	},
	{
		name:  Wellness,
		title: fixedTitle("WELLNESS"),
		build: func(opts []datasets.Option) table.Table {
			return table.From(Wellness, datasets.Wellness(opts...))
		},
	},
}

func lookup(name string) (generator, error) {
	for _, g := range catalog {
		if g.name == name {
			return g, nil
		}
	}
	return generator{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
}

// Names lists every dataset in report order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, g := range catalog {
		names[i] = g.name
	}
	return names
}

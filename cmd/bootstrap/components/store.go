package components

import (
	"tourmate/internal/infra/memstore"
	"tourmate/internal/infra/seed"
	"tourmate/internal/pkg/clock"
	"tourmate/internal/usecase/commands"
	"tourmate/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule wires the seeded in-memory stores. A single store
// instance backs both the read- and write-side ports so commands and
// queries observe the same records.
var StoreModule = fx.Module("store",
	fx.Provide(
		NewGuideCatalog,
		NewBookedTourStore,
		func(c *memstore.GuideCatalog) queries.GuideCatalogReadStore { return c },
		func(c *memstore.GuideCatalog) commands.CatalogLookup { return c },
		func(s *memstore.BookedTourStore) queries.BookedTourReadStore { return s },
		func(s *memstore.BookedTourStore) commands.BookedTourWriteStore { return s },
	),
)

func NewGuideCatalog() (*memstore.GuideCatalog, error) {
	guides, err := seed.Catalog()
	if err != nil {
		return nil, err
	}
	return memstore.NewGuideCatalog(guides)
}

func NewBookedTourStore(catalog *memstore.GuideCatalog, clk clock.Clock) (*memstore.BookedTourStore, error) {
	tours, err := seed.BookedTours(catalog.Guides(), clk.Now())
	if err != nil {
		return nil, err
	}
	return memstore.NewBookedTourStore(tours)
}

package memstore

import (
	"tourmate/internal/domain/guide"
	"tourmate/internal/infra"
)

// GuideCatalog is the read-only catalog of guides and their
// destinations. It is fully built at startup from seed data and never
// mutated afterwards, so reads need no locking.
type GuideCatalog struct {
	guides       []*guide.TourGuide
	guidesByID   map[int64]*guide.TourGuide
	destsByID    map[int64]*guide.Destination
	guideForDest map[int64]*guide.TourGuide
}

func NewGuideCatalog(guides []*guide.TourGuide) (*GuideCatalog, error) {
	c := &GuideCatalog{
		guides:       guides,
		guidesByID:   make(map[int64]*guide.TourGuide, len(guides)),
		destsByID:    make(map[int64]*guide.Destination),
		guideForDest: make(map[int64]*guide.TourGuide),
	}
	for _, g := range guides {
		if _, dup := c.guidesByID[g.ID()]; dup {
			return nil, infra.WrapRepoErr("duplicate guide id in catalog", nil, infra.KindDuplicateKey)
		}
		c.guidesByID[g.ID()] = g
		for _, d := range g.Destinations() {
			if _, dup := c.destsByID[d.ID()]; dup {
				return nil, infra.WrapRepoErr("duplicate destination id in catalog", nil, infra.KindDuplicateKey)
			}
			c.destsByID[d.ID()] = d
			c.guideForDest[d.ID()] = g
		}
	}
	return c, nil
}

// Guides returns guides in seed order.
func (c *GuideCatalog) Guides() []*guide.TourGuide {
	out := make([]*guide.TourGuide, len(c.guides))
	copy(out, c.guides)
	return out
}

func (c *GuideCatalog) GuideByID(id int64) (*guide.TourGuide, error) {
	g, ok := c.guidesByID[id]
	if !ok {
		return nil, infra.WrapRepoErr("guide not found", nil, infra.KindNotFound)
	}
	return g, nil
}

// Destinations flattens every guide's catalog, preserving guide order
// and each guide's destination order.
func (c *GuideCatalog) Destinations() []*guide.Destination {
	var out []*guide.Destination
	for _, g := range c.guides {
		out = append(out, g.Destinations()...)
	}
	return out
}

func (c *GuideCatalog) DestinationByID(id int64) (*guide.Destination, error) {
	d, ok := c.destsByID[id]
	if !ok {
		return nil, infra.WrapRepoErr("destination not found", nil, infra.KindNotFound)
	}
	return d, nil
}

func (c *GuideCatalog) GuideForDestination(destinationID int64) (*guide.TourGuide, error) {
	g, ok := c.guideForDest[destinationID]
	if !ok {
		return nil, infra.WrapRepoErr("destination not found", nil, infra.KindNotFound)
	}
	return g, nil
}

// ReviewsForDestination returns the destination's embedded review list
// in order; absent destinations and destinations without reviews both
// yield an empty slice.
func (c *GuideCatalog) ReviewsForDestination(destinationID int64) []guide.DestinationReview {
	d, ok := c.destsByID[destinationID]
	if !ok {
		return []guide.DestinationReview{}
	}
	return d.Reviews()
}

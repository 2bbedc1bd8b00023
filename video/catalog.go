package video

import "github.com/samber/lo"

// Catalog holds every known video keyed by id. Membership is fixed once built;
// id uniqueness is the loader's responsibility.
type Catalog struct {
	byID  map[string]*Video
	order []*Video
}

// NewCatalog builds a catalog preserving the given order.
func NewCatalog(videos ...*Video) *Catalog {
	c := &Catalog{
		byID:  make(map[string]*Video, len(videos)),
		order: make([]*Video, 0, len(videos)),
	}

	for _, v := range videos {
		if _, exists := c.byID[v.id]; exists {
			continue
		}
		c.byID[v.id] = v
		c.order = append(c.order, v)
	}

	return c
}

// Get looks a video up by its exact id.
func (c *Catalog) Get(id string) (*Video, error) {
	v, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// All returns every video in insertion order.
func (c *Catalog) All() []*Video {
	return append([]*Video(nil), c.order...)
}

// Unflagged returns the videos that are not flagged, in the same order as All.
func (c *Catalog) Unflagged() []*Video {
	return lo.Filter(c.order, func(v *Video, _ int) bool {
		return !v.flagged
	})
}

// Len returns the number of videos, flagged ones included.
func (c *Catalog) Len() int {
	return len(c.order)
}

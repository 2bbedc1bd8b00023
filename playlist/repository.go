package playlist

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Repository owns every playlist. Names are matched case-insensitively but
// displayed with the case they were created with.
type Repository struct {
	playlists map[string]*Playlist
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{playlists: make(map[string]*Playlist)}
}

func fold(name string) string {
	return strings.ToUpper(name)
}

// Create registers a new empty playlist.
func (r *Repository) Create(name string) (*Playlist, error) {
	k := fold(name)
	if _, exists := r.playlists[k]; exists {
		return nil, ErrAlreadyExists
	}

	p := newPlaylist(name)
	r.playlists[k] = p
	return p, nil
}

// Find returns the playlist matching name regardless of case.
func (r *Repository) Find(name string) (*Playlist, error) {
	p, ok := r.playlists[fold(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete removes the playlist entirely.
func (r *Repository) Delete(name string) error {
	k := fold(name)
	if _, ok := r.playlists[k]; !ok {
		return ErrNotFound
	}

	delete(r.playlists, k)
	return nil
}

// All returns the playlists ordered by name, ignoring case.
func (r *Repository) All() []*Playlist {
	all := lo.Values(r.playlists)
	slices.SortFunc(all, func(a, b *Playlist) int {
		if c := strings.Compare(fold(a.name), fold(b.name)); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return all
}

// Len returns the number of playlists.
func (r *Repository) Len() int {
	return len(r.playlists)
}

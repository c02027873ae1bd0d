package session

import "errors"

// ErrEmptyGallery is returned when a session is started without images.
var ErrEmptyGallery = errors.New("session: gallery has no images")

// Gallery is a fixed list of image paths walked forward only. Advancing past
// the last entry wraps to the first.
type Gallery struct {
	paths []string
	index int
}

func NewGallery(paths []string) (*Gallery, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyGallery
	}
	return &Gallery{paths: append([]string(nil), paths...)}, nil
}

// Next advances the cursor and returns the new current path.
func (g *Gallery) Next() string {
	g.index = (g.index + 1) % len(g.paths)
	return g.paths[g.index]
}

func (g *Gallery) Current() string { return g.paths[g.index] }
func (g *Gallery) Index() int      { return g.index }

package session

import (
	"errors"
	"testing"
)

func TestGalleryWrapsForward(t *testing.T) {
	g, err := NewGallery([]string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Current() != "a" || g.Index() != 0 {
		t.Fatalf("start = %q@%d", g.Current(), g.Index())
	}
	want := []string{"b", "c", "a", "b"}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("Next() #%d = %q, want %q", i+1, got, w)
		}
	}
	if g.Index() != 1 {
		t.Errorf("Index() = %d, want 1", g.Index())
	}
}

func TestGalleryCopiesPaths(t *testing.T) {
	paths := []string{"a", "b"}
	g, _ := NewGallery(paths)
	paths[0] = "changed"
	if g.Current() != "a" {
		t.Errorf("gallery shares the caller's slice")
	}
}

func TestEmptyGallery(t *testing.T) {
	if _, err := NewGallery(nil); !errors.Is(err, ErrEmptyGallery) {
		t.Errorf("NewGallery(nil) error = %v, want ErrEmptyGallery", err)
	}
}

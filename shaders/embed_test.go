package shaders

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/MatejBursik/Shader-window/internal/effect"
)

func TestEveryEffectHasSources(t *testing.T) {
	for _, e := range effect.All() {
		cfg := effect.RecipeFor(e, effect.Viewport{Width: 640, Height: 480}, effect.DefaultAtlas)
		for _, p := range []string{cfg.VertexPath, cfg.FragmentPath} {
			src, err := fs.ReadFile(FS, p)
			if err != nil {
				t.Errorf("%s: %v", e, err)
				continue
			}
			if !strings.HasPrefix(string(src), "#version 330 core") {
				t.Errorf("%s: %s does not target GLSL 330 core", e, p)
			}
		}
	}
}

func TestFragmentDeclaresRecipeUniforms(t *testing.T) {
	for _, e := range effect.All() {
		cfg := effect.RecipeFor(e, effect.Viewport{Width: 640, Height: 480}, effect.DefaultAtlas)
		src, err := fs.ReadFile(FS, cfg.FragmentPath)
		if err != nil {
			t.Fatalf("%s: %v", e, err)
		}
		for _, u := range cfg.Uniforms {
			if !strings.Contains(string(src), " "+u.Name+";") {
				t.Errorf("%s: uniform %q not declared in %s", e, u.Name, cfg.FragmentPath)
			}
		}
	}
}

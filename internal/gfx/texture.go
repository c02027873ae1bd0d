package gfx

import "image"

// Texture is one GPU-resident image. Width and height are the native pixel
// dimensions of the decoded source. The owner must call Release before the
// value is dropped.
type Texture struct {
	backend Backend
	handle  uint32
	width   int
	height  int
}

// LoadTexture decodes the image at path and uploads it. Decode failures are
// returned as *DecodeError and nothing is allocated on the GPU.
func LoadTexture(b Backend, path string) (*Texture, error) {
	img, err := DecodeRGBA(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(b, img), nil
}

// NewTexture uploads an in-memory image.
func NewTexture(b Backend, img *image.NRGBA) *Texture {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	return &Texture{
		backend: b,
		handle:  b.CreateTexture(w, h, img.Pix),
		width:   w,
		height:  h,
	}
}

// Bind attaches the texture to the given texture unit.
func (t *Texture) Bind(unit int) {
	t.backend.BindTexture(unit, t.handle)
}

// Release frees the GPU storage. Calling it twice is a no-op.
func (t *Texture) Release() {
	if t == nil || t.handle == 0 {
		return
	}
	t.backend.DeleteTexture(t.handle)
	t.handle = 0
}

// Dimensions returns the native pixel size of the image.
func (t *Texture) Dimensions() (int, int) {
	return t.width, t.height
}

// Handle returns the GPU id, zero after Release.
func (t *Texture) Handle() uint32 { return t.handle }

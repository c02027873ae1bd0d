package gfx

// Quad is the static two-triangle surface the image is drawn on.
type Quad struct {
	backend Backend
	vao     uint32
}

func NewQuad(b Backend) *Quad {
	return &Quad{backend: b, vao: b.CreateQuad()}
}

func (q *Quad) Draw() {
	q.backend.DrawQuad(q.vao)
}

func (q *Quad) Release() {
	if q == nil || q.vao == 0 {
		return
	}
	q.backend.DeleteQuad(q.vao)
	q.vao = 0
}

package render

var _ Colorable = (*SpriteRenderer)(nil)

// SpriteRenderer is the world-space renderable: a named sprite with a tint,
// optional axis flips and an explicit draw order. The renderer itself does
// no drawing; it holds the state a draw pass reads.
type SpriteRenderer struct {
	Sprite       string
	FlipX        bool
	FlipY        bool
	SortingOrder int

	color Color
}

// NewSpriteRenderer returns a renderer showing the given sprite with an
// opaque white tint, which leaves the sprite's own colors untouched.
func NewSpriteRenderer(sprite string) *SpriteRenderer {
	return &SpriteRenderer{
		Sprite: sprite,
		color:  White,
	}
}

func (r *SpriteRenderer) Color() Color {
	return r.color
}

func (r *SpriteRenderer) SetColor(c Color) {
	r.color = c
}

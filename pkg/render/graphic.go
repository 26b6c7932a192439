package render

var _ Colorable = (*Graphic)(nil)

// Graphic is the base of screen-space UI renderables. Concrete widgets embed
// it and inherit tint handling, so anything built on Graphic is Colorable
// for free.
type Graphic struct {
	RaycastTarget bool

	color Color
}

// NewGraphic returns a white, click-through-blocking graphic.
func NewGraphic() *Graphic {
	return &Graphic{
		RaycastTarget: true,
		color:         White,
	}
}

func (g *Graphic) Color() Color {
	return g.color
}

func (g *Graphic) SetColor(c Color) {
	g.color = c
}

// Image is a UI graphic with a fill fraction, used for bars and radial
// wipes. FillAmount is interpreted in [0, 1] by the layout pass.
type Image struct {
	Graphic

	Source     string
	FillAmount float64
}

// NewImage returns a fully filled image widget for the given source asset.
func NewImage(source string) *Image {
	return &Image{
		Graphic:    *NewGraphic(),
		Source:     source,
		FillAmount: 1,
	}
}

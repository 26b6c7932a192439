package render

// Colorable is anything on screen whose tint can be read and replaced as a
// whole. Both sprite renderers and UI graphics satisfy it, which is what
// lets one helper serve both families.
type Colorable interface {
	Color() Color
	SetColor(Color)
}

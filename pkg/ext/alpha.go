package ext

import "github.com/keelengine/keel/pkg/render"

// SetAlpha rewrites only the alpha channel of target's color; r, g and b
// come through untouched. The value is not range-checked: out-of-range
// alphas reach the renderer as-is.
func SetAlpha(target render.Colorable, alpha float64) {
	c := target.Color()
	c.A = alpha
	target.SetColor(c)
}

package ext

// Axis names one vector component and carries a value for it. Helpers taking
// ...Axis apply their own default to components left out: With keeps the
// original component, Add adds zero, SetPosition keeps the current world
// component.
type Axis struct {
	component int
	value     float64
}

// X carries a value for the x component.
func X(v float64) Axis { return Axis{component: 0, value: v} }

// Y carries a value for the y component.
func Y(v float64) Axis { return Axis{component: 1, value: v} }

// Z carries a value for the z component.
func Z(v float64) Axis { return Axis{component: 2, value: v} }

package ext

import "github.com/go-gl/mathgl/mgl64"

// With returns a copy of v with the named components replaced. Components not
// named keep their original value; naming the same component twice keeps the
// last value.
//
//	With(mgl64.Vec3{1, 2, 3}, Y(5))  // {1, 5, 3}
func With(v mgl64.Vec3, axes ...Axis) mgl64.Vec3 {
	for _, a := range axes {
		v[a.component] = a.value
	}
	return v
}

// Add returns a copy of v with the named deltas added component-wise.
// Components not named gain zero; naming the same component twice adds both
// deltas.
//
//	Add(mgl64.Vec3{1, 2, 3}, X(1), Z(-1))  // {2, 2, 2}
func Add(v mgl64.Vec3, axes ...Axis) mgl64.Vec3 {
	for _, a := range axes {
		v[a.component] += a.value
	}
	return v
}

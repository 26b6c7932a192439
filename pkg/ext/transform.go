package ext

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/keelengine/keel/pkg/scene"
)

// LocalReset moves t back to its parent's origin: local position zero, local
// rotation identity, local scale one. Position and rotation go through the
// combined setter; scale is a separate write.
func LocalReset(t *scene.Transform) {
	t.SetLocalPositionAndRotation(mgl64.Vec3{}, mgl64.QuatIdent())
	t.SetLocalScale(mgl64.Vec3{1, 1, 1})
}

// GlobalReset moves t to the world origin with identity world rotation. On a
// nested node the local values end up compensating for the parent chain.
// Scale is still written locally; it has no world-space representation.
func GlobalReset(t *scene.Transform) {
	t.SetPositionAndRotation(mgl64.Vec3{}, mgl64.QuatIdent())
	t.SetLocalScale(mgl64.Vec3{1, 1, 1})
}

// SetPosition writes t's world position component-wise. Components not named
// keep the transform's current world position, so SetPosition(t, Y(0)) drops
// a node onto the ground plane without disturbing x or z.
func SetPosition(t *scene.Transform, axes ...Axis) {
	t.SetPosition(With(t.Position(), axes...))
}

// SetLocalPosition writes t's local position from three required components.
// Unlike SetPosition there are no per-component defaults.
func SetLocalPosition(t *scene.Transform, x, y, z float64) {
	t.SetLocalPosition(mgl64.Vec3{x, y, z})
}

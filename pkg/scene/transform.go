package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Transform is a scene-graph node: a name, an optional tag, a parent link
// and local position/rotation/scale. World-space state is never stored; it
// is derived from the parent chain on demand, so a parent move is visible
// to every descendant immediately.
//
// Transforms must be created with NewTransform: the zero value has a zero
// scale and no identity.
type Transform struct {
	id      uuid.UUID
	name    string
	tag     Tag
	tagName string

	parent   *Transform
	children []*Transform

	localPosition mgl64.Vec3
	localRotation mgl64.Quat
	localScale    mgl64.Vec3
}

// NewTransform returns a detached node with identity local state.
func NewTransform(name string) *Transform {
	return &Transform{
		id:            uuid.New(),
		name:          name,
		localRotation: mgl64.QuatIdent(),
		localScale:    mgl64.Vec3{1, 1, 1},
	}
}

// ID is the stable instance identifier assigned at creation.
func (t *Transform) ID() uuid.UUID { return t.id }

func (t *Transform) Name() string        { return t.name }
func (t *Transform) SetName(name string) { t.name = name }

func (t *Transform) Tag() Tag        { return t.tag }
func (t *Transform) TagName() string { return t.tagName }

// SetTag tags the node by name. The hash is computed once here; lookups and
// CompareTag work on the hash alone.
func (t *Transform) SetTag(name string) {
	t.tagName = name
	t.tag = TagFor(name)
}

// CompareTag reports whether the node carries the named tag. The comparison
// is a single integer equality, not a string compare.
func (t *Transform) CompareTag(name string) bool {
	return t.tag == TagFor(name)
}

func (t *Transform) Parent() *Transform { return t.parent }

// Children returns a copy of the direct children, in attach order.
func (t *Transform) Children() []*Transform {
	out := make([]*Transform, len(t.children))
	copy(out, t.children)
	return out
}

// Root walks up to the top of the hierarchy. A detached node is its own root.
func (t *Transform) Root() *Transform {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// IsChildOf reports whether ancestor appears anywhere above this node.
// A node is not considered a child of itself.
func (t *Transform) IsChildOf(ancestor *Transform) bool {
	for p := t.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// SetParent reparents the node, keeping its *local* values, so its world
// state shifts with the new parent. Passing nil detaches the node.
func (t *Transform) SetParent(parent *Transform) error {
	if parent == t || (parent != nil && parent.IsChildOf(t)) {
		return ErrCyclicParent
	}
	t.detach()
	t.parent = parent
	if parent != nil {
		parent.children = append(parent.children, t)
	}
	return nil
}

// SetParentKeepWorld reparents the node while preserving its world position
// and rotation by recomputing the local values under the new parent. Local
// scale is carried over as-is.
func (t *Transform) SetParentKeepWorld(parent *Transform) error {
	worldPos := t.Position()
	worldRot := t.Rotation()
	if err := t.SetParent(parent); err != nil {
		return err
	}
	t.SetPositionAndRotation(worldPos, worldRot)
	return nil
}

func (t *Transform) detach() {
	if t.parent == nil {
		return
	}
	siblings := t.parent.children
	for i, c := range siblings {
		if c == t {
			t.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	t.parent = nil
}

// Walk visits the node and all descendants depth-first. The walk stops as
// soon as fn returns false.
func (t *Transform) Walk(fn func(*Transform) bool) {
	t.walk(fn)
}

func (t *Transform) walk(fn func(*Transform) bool) bool {
	if !fn(t) {
		return false
	}
	for _, c := range t.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Local space

func (t *Transform) LocalPosition() mgl64.Vec3 { return t.localPosition }

func (t *Transform) SetLocalPosition(p mgl64.Vec3) { t.localPosition = p }

func (t *Transform) LocalRotation() mgl64.Quat { return t.localRotation }

func (t *Transform) SetLocalRotation(r mgl64.Quat) { t.localRotation = r }

func (t *Transform) LocalScale() mgl64.Vec3 { return t.localScale }

func (t *Transform) SetLocalScale(s mgl64.Vec3) { t.localScale = s }

// SetLocalPositionAndRotation updates both in one call, the preferred way
// to move and turn a node together.
func (t *Transform) SetLocalPositionAndRotation(p mgl64.Vec3, r mgl64.Quat) {
	t.localPosition = p
	t.localRotation = r
}

// World space

// Position is the node's position in scene coordinates.
func (t *Transform) Position() mgl64.Vec3 {
	if t.parent == nil {
		return t.localPosition
	}
	return t.parent.TransformPoint(t.localPosition)
}

// SetPosition moves the node to a scene-space position by converting it
// through the parent chain into local space.
func (t *Transform) SetPosition(p mgl64.Vec3) {
	if t.parent == nil {
		t.localPosition = p
		return
	}
	t.localPosition = t.parent.InverseTransformPoint(p)
}

// Rotation is the node's orientation in scene coordinates, the quaternion
// product of the ancestor chain.
func (t *Transform) Rotation() mgl64.Quat {
	if t.parent == nil {
		return t.localRotation
	}
	return t.parent.Rotation().Mul(t.localRotation)
}

// SetRotation orients the node in scene coordinates. The stored local
// rotation is renormalized to keep repeated conversions from drifting.
func (t *Transform) SetRotation(r mgl64.Quat) {
	if t.parent == nil {
		t.localRotation = r
		return
	}
	t.localRotation = t.parent.Rotation().Inverse().Mul(r).Normalize()
}

// SetPositionAndRotation updates both world-space values in one call.
func (t *Transform) SetPositionAndRotation(p mgl64.Vec3, r mgl64.Quat) {
	t.SetPosition(p)
	t.SetRotation(r)
}

// Matrices

// LocalMatrix is the node's T*R*S composition relative to its parent.
func (t *Transform) LocalMatrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.localPosition.X(), t.localPosition.Y(), t.localPosition.Z())
	rotate := t.localRotation.Mat4()
	scale := mgl64.Scale3D(t.localScale.X(), t.localScale.Y(), t.localScale.Z())
	return translate.Mul4(rotate).Mul4(scale)
}

// WorldMatrix composes the parent chain down to this node.
func (t *Transform) WorldMatrix() mgl64.Mat4 {
	if t.parent == nil {
		return t.LocalMatrix()
	}
	return t.parent.WorldMatrix().Mul4(t.LocalMatrix())
}

// TransformPoint maps a point from this node's local space into scene space.
func (t *Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.WorldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// InverseTransformPoint maps a scene-space point into this node's local space.
func (t *Transform) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.WorldMatrix().Inv().Mul4x1(p.Vec4(1)).Vec3()
}

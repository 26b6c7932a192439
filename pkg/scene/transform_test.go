package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const worldEps = 1e-9

// requireVec3InDelta compares vectors component-wise within worldEps.
func requireVec3InDelta(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	require.InDelta(t, want.X(), got.X(), worldEps)
	require.InDelta(t, want.Y(), got.Y(), worldEps)
	require.InDelta(t, want.Z(), got.Z(), worldEps)
}

// TestNewTransform_Defaults verifies a fresh node is at the local origin with
// identity rotation and unit scale, detached from any parent.
func TestNewTransform_Defaults(t *testing.T) {
	tr := NewTransform("player")

	require.Equal(t, "player", tr.Name())
	require.NotEqual(t, [16]byte{}, [16]byte(tr.ID()))
	require.Nil(t, tr.Parent())
	require.Empty(t, tr.Children())
	require.Equal(t, mgl64.Vec3{}, tr.LocalPosition())
	require.Equal(t, mgl64.QuatIdent(), tr.LocalRotation())
	require.Equal(t, mgl64.Vec3{1, 1, 1}, tr.LocalScale())
	require.Equal(t, Untagged, tr.Tag())
}

// TestTransform_Tags covers tagging by name and the hashed comparison.
func TestTransform_Tags(t *testing.T) {
	tr := NewTransform("door")
	require.False(t, tr.CompareTag("interactive"))

	tr.SetTag("interactive")
	require.Equal(t, "interactive", tr.TagName())
	require.Equal(t, TagFor("interactive"), tr.Tag())
	require.True(t, tr.CompareTag("interactive"))
	require.False(t, tr.CompareTag("static"))

	// Same name always hashes to the same tag.
	require.Equal(t, TagFor("interactive"), TagFor("interactive"))
	require.Equal(t, Untagged, TagFor(""))
}

// TestTagFor_Distinct verifies the usual tag vocabulary hashes without
// collisions, including against the untagged zero.
func TestTagFor_Distinct(t *testing.T) {
	names := []string{
		"player", "enemy", "crate", "pickup", "camera",
		"ui", "interactive", "static", "projectile", "trigger",
	}

	seen := make(map[Tag]string, len(names))
	for _, name := range names {
		tag := TagFor(name)
		require.NotEqual(t, Untagged, tag, "tag %q hashed to the untagged zero", name)

		prev, dup := seen[tag]
		require.False(t, dup, "tags %q and %q collide", prev, name)
		seen[tag] = name
	}
}

// TestTransform_SetParent_KeepsLocal verifies reparenting preserves local
// state, so the node's world position shifts with the new parent.
func TestTransform_SetParent_KeepsLocal(t *testing.T) {
	parent := NewTransform("parent")
	parent.SetLocalPosition(mgl64.Vec3{10, 0, 0})

	child := NewTransform("child")
	child.SetLocalPosition(mgl64.Vec3{1, 2, 3})

	require.NoError(t, child.SetParent(parent))

	require.Equal(t, parent, child.Parent())
	require.Equal(t, mgl64.Vec3{1, 2, 3}, child.LocalPosition())
	requireVec3InDelta(t, mgl64.Vec3{11, 2, 3}, child.Position())
}

// TestTransform_SetParentKeepWorld verifies the keep-world variant rewrites
// local state so the node does not move, even under a rotated parent.
func TestTransform_SetParentKeepWorld(t *testing.T) {
	parent := NewTransform("parent")
	parent.SetLocalPositionAndRotation(
		mgl64.Vec3{5, 0, 0},
		mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0}),
	)

	node := NewTransform("node")
	node.SetLocalPosition(mgl64.Vec3{1, 2, 3})
	before := node.Position()

	require.NoError(t, node.SetParentKeepWorld(parent))

	require.Equal(t, parent, node.Parent())
	requireVec3InDelta(t, before, node.Position())
	require.NotEqual(t, before, node.LocalPosition())
}

// TestTransform_SetParent_Cycles rejects self-parenting and descendants.
func TestTransform_SetParent_Cycles(t *testing.T) {
	a := NewTransform("a")
	b := NewTransform("b")
	c := NewTransform("c")
	require.NoError(t, b.SetParent(a))
	require.NoError(t, c.SetParent(b))

	require.ErrorIs(t, a.SetParent(a), ErrCyclicParent)
	require.ErrorIs(t, a.SetParent(c), ErrCyclicParent)

	// Detaching is always legal.
	require.NoError(t, b.SetParent(nil))
	require.Nil(t, b.Parent())
	require.Empty(t, a.Children())
}

// TestTransform_WorldPosition_UnderRotatedParent checks that a parent's
// rotation is applied to child offsets: a child one unit down +X of a parent
// rotated 90 degrees about Y ends up one unit down -Z.
func TestTransform_WorldPosition_UnderRotatedParent(t *testing.T) {
	parent := NewTransform("parent")
	parent.SetLocalPositionAndRotation(
		mgl64.Vec3{10, 0, 0},
		mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0}),
	)

	child := NewTransform("child")
	child.SetLocalPosition(mgl64.Vec3{1, 0, 0})
	require.NoError(t, child.SetParent(parent))

	requireVec3InDelta(t, mgl64.Vec3{10, 0, -1}, child.Position())
}

// TestTransform_SetPosition_RoundTrip sets a world position on a nested node
// and reads the same position back.
func TestTransform_SetPosition_RoundTrip(t *testing.T) {
	parent := NewTransform("parent")
	parent.SetLocalPositionAndRotation(
		mgl64.Vec3{3, -2, 7},
		mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1}),
	)
	child := NewTransform("child")
	require.NoError(t, child.SetParent(parent))

	child.SetPosition(mgl64.Vec3{1, 1, 1})

	requireVec3InDelta(t, mgl64.Vec3{1, 1, 1}, child.Position())
	require.NotEqual(t, mgl64.Vec3{1, 1, 1}, child.LocalPosition())
}

// TestTransform_Rotation_Chain verifies world rotation is the product of the
// parent chain by probing with a rotated vector.
func TestTransform_Rotation_Chain(t *testing.T) {
	parent := NewTransform("parent")
	parent.SetLocalRotation(mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0}))

	child := NewTransform("child")
	child.SetLocalRotation(mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0}))
	require.NoError(t, child.SetParent(parent))

	// Two 90 degree yaws: +X maps to -X.
	got := child.Rotation().Rotate(mgl64.Vec3{1, 0, 0})
	requireVec3InDelta(t, mgl64.Vec3{-1, 0, 0}, got)
}

// TestTransform_SetRotation_World assigns a world rotation under a rotated
// parent and verifies the world-space read matches.
func TestTransform_SetRotation_World(t *testing.T) {
	parent := NewTransform("parent")
	parent.SetLocalRotation(mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{0, 1, 0}))
	child := NewTransform("child")
	require.NoError(t, child.SetParent(parent))

	want := mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{1, 0, 0})
	child.SetRotation(want)

	probe := mgl64.Vec3{0, 1, 0}
	requireVec3InDelta(t, want.Rotate(probe), child.Rotation().Rotate(probe))
}

// TestTransform_TransformPoint_Inverse checks TransformPoint and
// InverseTransformPoint are inverses on a scaled, rotated, translated node.
func TestTransform_TransformPoint_Inverse(t *testing.T) {
	tr := NewTransform("node")
	tr.SetLocalPositionAndRotation(
		mgl64.Vec3{4, 5, 6},
		mgl64.QuatRotate(mgl64.DegToRad(60), mgl64.Vec3{0, 0, 1}),
	)
	tr.SetLocalScale(mgl64.Vec3{2, 2, 2})

	local := mgl64.Vec3{1, -1, 0.5}
	world := tr.TransformPoint(local)
	requireVec3InDelta(t, local, tr.InverseTransformPoint(world))

	// The local origin lands on the node's position.
	requireVec3InDelta(t, tr.Position(), tr.TransformPoint(mgl64.Vec3{}))
}

// TestTransform_Walk_Order verifies depth-first pre-order traversal and that
// returning false stops the walk early.
func TestTransform_Walk_Order(t *testing.T) {
	root := NewTransform("root")
	a := NewTransform("a")
	b := NewTransform("b")
	aa := NewTransform("aa")
	require.NoError(t, a.SetParent(root))
	require.NoError(t, b.SetParent(root))
	require.NoError(t, aa.SetParent(a))

	var order []string
	root.Walk(func(n *Transform) bool {
		order = append(order, n.Name())
		return true
	})
	require.Equal(t, []string{"root", "a", "aa", "b"}, order)

	var visited []string
	root.Walk(func(n *Transform) bool {
		visited = append(visited, n.Name())
		return n.Name() != "aa"
	})
	require.Equal(t, []string{"root", "a", "aa"}, visited)
}

// TestTransform_ChildrenCopy ensures the children slice is a snapshot.
func TestTransform_ChildrenCopy(t *testing.T) {
	root := NewTransform("root")
	child := NewTransform("child")
	require.NoError(t, child.SetParent(root))

	kids := root.Children()
	kids[0] = nil
	require.Equal(t, child, root.Children()[0])
}

// TestTransform_RootAndIsChildOf covers ancestry queries.
func TestTransform_RootAndIsChildOf(t *testing.T) {
	root := NewTransform("root")
	mid := NewTransform("mid")
	leaf := NewTransform("leaf")
	require.NoError(t, mid.SetParent(root))
	require.NoError(t, leaf.SetParent(mid))

	require.Equal(t, root, leaf.Root())
	require.Equal(t, root, root.Root())
	require.True(t, leaf.IsChildOf(root))
	require.True(t, leaf.IsChildOf(mid))
	require.False(t, leaf.IsChildOf(leaf))
	require.False(t, root.IsChildOf(leaf))
}

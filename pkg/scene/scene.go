// Package scene holds the transform hierarchy: nodes with local
// position/rotation/scale, derived world-space state, tags, and the Scene
// registry that tracks attached node trees. Rendering and physics stepping
// live elsewhere; this package only owns spatial state.
package scene

import (
	"github.com/google/uuid"

	"github.com/keelengine/keel/internal/core/observability/log"
)

// Scene is a registry over one or more transform trees. All lookups walk
// the live trees, so a node parented into an attached tree later is found
// exactly like a node that was present at attach time. A root nested under
// another node keeps its scene anchor: it is enumerated once through the
// new ancestor, and stands at root level again once detached.
type Scene struct {
	name   string
	roots  []*Transform
	logger log.Log
}

// New returns an empty scene logging through the process-wide logger.
func New(name string) *Scene {
	return &Scene{
		name:   name,
		logger: log.Provide(),
	}
}

func (s *Scene) Name() string { return s.name }

// Spawn creates a new root-level transform and attaches it.
func (s *Scene) Spawn(name string) *Transform {
	t := NewTransform(name)
	_ = s.Attach(t)
	return t
}

// Attach adds a detached tree to the scene. The root must be parentless and
// not attached here already; reparent under an existing node instead.
func (s *Scene) Attach(root *Transform) error {
	if root == nil {
		return ErrNilTransform
	}
	if root.Parent() != nil {
		return ErrAlreadyInTree
	}
	for _, r := range s.roots {
		if r == root {
			return ErrAlreadyInTree
		}
	}
	s.roots = append(s.roots, root)

	count := 0
	root.Walk(func(*Transform) bool {
		count++
		return true
	})
	s.logger.Debug("scene: attached",
		log.String("scene", s.name),
		log.String("root", root.Name()),
		log.Int("nodes", count),
	)
	return nil
}

// Roots returns a copy of the root-level transforms, in attach order.
// Attached roots currently nested under another node are omitted.
func (s *Scene) Roots() []*Transform {
	out := make([]*Transform, 0, len(s.roots))
	for _, root := range s.roots {
		if root.Parent() == nil {
			out = append(out, root)
		}
	}
	return out
}

// Len counts the nodes currently reachable from the roots.
func (s *Scene) Len() int {
	n := 0
	s.walkAll(func(*Transform) bool {
		n++
		return true
	})
	return n
}

// ByID finds a node by instance ID anywhere in the scene.
func (s *Scene) ByID(id uuid.UUID) (*Transform, bool) {
	var found *Transform
	s.walkAll(func(t *Transform) bool {
		if t.ID() == id {
			found = t
			return false
		}
		return true
	})
	return found, found != nil
}

// Find returns the first node with the given name in depth-first order
// across the roots, or nil.
func (s *Scene) Find(name string) *Transform {
	var found *Transform
	s.walkAll(func(t *Transform) bool {
		if t.Name() == name {
			found = t
			return false
		}
		return true
	})
	return found
}

// FindWithTag collects every node carrying the tag, in depth-first order.
func (s *Scene) FindWithTag(tag Tag) []*Transform {
	if tag == Untagged {
		return nil
	}
	var out []*Transform
	s.walkAll(func(t *Transform) bool {
		if t.Tag() == tag {
			out = append(out, t)
		}
		return true
	})
	return out
}

func (s *Scene) walkAll(fn func(*Transform) bool) {
	for _, root := range s.roots {
		// A root reparented since it was added is reached through its
		// ancestor; walking it here would enumerate the subtree twice.
		if root.Parent() != nil {
			continue
		}
		stopped := false
		root.Walk(func(t *Transform) bool {
			if !fn(t) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}

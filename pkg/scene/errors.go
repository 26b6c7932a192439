package scene

import "errors"

// Scene and transform errors
var (
	ErrNilTransform  = errors.New("transform is nil")
	ErrCyclicParent  = errors.New("reparenting would create a cycle")
	ErrAlreadyInTree = errors.New("transform already attached to a scene")
	ErrNodeNameEmpty = errors.New("node name is empty")
	ErrNoNodes       = errors.New("scene config has no nodes")
)

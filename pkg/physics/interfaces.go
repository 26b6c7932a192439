package physics

// Body is the dimension-independent slice of rigid-body behavior.
// It is intentionally minimal: forces, integration and collision belong to
// the physics step that owns the bodies, not to this package.
type Body interface {
	// IsKinematic reports whether the body is excluded from dynamic
	// velocity/force integration.
	IsKinematic() bool
	SetKinematic(bool)
}

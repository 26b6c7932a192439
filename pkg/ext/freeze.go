package ext

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/keelengine/keel/pkg/physics"
)

// Freeze stops rb dead: linear and angular velocity zeroed, then the body
// marked kinematic so the integrator skips it. No helper un-freezes a body;
// callers clear the kinematic flag themselves.
func Freeze(rb *physics.RigidBody3D) {
	rb.SetLinearVelocity(mgl64.Vec3{})
	rb.SetAngularVelocity(mgl64.Vec3{})
	rb.SetKinematic(true)
}

// Freeze2D is Freeze for 2D bodies, whose angular velocity is a scalar.
func Freeze2D(rb *physics.RigidBody2D) {
	rb.SetLinearVelocity(mgl64.Vec2{})
	rb.SetAngularVelocity(0)
	rb.SetKinematic(true)
}

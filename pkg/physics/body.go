package physics

import "github.com/go-gl/mathgl/mgl64"

var (
	_ Body = (*RigidBody3D)(nil)
	_ Body = (*RigidBody2D)(nil)
)

// RigidBody3D carries the dynamic state of a body in 3D space: linear and
// angular velocity plus the kinematic flag. A kinematic body keeps its
// velocities on record but the integrator no longer applies them.
type RigidBody3D struct {
	Mass float64

	linearVelocity  mgl64.Vec3
	angularVelocity mgl64.Vec3
	kinematic       bool
}

// NewRigidBody3D returns a resting dynamic body. Non-positive mass is
// promoted to 1 so a zero value never divides a collision response.
func NewRigidBody3D(mass float64) *RigidBody3D {
	if mass <= 0 {
		mass = 1
	}
	return &RigidBody3D{Mass: mass}
}

func (rb *RigidBody3D) LinearVelocity() mgl64.Vec3 {
	return rb.linearVelocity
}

func (rb *RigidBody3D) SetLinearVelocity(v mgl64.Vec3) {
	rb.linearVelocity = v
}

// AngularVelocity is the rotation axis scaled by radians per second.
func (rb *RigidBody3D) AngularVelocity() mgl64.Vec3 {
	return rb.angularVelocity
}

func (rb *RigidBody3D) SetAngularVelocity(v mgl64.Vec3) {
	rb.angularVelocity = v
}

// ApplyImpulse applies an instantaneous momentum change: velocity moves by
// impulse over mass.
func (rb *RigidBody3D) ApplyImpulse(impulse mgl64.Vec3) {
	rb.linearVelocity = rb.linearVelocity.Add(impulse.Mul(1 / rb.Mass))
}

func (rb *RigidBody3D) IsKinematic() bool {
	return rb.kinematic
}

func (rb *RigidBody3D) SetKinematic(kinematic bool) {
	rb.kinematic = kinematic
}

// RigidBody2D is the planar counterpart: velocity in the plane and a scalar
// angular velocity around the out-of-plane axis, in radians per second.
type RigidBody2D struct {
	Mass float64

	linearVelocity  mgl64.Vec2
	angularVelocity float64
	kinematic       bool
}

// NewRigidBody2D returns a resting dynamic body, with the same mass
// promotion as NewRigidBody3D.
func NewRigidBody2D(mass float64) *RigidBody2D {
	if mass <= 0 {
		mass = 1
	}
	return &RigidBody2D{Mass: mass}
}

func (rb *RigidBody2D) LinearVelocity() mgl64.Vec2 {
	return rb.linearVelocity
}

func (rb *RigidBody2D) SetLinearVelocity(v mgl64.Vec2) {
	rb.linearVelocity = v
}

func (rb *RigidBody2D) AngularVelocity() float64 {
	return rb.angularVelocity
}

func (rb *RigidBody2D) SetAngularVelocity(w float64) {
	rb.angularVelocity = w
}

// ApplyImpulse applies an instantaneous momentum change: velocity moves by
// impulse over mass.
func (rb *RigidBody2D) ApplyImpulse(impulse mgl64.Vec2) {
	rb.linearVelocity = rb.linearVelocity.Add(impulse.Mul(1 / rb.Mass))
}

func (rb *RigidBody2D) IsKinematic() bool {
	return rb.kinematic
}

func (rb *RigidBody2D) SetKinematic(kinematic bool) {
	rb.kinematic = kinematic
}

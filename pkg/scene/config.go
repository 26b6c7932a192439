package scene

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of a scene: a tree of named nodes with
// local position, rotation as euler degrees, scale, and an optional tag.
// It decodes from YAML or JSON.
type Config struct {
	Name  string       `json:"name" yaml:"name"`
	Nodes []NodeConfig `json:"nodes" yaml:"nodes"`
}

// NodeConfig describes a single node. Omitted position/rotation mean zero;
// an omitted scale means unit scale, which is why it is a pointer.
type NodeConfig struct {
	Name     string       `json:"name" yaml:"name"`
	Tag      string       `json:"tag,omitempty" yaml:"tag,omitempty"`
	Position [3]float64   `json:"position,omitempty" yaml:"position,omitempty,flow"`
	Rotation [3]float64   `json:"rotation,omitempty" yaml:"rotation,omitempty,flow"`
	Scale    *[3]float64  `json:"scale,omitempty" yaml:"scale,omitempty,flow"`
	Children []NodeConfig `json:"children,omitempty" yaml:"children,omitempty"`
}

// Load decodes a scene config from YAML. Unknown fields are errors, so typos
// in scene files fail at load time instead of silently dropping state.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scene config: %w", err)
	}
	return &c, nil
}

// Validate checks the config tree before building.
func (c *Config) Validate() error {
	if len(c.Nodes) == 0 {
		return ErrNoNodes
	}
	for i := range c.Nodes {
		if err := c.Nodes[i].Validate(); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks a node and its children.
func (nc *NodeConfig) Validate() error {
	if nc.Name == "" {
		return ErrNodeNameEmpty
	}
	for i := range nc.Children {
		if err := nc.Children[i].Validate(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

// Build validates the config and constructs the scene it describes.
func (c *Config) Build() (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := New(c.Name)
	for i := range c.Nodes {
		if err := s.Attach(buildNode(&c.Nodes[i])); err != nil {
			return nil, fmt.Errorf("attach %q: %w", c.Nodes[i].Name, err)
		}
	}
	return s, nil
}

func buildNode(nc *NodeConfig) *Transform {
	t := NewTransform(nc.Name)
	if nc.Tag != "" {
		t.SetTag(nc.Tag)
	}
	t.SetLocalPositionAndRotation(
		mgl64.Vec3{nc.Position[0], nc.Position[1], nc.Position[2]},
		eulerToQuat(nc.Rotation),
	)
	if nc.Scale != nil {
		t.SetLocalScale(mgl64.Vec3{nc.Scale[0], nc.Scale[1], nc.Scale[2]})
	}
	for i := range nc.Children {
		child := buildNode(&nc.Children[i])
		_ = child.SetParent(t)
	}
	return t
}

// Save writes the scene back out as YAML, node tree and local TRS included.
// Rotations are stored as euler degrees, so orientations that came from
// Build round-trip within float tolerance.
func Save(w io.Writer, s *Scene) error {
	cfg := Config{Name: s.Name()}
	for _, root := range s.Roots() {
		cfg.Nodes = append(cfg.Nodes, nodeConfig(root))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return fmt.Errorf("encode scene config: %w", err)
	}
	return enc.Close()
}

func nodeConfig(t *Transform) NodeConfig {
	nc := NodeConfig{
		Name: t.Name(),
		Tag:  t.TagName(),
	}
	p := t.LocalPosition()
	nc.Position = [3]float64{p.X(), p.Y(), p.Z()}
	nc.Rotation = quatToEuler(t.LocalRotation())
	if s := t.LocalScale(); s != (mgl64.Vec3{1, 1, 1}) {
		scale := [3]float64{s.X(), s.Y(), s.Z()}
		nc.Scale = &scale
	}
	for _, c := range t.Children() {
		nc.Children = append(nc.Children, nodeConfig(c))
	}
	return nc
}

// eulerToQuat builds a rotation from euler angles in degrees applied about
// the world X, then Y, then Z axes, i.e. R = Rz * Ry * Rx.
func eulerToQuat(deg [3]float64) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(deg[0]), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(mgl64.DegToRad(deg[1]), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(deg[2]), mgl64.Vec3{0, 0, 1})
	return qz.Mul(qy).Mul(qx)
}

// quatToEuler inverts eulerToQuat via the matrix factorization
// R = Rz(c)*Ry(b)*Rx(a). At the gimbal singularity (b = ±90°) the x and z
// angles share an axis; z is reported as 0 there.
func quatToEuler(q mgl64.Quat) [3]float64 {
	m := q.Mat4()
	sb := -m.At(2, 0)
	if sb > 1 {
		sb = 1
	} else if sb < -1 {
		sb = -1
	}
	b := math.Asin(sb)

	var a, c float64
	if math.Abs(sb) < 1-1e-9 {
		a = math.Atan2(m.At(2, 1), m.At(2, 2))
		c = math.Atan2(m.At(1, 0), m.At(0, 0))
	} else if sb > 0 {
		a = math.Atan2(m.At(0, 1), m.At(1, 1))
	} else {
		a = math.Atan2(-m.At(0, 1), m.At(1, 1))
	}
	return [3]float64{mgl64.RadToDeg(a), mgl64.RadToDeg(b), mgl64.RadToDeg(c)}
}

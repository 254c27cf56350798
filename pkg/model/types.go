package model

// JointType enumerates the recognized kinematic joint kinds.
// The set matches the URDF joint grammar.
type JointType string

const (
	JointFixed      JointType = "fixed"
	JointRevolute   JointType = "revolute"
	JointPrismatic  JointType = "prismatic"
	JointContinuous JointType = "continuous"
	JointFloating   JointType = "floating"
	JointPlanar     JointType = "planar"
)

// Valid reports whether t is one of the recognized joint types.
func (t JointType) Valid() bool {
	switch t {
	case JointFixed, JointRevolute, JointPrismatic, JointContinuous, JointFloating, JointPlanar:
		return true
	}
	return false
}

// GeometryKind enumerates the supported visual geometry primitives.
type GeometryKind string

const (
	GeomBox      GeometryKind = "box"
	GeomSphere   GeometryKind = "sphere"
	GeomCylinder GeometryKind = "cylinder"
	GeomCapsule  GeometryKind = "capsule"
)

// Valid reports whether k is one of the recognized geometry kinds.
func (k GeometryKind) Valid() bool {
	switch k {
	case GeomBox, GeomSphere, GeomCylinder, GeomCapsule:
		return true
	}
	return false
}

// SizeArity returns the number of size parameters the kind carries:
// box takes (x, y, z), sphere a radius, cylinder and capsule
// (radius, half-length).
func (k GeometryKind) SizeArity() int {
	switch k {
	case GeomBox:
		return 3
	case GeomSphere:
		return 1
	default:
		return 2
	}
}

// Inertia holds the six unique entries of a symmetric inertia tensor.
type Inertia struct {
	Ixx float64
	Ixy float64
	Ixz float64
	Iyy float64
	Iyz float64
	Izz float64
}

// Geometry is a tagged variant over the primitive kinds. Size carries the
// parameters proper to the kind (see GeometryKind.SizeArity); RGBA is the
// visual color with components in [0,1].
//
// Capsules have no native URDF element and are exported as cylinders of the
// same radius and length. Callers that round-trip through a URDF consumer
// will see the capsule come back as a cylinder.
type Geometry struct {
	Kind GeometryKind
	Size []float64
	RGBA [4]float64
}

// DefaultGeometry returns the fallback visual used for bodies that declare
// none: a 0.1 m cube in opaque mid-gray.
func DefaultGeometry() Geometry {
	return Geometry{
		Kind: GeomBox,
		Size: []float64{0.1, 0.1, 0.1},
		RGBA: DefaultRGBA,
	}
}

// DefaultRGBA is the visual color applied when a geometry declares none.
var DefaultRGBA = [4]float64{0.5, 0.5, 0.5, 1.0}

// Joint connects a segment to its parent body. Axis and Limits are nil when
// the source omits them; an axis only carries meaning for revolute,
// prismatic and continuous joints, and limits for the bounded types.
type Joint struct {
	Type   JointType
	Axis   *[3]float64
	Limits *[2]float64 // lower, upper
}

// Body is a rigid element of the model: the root or a segment payload.
type Body struct {
	Name     string
	Mass     float64
	Inertia  Inertia
	Geometry Geometry
}

// Segment is a non-root body attached to the tree through a joint. Parent
// names an already-defined body (the root or an earlier segment).
type Segment struct {
	Body
	Parent string
	Joint  Joint
}

// Link is one entry of the resolved traversal order: a body plus the joint
// attaching it to Parent. The root carries no joint and an empty Parent.
type Link struct {
	Body   Body
	Joint  *Joint
	Parent string
}

// RobotSpec is the whole model: one root body plus an ordered list of
// segments. The spec is built once by the loader and is read-only afterward;
// every stage downstream may assume the field-level invariants the loader
// enforces (names present, tensors complete, geometry arity correct).
type RobotSpec struct {
	Name     string
	Root     Body
	Segments []Segment
}

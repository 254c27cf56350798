// Package urdf maps the resolved robot model onto the URDF element grammar
// and serializes it into one well-formed document.
package urdf

import (
	"math"

	"github.com/aretw0/armature/pkg/model"
)

// InertialElement is the wire-level <inertial> block: mass plus the six
// tensor entries, carried verbatim from the body.
type InertialElement struct {
	Mass    float64
	Inertia model.Inertia
}

// NewInertial builds the inertial block for a body. The tensor entries are
// taken unmodified; the only value-level check is that mass and every entry
// are finite, since NaN or infinity would render an unparseable document.
func NewInertial(b model.Body) (InertialElement, error) {
	if !isFinite(b.Mass) {
		return InertialElement{}, &model.MalformedValueError{Entity: b.Name, Field: "mass", Reason: "must be finite", Value: b.Mass}
	}
	entries := []struct {
		field string
		value float64
	}{
		{"inertia.ixx", b.Inertia.Ixx}, {"inertia.ixy", b.Inertia.Ixy}, {"inertia.ixz", b.Inertia.Ixz},
		{"inertia.iyy", b.Inertia.Iyy}, {"inertia.iyz", b.Inertia.Iyz}, {"inertia.izz", b.Inertia.Izz},
	}
	for _, e := range entries {
		if !isFinite(e.value) {
			return InertialElement{}, &model.MalformedValueError{Entity: b.Name, Field: e.field, Reason: "must be finite", Value: e.value}
		}
	}
	return InertialElement{Mass: b.Mass, Inertia: b.Inertia}, nil
}

// JointElement is the wire-level <joint> block.
type JointElement struct {
	Name   string
	Type   model.JointType
	Parent string
	Child  string
	Axis   *[3]float64
	Limits *[2]float64
}

// NewJoint builds the joint block attaching child to parent. The joint name
// is derived from both link names, so it is unique whenever link names are.
func NewJoint(parent, child string, j model.Joint) JointElement {
	return JointElement{
		Name:   parent + "_to_" + child,
		Type:   j.Type,
		Parent: parent,
		Child:  child,
		Axis:   j.Axis,
		Limits: j.Limits,
	}
}

// VisualElement is the wire-level <visual> block: one geometry primitive
// plus its material.
type VisualElement struct {
	// Shape is the emitted URDF primitive. Capsules are already collapsed
	// to "cylinder" here; URDF has no capsule element, so a capsule exports
	// as a cylinder of the same radius and length (lossy on the end caps).
	Shape    model.GeometryKind
	Size     []float64 // box only: x, y, z extents
	Radius   float64   // sphere, cylinder
	Length   float64   // cylinder only, full length
	Material MaterialElement
}

// MaterialElement names a color. The name is derived from the owning body,
// so materials of distinct links never collide and repeated exports of the
// same model stay byte-identical.
type MaterialElement struct {
	Name string
	RGBA [4]float64
}

// NewVisual builds the visual block for a body. Stored cylinder and capsule
// sizes are (radius, half-length) following the physics-engine half-extent
// convention; URDF wants the full length, hence the doubling below.
func NewVisual(b model.Body) VisualElement {
	g := b.Geometry
	v := VisualElement{
		Material: MaterialElement{Name: "mat_" + b.Name, RGBA: g.RGBA},
	}
	switch g.Kind {
	case model.GeomBox:
		v.Shape = model.GeomBox
		v.Size = g.Size
	case model.GeomSphere:
		v.Shape = model.GeomSphere
		v.Radius = g.Size[0]
	case model.GeomCylinder, model.GeomCapsule:
		v.Shape = model.GeomCylinder
		v.Radius = g.Size[0]
		v.Length = 2 * g.Size[1]
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

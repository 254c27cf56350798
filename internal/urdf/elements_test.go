package urdf

import (
	"errors"
	"math"
	"testing"

	"github.com/aretw0/armature/pkg/model"
)

func TestNewInertial_CarriesTensorVerbatim(t *testing.T) {
	b := model.Body{
		Name: "arm",
		Mass: 1.25,
		Inertia: model.Inertia{
			Ixx: 0.013, Ixy: -0.0002, Ixz: 0.0, Iyy: 0.011, Iyz: 1e-9, Izz: 0.004,
		},
		Geometry: model.DefaultGeometry(),
	}

	in, err := NewInertial(b)
	if err != nil {
		t.Fatalf("NewInertial failed: %v", err)
	}
	if in.Mass != b.Mass || in.Inertia != b.Inertia {
		t.Errorf("inertial block must carry mass and tensor unmodified: %+v", in)
	}
}

func TestNewInertial_RejectsNonFinite(t *testing.T) {
	cases := []struct {
		name  string
		body  model.Body
		field string
	}{
		{"NaN mass", model.Body{Name: "b", Mass: math.NaN()}, "mass"},
		{"Inf mass", model.Body{Name: "b", Mass: math.Inf(1)}, "mass"},
		{"NaN tensor", model.Body{Name: "b", Inertia: model.Inertia{Iyz: math.NaN()}}, "inertia.iyz"},
		{"Inf tensor", model.Body{Name: "b", Inertia: model.Inertia{Ixx: math.Inf(-1)}}, "inertia.ixx"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInertial(tc.body)
			var malformed *model.MalformedValueError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedValueError, got %v", err)
			}
			if malformed.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, malformed.Field)
			}
		})
	}
}

func TestNewJoint(t *testing.T) {
	axis := [3]float64{0, 0, 1}
	limits := [2]float64{-1.57, 1.57}

	j := NewJoint("base", "arm", model.Joint{Type: model.JointRevolute, Axis: &axis, Limits: &limits})

	if j.Name != "base_to_arm" {
		t.Errorf("expected joint name base_to_arm, got %q", j.Name)
	}
	if j.Parent != "base" || j.Child != "arm" || j.Type != model.JointRevolute {
		t.Errorf("unexpected joint element: %+v", j)
	}
	if j.Axis == nil || *j.Axis != axis {
		t.Errorf("axis must pass through verbatim: %+v", j.Axis)
	}
	if j.Limits == nil || *j.Limits != limits {
		t.Errorf("limits must pass through verbatim: %+v", j.Limits)
	}
}

func TestNewJoint_OmitsAbsentOptionals(t *testing.T) {
	j := NewJoint("base", "arm", model.Joint{Type: model.JointFixed})
	if j.Axis != nil || j.Limits != nil {
		t.Errorf("absent axis/limits must stay nil: %+v", j)
	}
}

func TestNewVisual_Shapes(t *testing.T) {
	cases := []struct {
		name string
		geom model.Geometry
		want VisualElement
	}{
		{
			"box passes size through",
			model.Geometry{Kind: model.GeomBox, Size: []float64{0.1, 0.2, 0.3}},
			VisualElement{Shape: model.GeomBox, Size: []float64{0.1, 0.2, 0.3}},
		},
		{
			"sphere passes radius through",
			model.Geometry{Kind: model.GeomSphere, Size: []float64{0.021}},
			VisualElement{Shape: model.GeomSphere, Radius: 0.021},
		},
		{
			"cylinder doubles half-length",
			model.Geometry{Kind: model.GeomCylinder, Size: []float64{0.05, 0.2}},
			VisualElement{Shape: model.GeomCylinder, Radius: 0.05, Length: 0.4},
		},
		{
			"capsule approximated as cylinder",
			model.Geometry{Kind: model.GeomCapsule, Size: []float64{0.05, 0.2}},
			VisualElement{Shape: model.GeomCylinder, Radius: 0.05, Length: 0.4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVisual(model.Body{Name: "part", Geometry: tc.geom})

			if v.Shape != tc.want.Shape {
				t.Errorf("shape: got %q, want %q", v.Shape, tc.want.Shape)
			}
			if v.Radius != tc.want.Radius || v.Length != tc.want.Length {
				t.Errorf("radius/length: got %g/%g, want %g/%g", v.Radius, v.Length, tc.want.Radius, tc.want.Length)
			}
			if len(tc.want.Size) > 0 {
				for i := range tc.want.Size {
					if v.Size[i] != tc.want.Size[i] {
						t.Errorf("size[%d]: got %g, want %g", i, v.Size[i], tc.want.Size[i])
					}
				}
			}
			if v.Material.Name != "mat_part" {
				t.Errorf("material name must derive from the body: %q", v.Material.Name)
			}
		})
	}
}

func TestNewVisual_DefaultGeometry(t *testing.T) {
	v := NewVisual(model.Body{Name: "plain", Geometry: model.DefaultGeometry()})

	if v.Shape != model.GeomBox {
		t.Fatalf("default geometry must be a box, got %q", v.Shape)
	}
	for i, want := range []float64{0.1, 0.1, 0.1} {
		if v.Size[i] != want {
			t.Errorf("default box size[%d]: got %g, want %g", i, v.Size[i], want)
		}
	}
	if v.Material.RGBA != model.DefaultRGBA {
		t.Errorf("default color must be opaque mid-gray, got %v", v.Material.RGBA)
	}
}

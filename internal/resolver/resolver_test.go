package resolver

import (
	"errors"
	"testing"

	"github.com/aretw0/armature/pkg/model"
)

func body(name string) model.Body {
	return model.Body{Name: name, Mass: 1, Geometry: model.DefaultGeometry()}
}

func segment(name, parent string) model.Segment {
	return model.Segment{Body: body(name), Parent: parent, Joint: model.Joint{Type: model.JointFixed}}
}

func TestResolve_RootFirstParentBeforeChild(t *testing.T) {
	spec := &model.RobotSpec{
		Root: body("base"),
		Segments: []model.Segment{
			segment("torso", "base"),
			segment("arm", "torso"),
			segment("club", "arm"),
			segment("counterweight", "torso"),
		},
	}

	links, err := Resolve(spec)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(links) != 5 {
		t.Fatalf("expected 5 links, got %d", len(links))
	}
	if links[0].Body.Name != "base" || links[0].Joint != nil || links[0].Parent != "" {
		t.Errorf("first link must be the bare root, got %+v", links[0])
	}

	// Every body appears strictly after its parent.
	position := make(map[string]int)
	for i, l := range links {
		position[l.Body.Name] = i
	}
	for _, l := range links[1:] {
		if position[l.Parent] >= position[l.Body.Name] {
			t.Errorf("%s appears before its parent %s", l.Body.Name, l.Parent)
		}
		if l.Joint == nil {
			t.Errorf("non-root link %s has no joint", l.Body.Name)
		}
	}
}

func TestResolve_UnknownParent(t *testing.T) {
	cases := []struct {
		name     string
		segments []model.Segment
		parent   string
	}{
		{"dangling", []model.Segment{segment("arm", "shoulder")}, "shoulder"},
		{"forward reference", []model.Segment{
			segment("arm", "torso"),
			segment("torso", "base"),
		}, "torso"},
		{"self reference", []model.Segment{segment("arm", "arm")}, "arm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := &model.RobotSpec{Root: body("base"), Segments: tc.segments}
			_, err := Resolve(spec)

			var unknown *model.UnknownParentError
			if !errors.As(err, &unknown) {
				t.Fatalf("expected UnknownParentError, got %v", err)
			}
			if unknown.Parent != tc.parent {
				t.Errorf("expected parent %q in error, got %q", tc.parent, unknown.Parent)
			}
		})
	}
}

func TestResolve_DuplicateName(t *testing.T) {
	spec := &model.RobotSpec{
		Root: body("base"),
		Segments: []model.Segment{
			segment("arm", "base"),
			segment("arm", "base"),
		},
	}
	_, err := Resolve(spec)

	var dup *model.DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if dup.Name != "arm" {
		t.Errorf("expected duplicate name arm, got %q", dup.Name)
	}
}

func TestResolve_SegmentCollidesWithRoot(t *testing.T) {
	spec := &model.RobotSpec{
		Root:     body("base"),
		Segments: []model.Segment{segment("base", "base")},
	}
	_, err := Resolve(spec)

	var dup *model.DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
}

func TestResolve_RootOnly(t *testing.T) {
	links, err := Resolve(&model.RobotSpec{Root: body("base")})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected a single link, got %d", len(links))
	}
}

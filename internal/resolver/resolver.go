// Package resolver linearizes the kinematic tree into the deterministic
// parent-before-child order the serializer emits.
package resolver

import (
	"github.com/aretw0/armature/pkg/model"
)

// Resolve validates the tree structure of spec and returns its traversal
// order, root first.
//
// Segments may only reference the root or an earlier segment as parent, so a
// single left-to-right pass already yields a parent-before-child order. The
// pass still checks every reference explicitly: a forward or dangling parent
// yields UnknownParentError and a reused body name DuplicateNameError.
// Nothing downstream re-checks this, so the verification here is exhaustive
// rather than best-effort.
func Resolve(spec *model.RobotSpec) ([]model.Link, error) {
	links := make([]model.Link, 0, len(spec.Segments)+1)
	seen := make(map[string]bool, len(spec.Segments)+1)

	links = append(links, model.Link{Body: spec.Root})
	seen[spec.Root.Name] = true

	for i := range spec.Segments {
		seg := &spec.Segments[i]
		if seen[seg.Name] {
			return nil, &model.DuplicateNameError{Name: seg.Name}
		}
		if !seen[seg.Parent] {
			return nil, &model.UnknownParentError{Segment: seg.Name, Parent: seg.Parent}
		}
		links = append(links, model.Link{Body: seg.Body, Joint: &seg.Joint, Parent: seg.Parent})
		seen[seg.Name] = true
	}

	return links, nil
}

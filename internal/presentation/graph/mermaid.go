package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/armature/pkg/model"
)

// GenerateMermaid produces a Mermaid flowchart (graph TD) of the kinematic
// tree from its resolved traversal order. It applies semantic styling:
//   - Root body: ((Circle))
//   - Fixed-jointed body: [[Subroutine]]
//   - Default: [Rectangle]
//
// Joints appear as edges labeled with the joint type and, when declared,
// the motion limits. Output is deterministic for the same traversal order.
func GenerateMermaid(links []model.Link) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, link := range links {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(link.Body.Name)

		// Node Shape based on attachment
		opener, closer := "[", "]"
		switch {
		case link.Joint == nil: // root
			opener, closer = "((", "))"
		case link.Joint.Type == model.JointFixed:
			opener, closer = "[[", "]]"
		}

		// Escape double quotes in names for Mermaid labels
		label := strings.ReplaceAll(link.Body.Name, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		if link.Joint == nil {
			continue
		}

		edgeLabel := string(link.Joint.Type)
		if link.Joint.Limits != nil {
			edgeLabel = fmt.Sprintf("%s [%g, %g]", edgeLabel, link.Joint.Limits[0], link.Joint.Limits[1])
		}
		arrow := fmt.Sprintf("-- \"%s\" -->", edgeLabel)
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(link.Parent), arrow, safeID))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

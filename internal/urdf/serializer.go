package urdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/armature/pkg/model"
)

const header = `<?xml version="1.0"?>`

// Render produces the complete URDF document for the given traversal order:
// the <robot> wrapper, the root link, then a joint immediately followed by
// its link for every further traversal entry.
//
// All attribute values pass through escapeAttr before embedding, regardless
// of where they came from; that guarantee lives here and not in the element
// generators. Numbers are formatted with strconv in the shortest
// round-trippable form, so identical input renders identically on every run.
func Render(name string, links []model.Link) (string, error) {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	fmt.Fprintf(&sb, "<robot name=\"%s\">\n", escapeAttr(name))
	sb.WriteString("  <!-- Generated from canonical YAML model description -->\n")

	for _, link := range links {
		if link.Joint != nil {
			writeJoint(&sb, NewJoint(link.Parent, link.Body.Name, *link.Joint))
		}
		inertial, err := NewInertial(link.Body)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  <link name=\"%s\">\n", escapeAttr(link.Body.Name))
		writeInertial(&sb, inertial)
		writeVisual(&sb, NewVisual(link.Body))
		sb.WriteString("  </link>\n")
	}

	sb.WriteString("</robot>\n")
	return sb.String(), nil
}

// Write renders the document and delivers it to w in a single call, so no
// partial document is ever observable through the sink on failure.
func Write(w io.Writer, name string, links []model.Link) error {
	doc, err := Render(name, links)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return &model.WriteError{Err: err}
	}
	return nil
}

func writeJoint(sb *strings.Builder, j JointElement) {
	fmt.Fprintf(sb, "  <joint name=\"%s\" type=\"%s\">\n", escapeAttr(j.Name), escapeAttr(string(j.Type)))
	fmt.Fprintf(sb, "    <parent link=\"%s\"/>\n", escapeAttr(j.Parent))
	fmt.Fprintf(sb, "    <child link=\"%s\"/>\n", escapeAttr(j.Child))
	if j.Axis != nil {
		fmt.Fprintf(sb, "    <axis xyz=\"%s %s %s\"/>\n", num(j.Axis[0]), num(j.Axis[1]), num(j.Axis[2]))
	}
	if j.Limits != nil {
		fmt.Fprintf(sb, "    <limit lower=\"%s\" upper=\"%s\"/>\n", num(j.Limits[0]), num(j.Limits[1]))
	}
	sb.WriteString("  </joint>\n")
}

func writeInertial(sb *strings.Builder, in InertialElement) {
	sb.WriteString("    <inertial>\n")
	fmt.Fprintf(sb, "      <mass value=\"%s\"/>\n", num(in.Mass))
	sb.WriteString("      <inertia\n")
	fmt.Fprintf(sb, "        ixx=\"%s\"\n", num(in.Inertia.Ixx))
	fmt.Fprintf(sb, "        ixy=\"%s\"\n", num(in.Inertia.Ixy))
	fmt.Fprintf(sb, "        ixz=\"%s\"\n", num(in.Inertia.Ixz))
	fmt.Fprintf(sb, "        iyy=\"%s\"\n", num(in.Inertia.Iyy))
	fmt.Fprintf(sb, "        iyz=\"%s\"\n", num(in.Inertia.Iyz))
	fmt.Fprintf(sb, "        izz=\"%s\"/>\n", num(in.Inertia.Izz))
	sb.WriteString("    </inertial>\n")
}

func writeVisual(sb *strings.Builder, v VisualElement) {
	sb.WriteString("    <visual>\n")
	sb.WriteString("      <geometry>\n")
	switch v.Shape {
	case model.GeomBox:
		fmt.Fprintf(sb, "        <box size=\"%s %s %s\"/>\n", num(v.Size[0]), num(v.Size[1]), num(v.Size[2]))
	case model.GeomSphere:
		fmt.Fprintf(sb, "        <sphere radius=\"%s\"/>\n", num(v.Radius))
	case model.GeomCylinder:
		fmt.Fprintf(sb, "        <cylinder radius=\"%s\" length=\"%s\"/>\n", num(v.Radius), num(v.Length))
	}
	sb.WriteString("      </geometry>\n")
	fmt.Fprintf(sb, "      <material name=\"%s\">\n", escapeAttr(v.Material.Name))
	fmt.Fprintf(sb, "        <color rgba=\"%s %s %s %s\"/>\n",
		num(v.Material.RGBA[0]), num(v.Material.RGBA[1]), num(v.Material.RGBA[2]), num(v.Material.RGBA[3]))
	sb.WriteString("      </material>\n")
	sb.WriteString("    </visual>\n")
}

// num renders a float in the shortest form that parses back to the same
// value, using '.' regardless of locale.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeAttr escapes the five XML reserved characters for use inside a
// double-quoted attribute value. Legal names pass through unchanged.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

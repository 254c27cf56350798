// Package loader parses the canonical YAML robot description into a typed
// model.RobotSpec. All field-presence and shape validation happens here, so
// downstream stages can assume well-formed data.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/armature/internal/logging"
	"github.com/aretw0/armature/pkg/model"
)

// DefaultRobotName names the wrapper element when the description declares
// no top-level name.
const DefaultRobotName = "robot"

// Loader converts raw YAML documents into RobotSpec values.
type Loader struct {
	logger *slog.Logger
}

// New creates a Loader. A nil logger disables the warning emitted when a
// malformed joint limit is dropped.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads the description at path and parses it.
func (l *Loader) Load(path string) (*model.RobotSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening spec: %w", err)
	}
	defer f.Close()
	return l.Parse(f)
}

// rawDoc mirrors the top-level shape of the YAML description. Leaf values
// stay loosely typed so that validation can report precise shape errors
// instead of generic decode failures.
type rawDoc struct {
	Name     string           `mapstructure:"name"`
	Root     map[string]any   `mapstructure:"root"`
	Segments []map[string]any `mapstructure:"segments"`
}

type rawBody struct {
	Name     string         `mapstructure:"name"`
	Mass     any            `mapstructure:"mass"`
	Inertia  map[string]any `mapstructure:"inertia"`
	Geometry map[string]any `mapstructure:"geometry"`
}

// rawSegment only carries the segment-specific keys; the body payload is
// re-read from the same mapping by parseBody.
type rawSegment struct {
	Parent string         `mapstructure:"parent"`
	Joint  map[string]any `mapstructure:"joint"`
}

// Parse decodes one YAML document from r into a validated RobotSpec.
func (l *Loader) Parse(r io.Reader) (*model.RobotSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing spec: %w", err)
	}

	var doc rawDoc
	if err := decode(raw, &doc); err != nil {
		return nil, &model.MalformedValueError{Entity: "spec", Field: "(document)", Reason: err.Error()}
	}

	spec := &model.RobotSpec{Name: doc.Name}
	if spec.Name == "" {
		spec.Name = DefaultRobotName
	}

	if doc.Root == nil {
		return nil, &model.MissingFieldError{Entity: "spec", Field: "root"}
	}
	root, err := l.parseBody(doc.Root, "root")
	if err != nil {
		return nil, err
	}
	spec.Root = root

	for i, rawSeg := range doc.Segments {
		seg, err := l.parseSegment(rawSeg, i, spec.Root.Name)
		if err != nil {
			return nil, err
		}
		spec.Segments = append(spec.Segments, seg)
	}

	return spec, nil
}

func (l *Loader) parseBody(raw map[string]any, entity string) (model.Body, error) {
	var rb rawBody
	if err := decode(raw, &rb); err != nil {
		return model.Body{}, &model.MalformedValueError{Entity: entity, Field: "(body)", Reason: err.Error()}
	}
	if rb.Name == "" {
		return model.Body{}, &model.MissingFieldError{Entity: entity, Field: "name"}
	}
	entity = rb.Name

	if rb.Mass == nil {
		return model.Body{}, &model.MissingFieldError{Entity: entity, Field: "mass"}
	}
	mass, ok := asFloat(rb.Mass)
	if !ok {
		return model.Body{}, &model.MalformedValueError{Entity: entity, Field: "mass", Reason: "expected a number", Value: rb.Mass}
	}
	if mass < 0 {
		return model.Body{}, &model.MalformedValueError{Entity: entity, Field: "mass", Reason: "must be non-negative", Value: mass}
	}

	inertia, err := parseInertia(rb.Inertia, entity)
	if err != nil {
		return model.Body{}, err
	}

	geom, err := parseGeometry(rb.Geometry, entity)
	if err != nil {
		return model.Body{}, err
	}

	return model.Body{Name: rb.Name, Mass: mass, Inertia: inertia, Geometry: geom}, nil
}

func (l *Loader) parseSegment(raw map[string]any, index int, rootName string) (model.Segment, error) {
	entity := fmt.Sprintf("segments[%d]", index)

	var rs rawSegment
	if err := decode(raw, &rs); err != nil {
		return model.Segment{}, &model.MalformedValueError{Entity: entity, Field: "(segment)", Reason: err.Error()}
	}

	body, err := l.parseBody(raw, entity)
	if err != nil {
		return model.Segment{}, err
	}

	joint, err := l.parseJoint(rs.Joint, body.Name)
	if err != nil {
		return model.Segment{}, err
	}

	// Historical descriptions attached every segment directly to the root
	// and carried no parent field at all; absent parent keeps that meaning.
	parent := rs.Parent
	if parent == "" {
		parent = rootName
	}

	return model.Segment{Body: body, Parent: parent, Joint: joint}, nil
}

func (l *Loader) parseJoint(raw map[string]any, entity string) (model.Joint, error) {
	if raw == nil {
		return model.Joint{}, &model.MissingFieldError{Entity: entity, Field: "joint"}
	}

	typeVal, ok := raw["type"]
	if !ok {
		return model.Joint{}, &model.MissingFieldError{Entity: entity, Field: "joint.type"}
	}
	typeStr, ok := typeVal.(string)
	jt := model.JointType(typeStr)
	if !ok || !jt.Valid() {
		return model.Joint{}, &model.MalformedValueError{Entity: entity, Field: "joint.type", Reason: "unrecognized joint type", Value: typeVal}
	}
	joint := model.Joint{Type: jt}

	if axisVal, ok := raw["axis"]; ok {
		axis, ok := asVector(axisVal, 3)
		if !ok {
			return model.Joint{}, &model.MalformedValueError{Entity: entity, Field: "joint.axis", Reason: "expected a 3-vector of numbers", Value: axisVal}
		}
		joint.Axis = &[3]float64{axis[0], axis[1], axis[2]}
	}

	if limVal, ok := raw["limits"]; ok {
		lim, ok := asVector(limVal, 2)
		switch {
		case !ok:
			// Best-effort compatibility with older descriptions: a limit of
			// the wrong shape is dropped, not fatal, but never silently.
			l.logger.Warn("dropping malformed joint limits", "segment", entity, "limits", limVal)
		case lim[0] > lim[1]:
			return model.Joint{}, &model.MalformedValueError{Entity: entity, Field: "joint.limits", Reason: "lower bound exceeds upper bound", Value: limVal}
		default:
			joint.Limits = &[2]float64{lim[0], lim[1]}
		}
	}

	return joint, nil
}

var inertiaKeys = []string{"ixx", "ixy", "ixz", "iyy", "iyz", "izz"}

func parseInertia(raw map[string]any, entity string) (model.Inertia, error) {
	if raw == nil {
		return model.Inertia{}, &model.MissingFieldError{Entity: entity, Field: "inertia"}
	}
	vals := make(map[string]float64, len(inertiaKeys))
	for _, key := range inertiaKeys {
		v, ok := raw[key]
		if !ok {
			return model.Inertia{}, &model.MissingFieldError{Entity: entity, Field: "inertia." + key}
		}
		f, ok := asFloat(v)
		if !ok {
			return model.Inertia{}, &model.MalformedValueError{Entity: entity, Field: "inertia." + key, Reason: "expected a number", Value: v}
		}
		vals[key] = f
	}
	return model.Inertia{
		Ixx: vals["ixx"], Ixy: vals["ixy"], Ixz: vals["ixz"],
		Iyy: vals["iyy"], Iyz: vals["iyz"], Izz: vals["izz"],
	}, nil
}

func parseGeometry(raw map[string]any, entity string) (model.Geometry, error) {
	if raw == nil {
		return model.DefaultGeometry(), nil
	}

	kind := model.GeomBox
	if typeVal, ok := raw["type"]; ok {
		typeStr, ok := typeVal.(string)
		kind = model.GeometryKind(typeStr)
		if !ok || !kind.Valid() {
			return model.Geometry{}, &model.MalformedValueError{Entity: entity, Field: "geometry.type", Reason: "unrecognized geometry type", Value: typeVal}
		}
	}

	size := defaultSize(kind)
	if sizeVal, ok := raw["size"]; ok {
		if kind == model.GeomSphere {
			// A sphere radius may be written as a bare scalar.
			if f, ok := asFloat(sizeVal); ok {
				sizeVal = []any{f}
			}
		}
		vec, ok := asVector(sizeVal, kind.SizeArity())
		if !ok {
			return model.Geometry{}, &model.MalformedValueError{
				Entity: entity,
				Field:  "geometry.size",
				Reason: fmt.Sprintf("%s expects %d size parameter(s)", kind, kind.SizeArity()),
				Value:  sizeVal,
			}
		}
		size = vec
	}

	rgba := model.DefaultRGBA
	if colorVal, ok := raw["visual_rgba"]; ok {
		vec, ok := asVector(colorVal, 4)
		if !ok {
			return model.Geometry{}, &model.MalformedValueError{Entity: entity, Field: "geometry.visual_rgba", Reason: "expected a 4-component RGBA vector", Value: colorVal}
		}
		rgba = [4]float64{vec[0], vec[1], vec[2], vec[3]}
	}

	return model.Geometry{Kind: kind, Size: size, RGBA: rgba}, nil
}

func defaultSize(kind model.GeometryKind) []float64 {
	switch kind {
	case model.GeomBox:
		return []float64{0.1, 0.1, 0.1}
	case model.GeomSphere:
		return []float64{0.1}
	default:
		return []float64{0.1, 0.1}
	}
}

// decode maps a loose YAML mapping onto a raw struct. Unknown keys are
// tolerated so that descriptions may carry annotations the exporter ignores.
func decode(input, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  output,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// asFloat converts the numeric types the YAML decoder produces.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asVector converts a loose list into a float slice of exactly the given
// arity.
func asVector(v any, arity int) ([]float64, bool) {
	list, ok := v.([]any)
	if !ok || len(list) != arity {
		return nil, false
	}
	out := make([]float64, arity)
	for i, elem := range list {
		f, ok := asFloat(elem)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

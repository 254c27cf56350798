package armature

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/armature/internal/loader"
	"github.com/aretw0/armature/internal/logging"
	"github.com/aretw0/armature/internal/resolver"
	"github.com/aretw0/armature/internal/urdf"
	"github.com/aretw0/armature/pkg/model"
)

// Version is the library version, reported by the CLI.
const Version = "0.2.0"

// Exporter is the high-level entry point for the Armature library. It owns
// one loaded RobotSpec and exports it to URDF. An Exporter is immutable
// after New; concurrent exports of distinct Exporters need no coordination.
type Exporter struct {
	spec   *model.RobotSpec
	logger *slog.Logger
	name   string
}

// Option defines a functional option for configuring the Exporter.
type Option func(*Exporter)

// WithLogger sets a custom structured logger. The default discards logs.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithSpec injects an in-memory model, bypassing the YAML loader. The
// caller is then responsible for having built a field-complete spec; tree
// structure is still verified on export.
func WithSpec(spec *model.RobotSpec) Option {
	return func(e *Exporter) {
		e.spec = spec
	}
}

// WithRobotName overrides the wrapper element name declared in (or
// defaulted by) the description.
func WithRobotName(name string) Option {
	return func(e *Exporter) {
		e.name = name
	}
}

// New initializes an Exporter from the YAML description at specPath.
// If WithSpec is provided, specPath may be empty and no file is read.
func New(specPath string, opts ...Option) (*Exporter, error) {
	exp := &Exporter{}
	for _, opt := range opts {
		opt(exp)
	}
	if exp.logger == nil {
		exp.logger = logging.NewNop()
	}

	if exp.spec == nil {
		if specPath == "" {
			return nil, fmt.Errorf("specPath is required when no spec is injected")
		}
		spec, err := loader.New(exp.logger).Load(specPath)
		if err != nil {
			return nil, err
		}
		exp.spec = spec
	}

	if exp.name == "" {
		exp.name = exp.spec.Name
	}
	if exp.name == "" {
		exp.name = loader.DefaultRobotName
	}

	return exp, nil
}

// Spec returns the loaded model. It must be treated as read-only.
func (e *Exporter) Spec() *model.RobotSpec {
	return e.spec
}

// Name returns the effective robot name used for the wrapper element.
func (e *Exporter) Name() string {
	return e.name
}

// Inspect validates the kinematic tree and returns its traversal order,
// root first, for visualization or introspection tools.
func (e *Exporter) Inspect() ([]model.Link, error) {
	return resolver.Resolve(e.spec)
}

// Export validates the tree and writes the complete URDF document to w.
// Nothing is written unless the whole model renders cleanly.
func (e *Exporter) Export(w io.Writer) error {
	links, err := resolver.Resolve(e.spec)
	if err != nil {
		return err
	}
	if err := urdf.Write(w, e.name, links); err != nil {
		return err
	}
	e.logger.Info("exported URDF", "robot", e.name, "links", len(links))
	return nil
}

// ExportFile exports to the file at path. The document is rendered fully in
// memory first, so a resolve or render failure leaves no file behind.
func (e *Exporter) ExportFile(path string) error {
	links, err := resolver.Resolve(e.spec)
	if err != nil {
		return err
	}
	doc, err := urdf.Render(e.name, links)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return &model.WriteError{Path: path, Err: err}
	}
	e.logger.Info("exported URDF", "robot", e.name, "links", len(links), "path", path)
	return nil
}

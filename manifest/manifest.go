package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fgraph/core"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension or Format.
	ErrUnsupportedFormat = errors.New("manifest: unsupported format")

	// ErrInvalidManifest wraps struct validation failures.
	ErrInvalidManifest = errors.New("manifest: invalid manifest")

	// ErrEdgeOutOfRange is returned when an edge endpoint is not a node position.
	ErrEdgeOutOfRange = errors.New("manifest: edge endpoint out of range")

	// ErrUnknownNode is returned by Resolve when no node holds the value.
	ErrUnknownNode = errors.New("manifest: unknown node")
)

// Format selects the manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// EdgeSpec links the nodes at positions From and To.
type EdgeSpec struct {
	From int `yaml:"from" toml:"from" json:"from" validate:"gte=0"`
	To   int `yaml:"to" toml:"to" json:"to" validate:"gte=0"`
}

// Manifest is the decoded form of a graph document.
type Manifest struct {
	Directed bool       `yaml:"directed" toml:"directed" json:"directed"`
	Nodes    []string   `yaml:"nodes" toml:"nodes" json:"nodes" validate:"required,min=1"`
	Edges    []EdgeSpec `yaml:"edges,omitempty" toml:"edges,omitempty" json:"edges,omitempty" validate:"dive"`
}

// FormatOf infers the format from a file extension (.yaml, .yml, .json, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("manifest: decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("manifest: decode json: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("manifest: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks struct tags and that every edge endpoint names a node position.
func (m *Manifest) Validate() error {
	if err := validateStruct(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	for i, e := range m.Edges {
		if e.From >= len(m.Nodes) || e.To >= len(m.Nodes) {
			return fmt.Errorf("%w: edge %d (%d-%d) with %d nodes", ErrEdgeOutOfRange, i, e.From, e.To, len(m.Nodes))
		}
	}
	return nil
}

// Build folds Add over Nodes and ConnectAt over Edges. The manifest's
// directedness overrides any WithDirected in opts.
func (m *Manifest) Build(opts ...core.GraphOption) (*core.Graph[string], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g := core.New[string](append(slices.Clip(opts), core.WithDirected(m.Directed))...)
	for _, v := range m.Nodes {
		g = g.Add(v)
	}

	var err error
	for i, e := range m.Edges {
		if g, err = g.ConnectAt(e.From, e.To); err != nil {
			return nil, fmt.Errorf("manifest: edge %d: %w", i, err)
		}
	}
	return g, nil
}

// FromGraph captures g as a manifest. Edges are listed as g.Edges reports them.
func FromGraph(g *core.Graph[string]) *Manifest {
	m := &Manifest{Directed: g.Directed(), Nodes: g.Values()}
	for _, e := range g.Edges() {
		m.Edges = append(m.Edges, EdgeSpec{From: e.Source(), To: e.Target()})
	}
	return m
}

// Encode renders m in the given format.
func (m *Manifest) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("manifest: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("manifest: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("manifest: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, fmt.Errorf("manifest: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Resolve returns the lowest-identity node of g holding value.
func Resolve(g *core.Graph[string], value string) (core.Node[string], error) {
	ids := g.NodesWith(value)
	if len(ids) == 0 {
		return core.Node[string]{}, fmt.Errorf("%w: %q", ErrUnknownNode, value)
	}
	n, _ := g.Node(ids[0])
	return n, nil
}

package topology

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qosroute/core"
)

// FormatOf picks the format from the file extension (case-insensitive).
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}

// FromGraph captures g in a Document. Nodes are sorted and links follow
// edge-ID order, so equal graphs serialize identically.
func FromGraph(name string, g *core.Graph) Document {
	doc := Document{
		Name:     name,
		Directed: g.Directed(),
		Nodes:    g.Vertices(),
	}
	edges := g.Edges()
	doc.Links = make([]Link, len(edges))
	for i, e := range edges {
		doc.Links[i] = Link{
			From:        e.From,
			To:          e.To,
			Delay:       e.Delay,
			Reliability: e.Reliability,
			Resource:    e.Resource,
			Bandwidth:   e.Bandwidth,
		}
	}

	return doc
}

// Graph validates the document and builds the network (core.FromLists
// rules: no implicit vertices, valid attributes, no conflicting duplicates).
func (d Document) Graph() (*core.Graph, error) {
	specs := make([]core.EdgeSpec, len(d.Links))
	for i, l := range d.Links {
		specs[i] = core.EdgeSpec{
			From: l.From,
			To:   l.To,
			Attributes: core.Attributes{
				Delay:       l.Delay,
				Reliability: l.Reliability,
				Resource:    l.Resource,
				Bandwidth:   l.Bandwidth,
			},
		}
	}

	return core.FromLists(d.Nodes, specs, core.WithDirected(d.Directed))
}

// Marshal encodes d in format f.
func Marshal(d Document, f Format) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(d)
	case JSON:
		return json.MarshalIndent(d, "", "\t")
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnknownFormat, int(f))
	}
}

// Unmarshal decodes data in format f.
func Unmarshal(data []byte, f Format) (Document, error) {
	var (
		d   Document
		err error
	)
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &d)
	case JSON:
		err = json.Unmarshal(data, &d)
	default:
		return Document{}, fmt.Errorf("%w: format %d", ErrUnknownFormat, int(f))
	}
	if err != nil {
		return Document{}, fmt.Errorf("topology: decode: %w", err)
	}

	return d, nil
}

// Save writes g to filename, YAML or JSON by extension.
func Save(filename, name string, g *core.Graph) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	data, err := Marshal(FromGraph(name, g), f)
	if err != nil {
		return fmt.Errorf("topology: encode: %w", err)
	}
	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("topology: write %s: %w", filename, err)
	}

	return nil
}

// Load reads a network from filename, YAML or JSON by extension.
func Load(filename string) (*core.Graph, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", filename, err)
	}
	d, err := Unmarshal(data, f)
	if err != nil {
		return nil, err
	}
	g, err := d.Graph()
	if err != nil {
		return nil, fmt.Errorf("topology: %s: %w", filename, err)
	}

	return g, nil
}

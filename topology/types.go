// Package topology reads and writes network descriptions as YAML or JSON.
package topology

import "errors"

// ErrUnknownFormat indicates a file extension that is neither YAML nor JSON.
var ErrUnknownFormat = errors.New("topology: unknown file format")

// Format selects the serialization.
type Format int

const (
	// YAML is selected by .yaml and .yml.
	YAML Format = iota
	// JSON is selected by .json.
	JSON
)

// Document is the serialized form of a network.
type Document struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Directed bool     `yaml:"directed" json:"directed"`
	Nodes    []string `yaml:"nodes" json:"nodes"`
	Links    []Link   `yaml:"links" json:"links"`
}

// Link is one serialized link.
type Link struct {
	From        string  `yaml:"from" json:"from"`
	To          string  `yaml:"to" json:"to"`
	Delay       float64 `yaml:"delay" json:"delay"`
	Reliability float64 `yaml:"reliability" json:"reliability"`
	Resource    float64 `yaml:"resource" json:"resource"`
	Bandwidth   float64 `yaml:"bandwidth,omitempty" json:"bandwidth,omitempty"`
}

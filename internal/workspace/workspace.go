// Package workspace reads and writes whole schema workspaces as YAML
// documents. Import replays a document through the mutation operations, so
// every name, slug and reference is validated exactly as it would be over
// the API.
package workspace

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/johnwards/temple/internal/domain"
)

// Document is the YAML form of a workspace.
type Document struct {
	AttributeTypes []AttributeType `yaml:"attribute_types,omitempty"`
	Projects       []Project       `yaml:"projects,omitempty"`
}

// AttributeType is a catalogue entry of a Document.
type AttributeType struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Project is a project of a Document with its models.
type Project struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Archived    bool    `yaml:"archived,omitempty"`
	Models      []Model `yaml:"models,omitempty"`
}

// Model is a model of a Document. Associations refer to other models of
// the same project by name.
type Model struct {
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description,omitempty"`
	Attributes   []Attribute   `yaml:"attributes,omitempty"`
	Associations []Association `yaml:"associations,omitempty"`
}

// Attribute names its attribute type by name or slug.
type Attribute struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Type        string `yaml:"type"`
}

// Association is an association of a Document. A blank name takes the
// default derived from Kind and Model.
type Association struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Kind        string `yaml:"kind"`
	Model       string `yaml:"model"`
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, domain.InvalidArgument("parse workspace: %v", err)
	}
	return doc, nil
}

// Write encodes doc as YAML.
func Write(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode workspace: %w", err)
	}
	return enc.Close()
}

// Summary counts what Import created.
type Summary struct {
	AttributeTypes int `json:"attributeTypes"`
	Projects       int `json:"projects"`
	Models         int `json:"models"`
	Attributes     int `json:"attributes"`
	Associations   int `json:"associations"`
}

func fromDomain(p domain.Project) Project {
	return Project{
		Name:        p.Name,
		Description: domain.Deref(p.Description),
		Archived:    p.Archived(),
	}
}

package domain

import (
	"fmt"
	"time"
)

// Project groups the Models of one designed system.
type Project struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
}

// Archived reports whether the project carries an archive mark.
func (p Project) Archived() bool {
	return p.ArchivedAt != nil
}

// AttributeType is a reusable scalar type that Attributes refer to.
type AttributeType struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// Model is one class of a designed system. Its slug is unique within its
// Project only.
type Model struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// Attribute is a typed field of a Model.
type Attribute struct {
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Type        AttributeType `json:"type"`
}

// Association is a directed relationship from its owning Model to Model.
type Association struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Kind        AssociationKind `json:"kind"`
	Model       Model           `json:"model"`
}

// ModelOverview is a Model together with its Attributes and Associations.
// It is assembled on read and never stored.
type ModelOverview struct {
	Model        Model         `json:"model"`
	Attributes   []Attribute   `json:"attributes"`
	Associations []Association `json:"associations"`
}

// Optional returns nil for the empty string and a pointer to s otherwise.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AssociationKind is the closed vocabulary of association kinds.
type AssociationKind int

const (
	BelongsTo AssociationKind = iota + 1
	HasOne
	HasMany
)

var associationKindNames = map[AssociationKind]string{
	BelongsTo: "belongs_to",
	HasOne:    "has_one",
	HasMany:   "has_many",
}

// ParseAssociationKind accepts exactly "belongs_to", "has_one" and
// "has_many". Anything else is an InvalidArgument error.
func ParseAssociationKind(s string) (AssociationKind, error) {
	for k, name := range associationKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, InvalidArgument("kind %q is not one of belongs_to, has_one, has_many", s)
}

// String returns the wire name of the kind.
func (k AssociationKind) String() string {
	if name, ok := associationKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AssociationKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k AssociationKind) MarshalText() ([]byte, error) {
	if _, ok := associationKindNames[k]; !ok {
		return nil, InvalidArgument("unknown association kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AssociationKind) UnmarshalText(b []byte) error {
	parsed, err := ParseAssociationKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ArchiveFilter selects projects by their archive mark.
type ArchiveFilter int

const (
	// ActiveOnly keeps projects without an archive mark.
	ActiveOnly ArchiveFilter = iota
	// ArchivedOnly keeps archived projects.
	ArchivedOnly
	// AnyArchiveState keeps every project.
	AnyArchiveState
)

// ParseArchiveFilter maps "" and "active" to ActiveOnly, "archived" to
// ArchivedOnly and "any" to AnyArchiveState.
func ParseArchiveFilter(s string) (ArchiveFilter, error) {
	switch s {
	case "", "active":
		return ActiveOnly, nil
	case "archived":
		return ArchivedOnly, nil
	case "any":
		return AnyArchiveState, nil
	}
	return 0, InvalidArgument("archived filter %q is not one of active, archived, any", s)
}

// Match reports whether a project with the given archive mark passes.
func (f ArchiveFilter) Match(archivedAt *time.Time) bool {
	switch f {
	case ActiveOnly:
		return archivedAt == nil
	case ArchivedOnly:
		return archivedAt != nil
	default:
		return true
	}
}

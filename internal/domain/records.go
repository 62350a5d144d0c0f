package domain

import (
	"time"

	"github.com/google/uuid"
)

// Records are the shapes stored by the persistence adapter. They carry the
// surrogate ids, foreign keys and timestamps the adapter owns; operations
// map them to entities before returning.

// ProjectRecord is a stored Project.
type ProjectRecord struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	ArchivedAt  *time.Time
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Project returns the entity view of the record.
func (r ProjectRecord) Project() Project {
	return Project{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: Optional(r.Description),
		ArchivedAt:  r.ArchivedAt,
	}
}

// AttributeTypeRecord is a stored AttributeType.
type AttributeTypeRecord struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// AttributeType returns the entity view of the record.
func (r AttributeTypeRecord) AttributeType() AttributeType {
	return AttributeType{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: Optional(r.Description),
	}
}

// ModelRecord is a stored Model.
type ModelRecord struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Slug        string
	Description string
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Model returns the entity view of the record.
func (r ModelRecord) Model() Model {
	return Model{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: Optional(r.Description),
	}
}

// AttributeRecord is a stored Attribute with its type resolved.
type AttributeRecord struct {
	ID          uuid.UUID
	ModelID     uuid.UUID
	Name        string
	Description string
	Type        AttributeTypeRecord
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Attribute returns the entity view of the record.
func (r AttributeRecord) Attribute() Attribute {
	return Attribute{
		Name:        r.Name,
		Description: Optional(r.Description),
		Type:        r.Type.AttributeType(),
	}
}

// AssociationRecord is a stored Association with its associated model
// resolved.
type AssociationRecord struct {
	ID              uuid.UUID
	ModelID         uuid.UUID
	Name            string
	Description     string
	Kind            AssociationKind
	AssociatedModel ModelRecord
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// Association returns the entity view of the record.
func (r AssociationRecord) Association() Association {
	return Association{
		Name:        r.Name,
		Description: Optional(r.Description),
		Kind:        r.Kind,
		Model:       r.AssociatedModel.Model(),
	}
}

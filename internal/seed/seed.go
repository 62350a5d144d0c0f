// Package seed installs the built-in attribute type catalogue.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnwards/temple/internal/attributetype"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/slug"
)

// Repo is what Seed needs.
type Repo interface {
	attributetype.GetAttributeTypeRecord
	attributetype.CreateAttributeTypeRecord
}

// AttributeType is one built-in catalogue entry.
type AttributeType struct {
	Name        string
	Description string
}

// AttributeTypes are the built-in types every workspace starts with. Their
// slugs are the ones the diagram renderer has fixed labels for.
var AttributeTypes = []AttributeType{
	{Name: "String", Description: "Text of any length"},
	{Name: "Integer", Description: "Whole number"},
	{Name: "Boolean", Description: "True or false"},
}

// Seed creates every built-in attribute type that is missing. It is
// idempotent: existing entries are left untouched.
func Seed(ctx context.Context, repo Repo) error {
	for _, t := range AttributeTypes {
		if err := ensure(ctx, repo, t); err != nil {
			return fmt.Errorf("seed attribute type %s: %w", t.Name, err)
		}
	}
	return nil
}

// BootstrapRepo is what Bootstrap needs.
type BootstrapRepo interface {
	Repo
	attributetype.ListAttributeTypeRecords
}

// Bootstrap seeds a fresh workspace. Once the catalogue holds any type it
// is left alone, so built-in types the user deleted or renamed stay that
// way across restarts.
func Bootstrap(ctx context.Context, repo BootstrapRepo) error {
	recs, err := repo.ListAttributeTypeRecords(ctx)
	if err != nil {
		return fmt.Errorf("list attribute types: %w", err)
	}
	if len(recs) > 0 {
		return nil
	}
	return Seed(ctx, repo)
}

func ensure(ctx context.Context, repo Repo, t AttributeType) error {
	_, err := repo.GetAttributeTypeRecord(ctx, slug.Make(t.Name))
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	_, err = attributetype.Create(ctx, repo, attributetype.CreateRequest{Name: t.Name, Description: t.Description})
	return err
}

package slug

import (
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/validator"
)

// FromName validates an entity name and returns its slug. A name without a
// single letter or digit has no slug and is rejected.
func FromName(name string) (string, error) {
	if err := validator.Name(name); err != nil {
		return "", err
	}
	s := Make(name)
	if s == "" {
		return "", domain.InvalidArgument("name must contain a letter or a digit")
	}
	return s, nil
}

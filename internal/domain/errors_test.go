package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnwards/temple/internal/domain"
)

func TestError(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := domain.NotFound("project %q not found", "book-store")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.False(t, errors.Is(err, domain.ErrInvalidArgument))
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("create model: %w", domain.FailedPrecondition("slug taken"))
		assert.True(t, errors.Is(err, domain.ErrFailedPrecondition))
		assert.Equal(t, domain.CodeFailedPrecondition, domain.CodeOf(err))
		assert.Equal(t, "slug taken", domain.MessageOf(err))
	})

	t.Run("unclassified is internal", func(t *testing.T) {
		err := errors.New("disk on fire")
		assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
		assert.Equal(t, "disk on fire", domain.MessageOf(err))
	})

	t.Run("internal keeps cause", func(t *testing.T) {
		cause := errors.New("database is locked")
		err := domain.Internal(cause, "list projects")
		assert.Equal(t, "list projects: database is locked", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "InvalidArgument", domain.CodeInvalidArgument.String())
	assert.Equal(t, "NotFound", domain.CodeNotFound.String())
	assert.Equal(t, "FailedPrecondition", domain.CodeFailedPrecondition.String())
	assert.Equal(t, "Internal", domain.CodeInternal.String())
}

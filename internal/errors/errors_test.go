package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "group"}
		assert.Equal(t, "group not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "group"}
		err2 := &NotFoundError{Entity: "group"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "group"}
		err2 := &NotFoundError{Entity: "member"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrGroupNotFound, ErrGroupNotFound))
		assert.False(t, errors.Is(ErrGroupNotFound, ErrMemberNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrGroupNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("approve: %w", ErrGroupNotFound)))
		assert.False(t, IsNotFound(ErrGroupActive))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "member already exists with this email", ErrMemberExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "member"}
		assert.Equal(t, "member already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrMemberExists))
		assert.False(t, IsAlreadyExists(ErrMemberNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrGroupNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("lifecycle sentinels are conflicts", func(t *testing.T) {
		assert.True(t, IsConflict(ErrGroupNotPending))
		assert.True(t, IsConflict(ErrGroupActive))
		assert.True(t, IsConflict(ErrMemberAlreadyMatched))
		assert.True(t, IsConflict(ErrMatchingRunInProgress))
	})

	t.Run("wrapped sentinel keeps identity", func(t *testing.T) {
		err := fmt.Errorf("approve group: %w", ErrGroupNotPending)
		assert.True(t, errors.Is(err, ErrGroupNotPending))
		assert.False(t, errors.Is(err, ErrGroupActive))
		assert.True(t, IsConflict(err))
	})

	t.Run("not found is not a conflict", func(t *testing.T) {
		assert.False(t, IsConflict(ErrGroupNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConflictError", func(t *testing.T) {
		err := NewConflictError("busy")
		assert.Equal(t, "busy", err.Error())
		assert.True(t, IsConflict(err))
	})

	t.Run("auth errors", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.True(t, IsAuthorization(ErrAdminRequired))
		assert.True(t, IsConfiguration(ErrSMTPConfigMissing))
	})
}

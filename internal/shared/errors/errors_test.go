package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("customer name is required"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("case not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"sequence conflict", NewSequenceConflictError("sequence taken"), ErrorTypeSequenceConflict, http.StatusConflict},
		{"persistence", NewPersistenceError("store unavailable"), ErrorTypePersistence, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewNotFoundError("case not found", "id=7")
	assert.Equal(t, "not_found: case not found (id=7)", err.Error())
}

func TestTypeChecksSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("add correspondence: %w", NewSequenceConflictError("taken"))

	assert.True(t, IsSequenceConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.False(t, IsSequenceConflictError(stderrors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: correspondences.yearly_sequence_number")))
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062 (23000): Duplicate entry '2024-0001' for key")))
	assert.False(t, IsDuplicateError(stderrors.New("database is locked")))
	assert.False(t, IsDuplicateError(nil))
}

func TestWrapPersistence(t *testing.T) {
	assert.Nil(t, WrapPersistence(nil, "ignored"))

	notFound := NewNotFoundError("employee not found")
	assert.Same(t, notFound, WrapPersistence(notFound, "ignored"))

	err := WrapPersistence(stderrors.New("connection refused"), "failed to save case")
	assert.True(t, IsPersistenceError(err))
	assert.Equal(t, "connection refused", GetAppError(err).Details)
}

package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, detailsOK: true},
		{code: CodeUnauthorized, status: http.StatusUnauthorized},
		{code: CodeForbidden, status: http.StatusForbidden, detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound},
		{code: CodeConflict, status: http.StatusConflict, detailsOK: true},
		{code: CodeRateLimit, status: http.StatusTooManyRequests},
		{code: CodeInternal, status: http.StatusInternalServerError, retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		assert.Equal(t, tt.status, meta.HTTPStatus, "status for %s", tt.code)
		assert.Equal(t, tt.retryable, meta.Retryable, "retryable for %s", tt.code)
		assert.Equal(t, tt.detailsOK, meta.DetailsAllowed, "details for %s", tt.code)
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, MetadataFor("SOMETHING_UNKNOWN").HTTPStatus)
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	assert.Equal(t, CodeValidation, base.Code())
	assert.Equal(t, "missing foo", base.Message())
	assert.Nil(t, base.Details())

	base.WithDetails(map[string]any{"field": "foo"})
	assert.NotNil(t, base.Details())

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, CodeConflict, wrapped.Code())
}

func TestPublicMessageExposesInternalCause(t *testing.T) {
	err := Wrap(CodeInternal, stdErrors.New("database is locked"), "record attendance")
	assert.Equal(t, "record attendance: database is locked", err.PublicMessage())

	hidden := Wrap(CodeUnauthorized, stdErrors.New("hash mismatch"), "Invalid credentials")
	assert.Equal(t, "Invalid credentials", hidden.PublicMessage())

	empty := New(CodeNotFound, "")
	assert.Equal(t, "resource not found", empty.PublicMessage())
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeForbidden, "no entry")
	got := As(err)
	require.NotNil(t, got)
	assert.Equal(t, CodeForbidden, got.Code())
	assert.Nil(t, As(nil))
	assert.True(t, IsCode(err, CodeForbidden))
	assert.False(t, IsCode(stdErrors.New("plain"), CodeForbidden))
}

func TestLogFieldsIncludesPostgresDiagnostics(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key", TableName: "employees"}
	err := Wrap(CodeConflict, fmt.Errorf("insert employee: %w", pgErr), "Email already registered")

	fields := LogFields(err)
	assert.Equal(t, "CONFLICT", fields["error_code"])
	assert.Equal(t, "23505", fields["pg_code"])
	assert.Equal(t, "employees_email_key", fields["pg_constraint"])
	assert.NotContains(t, fields, "pg_column")
	assert.Len(t, fields["error_chain"], 3)

	plain := LogFields(stdErrors.New("boom"))
	assert.Equal(t, map[string]any{"error": "boom"}, plain)
	assert.Empty(t, LogFields(nil))
}

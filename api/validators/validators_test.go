package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
)

type registerBody struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func TestDecodeJSONBodyReportsFirstMissingField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co"}`))

	var body registerBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "Missing field: fullName", typed.Message())
}

func TestDecodeJSONBodyToleratesUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"fullName":"An","email":"a@b.co","extra":1}`))

	var body registerBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, "An", body.FullName)
}

func TestDecodeJSONBodyRejectsEmptyAndMalformed(t *testing.T) {
	var body registerBody

	err := DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &body)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	err = DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), &body)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyInvalidEmail(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"fullName":"An","email":"nope"}`))

	var body registerBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, "Invalid field: email must be a valid email", typed.Message())
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=10&bad=x&big=1000", nil)

	v, err := ParseQueryInt(req, "limit", 50, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = ParseQueryInt(req, "missing", 50, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, v)

	_, err = ParseQueryInt(req, "bad", 50, 1, 500)
	assert.Error(t, err)

	_, err = ParseQueryInt(req, "big", 50, 1, 500)
	assert.Error(t, err)
}

func TestParseQueryDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2024-03-01&to=03/02/2024", nil)

	v, err := ParseQueryDate(req, "from")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", v)

	_, err = ParseQueryDate(req, "to")
	assert.Error(t, err)

	v, err = ParseQueryDate(req, "none")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  abcdef ", 3))
	assert.Equal(t, "abcdef", SanitizeString("abcdef", 0))
	assert.Equal(t, "Nguyễn", SanitizeString(" Nguyễn Văn ", 6))
}

func TestDecodeOptionalJSONBody(t *testing.T) {
	var body struct {
		Reason string `json:"reason"`
	}
	require.NoError(t, DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", nil), &body))
	require.NoError(t, DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &body))
	assert.Empty(t, body.Reason)

	require.NoError(t, DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"reason":"dup"}`)), &body))
	assert.Equal(t, "dup", body.Reason)

	err := DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), &body)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

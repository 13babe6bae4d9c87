package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  *bool  `json:"is_admin"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     error
		errContains string
	}{
		{name: "valid json", body: `{"username":"alice123","password":"password123"}`},
		{name: "invalid json", body: `{"username":"alice123",}`, errContains: "invalid character"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var v sampleRequest
			err := DecodeJSON(req, &v)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				assert.ErrorContains(t, err, tc.errContains)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeFieldErrors_BooleanMismatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice123","is_admin":"yes"}`))
	var v sampleRequest
	err := DecodeJSON(req, &v)
	require.Error(t, err)

	assert.Equal(t, []FieldError{{Field: "is_admin", Message: "must be of type boolean"}}, DecodeFieldErrors(err))
	assert.Nil(t, DecodeFieldErrors(ErrEmptyBody))
}

func TestValidatorFieldErrors(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Username: "ab"})
	require.Error(t, err)

	fields := ValidatorFieldErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, FieldError{Field: "username", Message: "must be at least 3 characters"}, fields[0])
	assert.Equal(t, FieldError{Field: "password", Message: "is required"}, fields[1])

	assert.Nil(t, ValidatorFieldErrors(nil))
}

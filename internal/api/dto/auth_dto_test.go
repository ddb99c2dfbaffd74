package dto

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsRequestValidate(t *testing.T) {
	assert.NoError(t, CredentialsRequest{Username: "alice", Password: "pw1"}.Validate())
	assert.NoError(t, CredentialsRequest{Username: "a", Password: "x"}.Validate())

	err := CredentialsRequest{Username: "alice"}.Validate()
	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "password")
	assert.NotContains(t, fields, "username")

	err = CredentialsRequest{}.Validate()
	require.ErrorAs(t, err, &fields)
	assert.Len(t, fields, 2)
}

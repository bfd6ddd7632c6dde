package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateApplication_Valid(t *testing.T) {
	payload := `{"job_id":"job-1","cover_letter":"Dear team","notes":"referred by a friend"}`
	assert.NoError(t, ValidateApplication(payload))
}

func TestValidateApplication_ExtraFieldsAllowed(t *testing.T) {
	// The backend owns the payload shape; unknown fields pass through.
	payload := `{"job_id":"job-1","custom_backend_field":42}`
	assert.NoError(t, ValidateApplication(payload))
}

func TestValidateApplication_MissingJobID(t *testing.T) {
	err := ValidateApplication(`{"cover_letter":"Dear team"}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "job_id")
}

func TestValidateApplication_EmptyJobID(t *testing.T) {
	err := ValidateApplication(`{"job_id":""}`)
	require.Error(t, err)
}

func TestValidateApplication_WrongType(t *testing.T) {
	err := ValidateApplication(`{"job_id":123}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "job_id", ve.Errors[0].Field)
}

func TestValidateApplication_NotAnObject(t *testing.T) {
	err := ValidateApplication(`["job-1"]`)
	require.Error(t, err)
}

func TestValidateApplication_MalformedJSON(t *testing.T) {
	err := ValidateApplication(`{not json`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

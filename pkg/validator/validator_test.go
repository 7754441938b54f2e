package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Username string `json:"username" validate:"required,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Score    int    `json:"score" validate:"gte=0,lte=100"`
}

func TestValidateStructPasses(t *testing.T) {
	require.NoError(t, ValidateStruct(&samplePayload{Username: "alice", Score: 88}))
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(&samplePayload{Username: "", Score: 120})
	require.Error(t, err)

	failures, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, failures, 2)

	fields := map[string]string{}
	for _, failure := range failures {
		fields[failure.Field] = failure.Tag
	}
	require.Equal(t, "required", fields["username"])
	require.Equal(t, "lte", fields["score"])
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidateStruct(&samplePayload{Username: "alice", Email: "not-an-email", Score: 10})
	require.Error(t, err)
	require.Contains(t, err.Error(), "email failed on email")
}

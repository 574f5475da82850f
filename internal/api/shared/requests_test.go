package shared

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Text string `json:"text" validate:"required"`
}

type selfValidatingRequest struct {
	err error
}

func (r *selfValidatingRequest) Validate() error {
	return r.err
}

func TestValidateRequest_TagRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(&taggedRequest{Text: "hello"}))
	assert.Error(t, ValidateRequest(&taggedRequest{}))
}

func TestValidateRequest_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := ValidateRequest(&taggedRequest{})

	var tagErrs validator.ValidationErrors
	require.ErrorAs(t, err, &tagErrs)
	require.Len(t, tagErrs, 1)
	assert.Equal(t, "text", tagErrs[0].Field())
}

func TestValidateRequest_ValidateMethodTakesPrecedence(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("custom validation failed")
	assert.ErrorIs(t, ValidateRequest(&selfValidatingRequest{err: sentinel}), sentinel)
	assert.NoError(t, ValidateRequest(&selfValidatingRequest{}))
}

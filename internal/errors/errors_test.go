package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berkingurcan/siglife-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "stage not found")
	assert.Equal(t, "NOT_FOUND: stage not found", err.Error())
	assert.Equal(t, errors.CodeNotFound, err.Code)
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("session not found")
	wrapped := errors.Wrap(inner, "failed to load session")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := errors.Wrapf(inner, "failed to save session")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeFailedPrecondition,
		errors.GetCode(errors.FailedPrecondition("already at terminal stage")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[errors.Code]int{
		errors.CodeOK:                 200,
		errors.CodeInvalidArgument:    400,
		errors.CodeNotFound:           404,
		errors.CodeAlreadyExists:      409,
		errors.CodeFailedPrecondition: 412,
		errors.CodeInternal:           500,
		errors.CodeUnavailable:        503,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.HTTPStatus(), "code %s", code)
	}
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Repository").
		RequiredField("Catalog").
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Repository")
	assert.Contains(t, err.Error(), "Catalog")

	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad choice").WithMeta("choice_id", "study_hard")
	assert.Equal(t, "study_hard", err.Meta["choice_id"])
}

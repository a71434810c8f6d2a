package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUnavailableHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	err := NewStoreUnavailable(cause)

	domainErr := ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, CodeStoreUnavailable, domainErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, domainErr.HTTPStatus)
	assert.NotContains(t, domainErr.Message, "10.0.0.5")
	assert.True(t, errors.Is(err, cause))
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	require.NotNil(t, domainErr)
	assert.Equal(t, CodeInternalError, domainErr.Code)
	assert.Equal(t, "internal server error", domainErr.Message)
}

func TestInvalidTransitionDetails(t *testing.T) {
	err := NewInvalidTransition("COMPLETED", "IN_PREP")
	domainErr := ToDomainError(err)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)
	assert.Equal(t, "COMPLETED", domainErr.Details["current"])
	assert.Equal(t, "IN_PREP", domainErr.Details["requested"])
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NewEmptyCart(), CodeEmptyCart))
	assert.True(t, IsCode(NewAlreadyClaimed("del-1"), CodeAlreadyClaimed))
	assert.False(t, IsCode(errors.New("boom"), CodeInternalError))
	assert.False(t, IsCode(nil, CodeEmptyCart))
}

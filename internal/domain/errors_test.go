package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorMessage(t *testing.T) {
	err := NewPipelineFailure("error downloading audio", errors.New("exit status 1"))

	assert.Equal(t, "error downloading audio: exit status 1", err.Error())
	assert.Equal(t, "exit status 1", err.Unwrap().Error())

	bare := NewInvalidSourceURLError("https://vimeo.com/1")
	assert.Equal(t, "Not a supported video URL: https://vimeo.com/1", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestDomainErrorKindChecks(t *testing.T) {
	assert.True(t, IsInvalidSourceURL(NewInvalidSourceURLError("x")))
	assert.False(t, IsInvalidSourceURL(NewPipelineFailure("boom", nil)))
	assert.False(t, IsInvalidSourceURL(errors.New("plain")))

	assert.True(t, IsPipelineFailure(NewPipelineFailuref(nil, "stage %s broke", "generate")))
	assert.False(t, IsPipelineFailure(NewQuizNotFoundError("quiz-1")))
}

func TestDomainErrorMarshalJSONOmitsCause(t *testing.T) {
	err := NewPipelineFailure("error persisting quiz", errors.New("dsn: password=secret"))

	data, marshalErr := json.Marshal(err)

	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code": "PIPELINE_FAILURE", "message": "error persisting quiz"}`, string(data))
}

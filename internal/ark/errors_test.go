package ark

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articleforge"
)

func apiError(code int) *openai.Error {
	req, _ := http.NewRequest(http.MethodPost, "https://ark.example/api/v3/chat/completions", nil)
	return &openai.Error{StatusCode: code, Request: req}
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, wrapError(nil))
}

func TestWrapErrorDeadline(t *testing.T) {
	err := wrapError(fmt.Errorf("chat: %w", context.DeadlineExceeded))
	require.Error(t, err)
	assert.Equal(t, articleforge.ErrorTimeout, articleforge.KindOf(err))
}

func TestWrapErrorStatusCodes(t *testing.T) {
	tests := []struct {
		code int
		kind articleforge.ErrorKind
	}{
		{401, articleforge.ErrorAuth},
		{403, articleforge.ErrorAuth},
		{404, articleforge.ErrorEndpoint},
		{429, articleforge.ErrorTransport},
		{500, articleforge.ErrorTransport},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.code), func(t *testing.T) {
			err := wrapError(apiError(tt.code))
			require.Error(t, err)
			assert.Equal(t, tt.kind, articleforge.KindOf(err))
			assert.Equal(t, tt.code, articleforge.StatusCodeOf(err))
		})
	}
}

func TestWrapErrorWrappedAPIError(t *testing.T) {
	err := wrapError(fmt.Errorf("images: %w", apiError(401)))
	assert.Equal(t, articleforge.ErrorAuth, articleforge.KindOf(err))
}

func TestWrapErrorPlain(t *testing.T) {
	err := wrapError(fmt.Errorf("connection refused"))
	require.Error(t, err)
	assert.Equal(t, articleforge.ErrorTransport, articleforge.KindOf(err))
	assert.Equal(t, 0, articleforge.StatusCodeOf(err))
}

package ark

import (
	"context"
	"errors"

	"github.com/openai/openai-go"

	"articleforge"
)

// wrapError classifies SDK errors into the run-fatal taxonomy: deadline
// expiry, rejected keys (401/403) and unknown endpoints (404) each get their
// own kind with a remediation hint; everything else is a transport failure.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return articleforge.NewTimeoutError("request timed out", err)
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return articleforge.NewTransportError("request failed", 0, err)
	}

	switch code := apiErr.StatusCode; {
	case code == 401 || code == 403:
		return articleforge.NewAuthError("authentication failed", code, err)
	case code == 404:
		return articleforge.NewEndpointError("model endpoint not found", err)
	default:
		return articleforge.NewTransportError("api request failed", code, err)
	}
}

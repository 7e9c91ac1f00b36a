package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// decode is the single point of truth for response handling: it always
// captures the full raw body first, so error paths keep the server's
// diagnostic text, then checks the status class before unmarshalling.
func decode[T any](resp *http.Response, log *zap.Logger) (T, error) {
	var zero T

	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zero, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	log.Debug("response", zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, &RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, &DecodeError{Body: string(raw), Err: err}
	}

	return out, nil
}

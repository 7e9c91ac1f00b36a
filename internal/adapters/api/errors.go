package api

import "fmt"

// AuthError is a login rejected by the server. Body carries the server's
// error text verbatim.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Body)
}

// RequestError is a non-2xx response on any call. Body is the raw response
// text, untrimmed, so server-side diagnostics survive intact.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is a successful response whose body does not parse into the
// expected shape, usually a sign of schema drift between client and server.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v (body: %s)", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is a network-level failure: DNS, connection refused,
// timeout. Never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches APIErrors with status 401 or 403.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response. Payload is the server's JSON body as-is.
type APIError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *APIError) Error() string {
	if d := e.Detail(); d != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, d)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, string(e.Payload))
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// Decode unmarshals the payload into v.
func (e *APIError) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Detail returns the "detail" string of the payload, or "".
func (e *APIError) Detail() string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(e.Payload, &body); err != nil {
		return ""
	}
	return body.Detail
}

// FieldErrors extracts field-level validation messages such as
// {"email": ["Enter a valid email address."]}. A bare string value becomes a
// one-element list. "detail" is not a field and is skipped.
func (e *APIError) FieldErrors() map[string][]string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(e.Payload, &fields); err != nil {
		return nil
	}

	out := make(map[string][]string)
	for name, raw := range fields {
		if name == "detail" {
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			out[name] = list
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[name] = []string{s}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// NetworkError means the request was sent but no response arrived.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the response body was not the expected JSON.
type ParseError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ParseError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("invalid response from server: %v", e.Err)
	}
	return fmt.Sprintf("invalid response from server (status %d): %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

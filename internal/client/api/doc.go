// Package api is the HTTP transport of the client.
//
// Every call goes to a fixed base URL plus an endpoint path and carries:
//
//	Content-Type:  application/json
//	X-CSRFToken:   value of the "csrftoken" cookie for the base URL, if any
//	Authorization: Token <token>, if the TokenSource has one
//	X-Request-ID:  a fresh UUID
//
// GET requests never carry a body. Responses are always parsed as JSON.
//
// # Errors
//
//   - *NetworkError: no response was received (includes context cancellation).
//   - *ParseError:   the response body was not valid JSON.
//   - *APIError:     a non-2xx status with the decoded JSON payload.
//
// errors.Is(err, ErrUnauthorized) matches 401 and 403 responses.
package api

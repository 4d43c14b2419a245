package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/shopauth/internal/client/api"
	"github.com/dmitrijs2005/shopauth/internal/client/services"
	validation "github.com/go-ozzo/ozzo-validation"
)

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

// describeError renders err for the terminal, including server-side field
// errors and client-side validation messages.
func describeError(err error) string {
	var (
		verrs    validation.Errors
		apiErr   *api.APIError
		netErr   *api.NetworkError
		parseErr *api.ParseError
	)

	switch {
	case errors.As(err, &verrs):
		fields := make(map[string][]string, len(verrs))
		for k, v := range verrs {
			fields[k] = []string{v.Error()}
		}
		return "Invalid input:" + formatFields(fields)

	case errors.Is(err, services.ErrInvalidRequest):
		return "Invalid input: " + err.Error()

	case errors.As(err, &apiErr):
		msg := apiErr.Detail()
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", apiErr.StatusCode)
		}
		return "Error: " + msg + formatFields(apiErr.FieldErrors())

	case errors.As(err, &netErr):
		return "Cannot reach the server: " + netErr.Err.Error()

	case errors.As(err, &parseErr):
		return "Unexpected response from the server"

	default:
		return "Error: " + err.Error()
	}
}

func formatFields(fields map[string][]string) string {
	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(&b, "\n  %s: %s", name, strings.Join(fields[name], " "))
	}
	return b.String()
}

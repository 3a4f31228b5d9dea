// internal/nodeid/parser.go
package nodeid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidEndpoint is wrapped by every error returned from Parse.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// nameRegex matches a single node or socket name.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidName checks for undesirable but technically valid names.
func isValidName(name string) bool {
	return name != "-" && name != "_"
}

// Parse creates an Endpoint from its canonical `node.socket` form.
func Parse(raw string) (Endpoint, error) {
	if raw == "" {
		return Endpoint{}, fmt.Errorf("%w: endpoint cannot be empty", ErrInvalidEndpoint)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 2 {
		return Endpoint{}, fmt.Errorf("%w: %q must have the form node.socket", ErrInvalidEndpoint, raw)
	}

	for _, part := range parts {
		if part == "" {
			return Endpoint{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidEndpoint, raw)
		}
		if !nameRegex.MatchString(part) || !isValidName(part) {
			return Endpoint{}, fmt.Errorf("%w: invalid name %q", ErrInvalidEndpoint, part)
		}
	}

	return Endpoint{Node: parts[0], Socket: parts[1]}, nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(raw string) Endpoint {
	e, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return e
}

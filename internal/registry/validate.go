package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/nodecalc/internal/ctxlog"
)

// Validate performs an integrity check over every registered config. It
// reports all problems at once rather than stopping at the first.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, nodeType := range r.Types() {
		cfg := r.configs[nodeType]

		if strings.TrimSpace(cfg.Type) == "" {
			errs = append(errs, "config registered with an empty type")
			continue
		}

		errs = append(errs, validateSockets(nodeType, "input", cfg.Inputs)...)
		errs = append(errs, validateSockets(nodeType, "output", cfg.Outputs)...)

		if cfg.Evaluate == nil {
			logger.Warn("Node config has no evaluate function; nodes of this type evaluate to zero.", "type", nodeType)
		}
		if cfg.GenerateCode == nil {
			logger.Warn("Node config has no code generator; nodes of this type emit no code.", "type", nodeType)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func validateSockets(nodeType, direction string, sockets []Socket) []string {
	var errs []string
	seen := make(map[string]struct{}, len(sockets))

	for _, s := range sockets {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("node '%s': %s socket with empty id", nodeType, direction))
			continue
		}
		if _, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Sprintf("node '%s': duplicate %s socket '%s'", nodeType, direction, s.ID))
		}
		seen[s.ID] = struct{}{}

		if !s.Kind.Valid() {
			errs = append(errs, fmt.Sprintf("node '%s', %s socket '%s': unknown kind '%s'", nodeType, direction, s.ID, s.Kind))
		}
	}

	return errs
}

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/session"
)

// Run opens a session on the seed graph, evaluates it once and prints the
// results selected by Config.Emit.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "graph", a.seed.Graph.ID)
	a.logger.Debug("App.Run method started.")

	output := a.config.OutputNode
	if output == "" {
		output = a.seed.Output
	}

	var opts []session.Option
	if output != "" {
		opts = append(opts, session.WithOutput(output))
	}
	sess := session.New(a.registry, opts...)

	dropped, err := sess.Load(ctx, a.seed.Graph)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	if len(dropped) > 0 {
		a.logger.Warn("Some edges were rejected and dropped.", "count", len(dropped))
	}

	g := sess.Graph()
	a.logger.Info("Graph evaluated.", "graph", g.ID, "nodes", len(g.Nodes), "edges", len(g.Edges), "output", sess.OutputID())

	if a.config.Emit == EmitValues || a.config.Emit == EmitAll {
		if err := writeValues(a.outW, a.registry, g); err != nil {
			return fmt.Errorf("failed to write values: %w", err)
		}
	}
	if a.config.Emit == EmitAll {
		fmt.Fprintln(a.outW)
	}
	if a.config.Emit == EmitCode || a.config.Emit == EmitAll {
		if err := writeCode(a.outW, sess.Code()); err != nil {
			return fmt.Errorf("failed to write code: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

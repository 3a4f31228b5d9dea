// Package codegen turns the upstream subgraph of an output node into a flat
// list of variable declarations, one per reachable node, dependencies first.
package codegen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
)

// DefaultPrefix names variables of operators that declare no VarPrefix.
const DefaultPrefix = "value"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generator emits code for graphs against a fixed operator registry.
type Generator struct {
	registry *registry.Registry
	suffix   func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithSuffixSource replaces the random fallback used for IDs that contain no
// alphanumeric characters.
func WithSuffixSource(fn func() string) Option {
	return func(g *Generator) {
		g.suffix = fn
	}
}

// New creates a generator that resolves operators through reg.
func New(reg *registry.Registry, opts ...Option) *Generator {
	g := &Generator{registry: reg, suffix: randomSuffix}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func randomSuffix() string {
	return string([]byte{base36[rand.Intn(len(base36))], base36[rand.Intn(len(base36))]})
}

// VariableName builds the variable name of a node from its operator's prefix
// and the last two alphanumeric characters of its ID.
func (gen *Generator) VariableName(nodeID, nodeType string) string {
	prefix := DefaultPrefix
	if cfg, ok := gen.registry.Lookup(nodeType); ok && cfg.VarPrefix != "" {
		prefix = cfg.VarPrefix
	}

	suffix := lastAlphanumeric(nodeID, 2)
	if suffix == "" {
		suffix = gen.suffix()
	}
	return prefix + "_" + suffix
}

func lastAlphanumeric(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if len(clean) > n {
		return clean[len(clean)-n:]
	}
	return clean
}

// GenerateCodeFromOutput emits the declarations needed to compute outputID,
// joined by newlines. An unknown output yields "" and graph.ErrNoOutput.
func (gen *Generator) GenerateCodeFromOutput(ctx context.Context, g graph.Graph, outputID string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if _, ok := graph.FindNode(g, outputID); !ok {
		logger.Warn("Output node not found, no code generated.", "output", outputID)
		return "", fmt.Errorf("generate %q: %w", outputID, graph.ErrNoOutput)
	}

	p := gen.newProgram(logger, g)
	p.visit(outputID)

	logger.Debug("Code generated.", "graph", g.ID, "output", outputID, "statements", len(p.statements))
	return strings.Join(p.statements, "\n"), nil
}

// program is the state of one generation run. It implements
// registry.CodeContext.
type program struct {
	logger     *slog.Logger
	registry   *registry.Registry
	graph      graph.Graph
	variables  map[string]string
	visited    map[string]struct{}
	statements []string
}

func (gen *Generator) newProgram(logger *slog.Logger, g graph.Graph) *program {
	vars := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, ok := vars[n.ID]; !ok {
			vars[n.ID] = gen.VariableName(n.ID, n.Type)
		}
	}

	return &program{
		logger:    logger,
		registry:  gen.registry,
		graph:     g,
		variables: vars,
		visited:   make(map[string]struct{}),
	}
}

func (p *program) visit(nodeID string) {
	if _, seen := p.visited[nodeID]; seen {
		return
	}
	p.visited[nodeID] = struct{}{}

	node, ok := graph.FindNode(p.graph, nodeID)
	if !ok {
		return
	}

	for _, edge := range graph.IncomingEdges(p.graph, nodeID) {
		p.visit(edge.Source)
	}

	cfg, ok := p.registry.Lookup(node.Type)
	if !ok || cfg.GenerateCode == nil {
		return
	}

	if err := p.emitNode(cfg, node); err != nil {
		p.logger.Warn("Code emission failed, skipping node.", "node", nodeID, "type", node.Type, "error", err)
	}
}

// emitNode runs the operator's emitter. Statements from a failed emitter are
// discarded.
func (p *program) emitNode(cfg registry.NodeConfig, node graph.Node) (err error) {
	mark := len(p.statements)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("emitter %s panicked: %v", cfg.Type, r)
		}
		if err != nil {
			p.statements = p.statements[:mark]
		}
	}()
	return cfg.GenerateCode(p, node, p.graph)
}

// VariableName implements registry.CodeContext.
func (p *program) VariableName(nodeID string) string {
	if v, ok := p.variables[nodeID]; ok {
		return v
	}
	return "unknown_" + nodeID
}

// InputVariable implements registry.CodeContext.
func (p *program) InputVariable(node graph.Node, handleID string) string {
	edge, ok := graph.FindEdgeTo(p.graph, node.ID, handleID)
	if !ok {
		return "0"
	}
	return p.VariableName(edge.Source)
}

// Emit implements registry.CodeContext.
func (p *program) Emit(statement string) {
	p.statements = append(p.statements, statement)
}

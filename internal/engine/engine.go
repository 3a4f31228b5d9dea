package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Engine evaluates graphs against a fixed operator registry. It holds no
// per-graph state and is safe to share.
type Engine struct {
	registry *registry.Registry
}

// New creates an engine that resolves operators through reg.
func New(reg *registry.Registry) *Engine {
	return &Engine{registry: reg}
}

// EvaluateFromOutput computes every node reachable upstream of outputID and
// returns a copy of g with their cached values replaced. Nodes outside the
// reachable subgraph are passed through unchanged.
//
// If outputID is not in the graph, g is returned as-is together with
// graph.ErrNoOutput.
func (e *Engine) EvaluateFromOutput(ctx context.Context, g graph.Graph, outputID string) (graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	p := newPass(logger, e.registry, g)
	if _, ok := p.nodes[outputID]; !ok {
		logger.Warn("Output node not found, nothing to evaluate.", "output", outputID)
		return g, fmt.Errorf("evaluate %q: %w", outputID, graph.ErrNoOutput)
	}

	logger.Debug("Evaluation pass started.", "graph", g.ID, "output", outputID)
	p.visit(outputID)

	out := graph.Clone(g)
	for i := range out.Nodes {
		v, ok := p.results[out.Nodes[i].ID]
		if !ok {
			continue
		}
		out.Nodes[i].Data.Value = graph.Float(registry.ToFloat(v))
	}

	logger.Debug("Evaluation pass finished.", "graph", g.ID, "visited", len(p.visited), "evaluated", len(p.results), "failed", len(p.failed))
	return out, nil
}

type memoKey struct {
	nodeID   string
	handleID string
}

// pass is the state of a single evaluation. It implements
// registry.EvalContext for the operators it calls.
type pass struct {
	logger   *slog.Logger
	registry *registry.Registry
	graph    graph.Graph
	nodes    map[string]graph.Node

	memo       map[memoKey]cty.Value
	inProgress map[memoKey]struct{}
	visited    map[string]struct{}
	results    map[string]cty.Value
	failed     map[string]error
}

func newPass(logger *slog.Logger, reg *registry.Registry, g graph.Graph) *pass {
	nodes := make(map[string]graph.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := nodes[n.ID]; !dup {
			nodes[n.ID] = n
		}
	}

	return &pass{
		logger:     logger,
		registry:   reg,
		graph:      g,
		nodes:      nodes,
		memo:       make(map[memoKey]cty.Value),
		inProgress: make(map[memoKey]struct{}),
		visited:    make(map[string]struct{}),
		results:    make(map[string]cty.Value),
		failed:     make(map[string]error),
	}
}

// visit processes upstream nodes first, then the node itself.
func (p *pass) visit(nodeID string) {
	if _, seen := p.visited[nodeID]; seen {
		return
	}
	p.visited[nodeID] = struct{}{}

	if _, ok := p.nodes[nodeID]; !ok {
		return
	}

	for _, edge := range graph.IncomingEdges(p.graph, nodeID) {
		p.visit(edge.Source)
	}

	v := p.NodeValue(nodeID, "")
	if _, failed := p.failed[nodeID]; failed {
		return
	}
	p.results[nodeID] = v
}

// NodeValue implements registry.EvalContext.
func (p *pass) NodeValue(nodeID, handleID string) cty.Value {
	key := memoKey{nodeID: nodeID, handleID: handleID}
	if v, ok := p.memo[key]; ok {
		return v
	}
	if _, busy := p.inProgress[key]; busy {
		p.logger.Debug("Cycle reached during evaluation, using cached value.", "node", nodeID, "socket", handleID)
		return p.fallback(nodeID)
	}

	p.inProgress[key] = struct{}{}
	defer delete(p.inProgress, key)

	var v cty.Value
	if handleID == "" {
		v = p.evaluate(nodeID)
	} else {
		v = p.inputValue(nodeID, handleID)
	}

	p.memo[key] = v
	return v
}

// inputValue follows the edge bound to an input socket.
func (p *pass) inputValue(nodeID, handleID string) cty.Value {
	if edge, ok := graph.FindEdgeTo(p.graph, nodeID, handleID); ok {
		return p.NodeValue(edge.Source, "")
	}

	node, ok := p.nodes[nodeID]
	if !ok {
		return cty.Zero
	}
	cfg, ok := p.registry.Lookup(node.Type)
	if !ok {
		return cty.Zero
	}
	if socket, ok := cfg.Input(handleID); ok {
		return socket.Kind.Zero()
	}
	return cty.Zero
}

// evaluate runs the operator of a node. Failures are recorded and the
// node's previous value is returned in place of a result.
func (p *pass) evaluate(nodeID string) cty.Value {
	node, ok := p.nodes[nodeID]
	if !ok {
		return cty.Zero
	}
	cfg, ok := p.registry.Lookup(node.Type)
	if !ok {
		p.logger.Debug("Node type is not registered, evaluating to zero.", "node", nodeID, "type", node.Type)
		return cty.Zero
	}
	if cfg.Evaluate == nil {
		return cty.Zero
	}

	v, err := safeEvaluate(cfg, p, node)
	if err == nil && (v.IsNull() || !v.IsKnown()) {
		err = fmt.Errorf("operator returned no value")
	}
	if err != nil {
		p.failed[nodeID] = err
		p.logger.Warn("Node evaluation failed, keeping previous value.", "node", nodeID, "type", node.Type, "error", err)
		return p.fallback(nodeID)
	}
	return v
}

// safeEvaluate calls the operator and converts a panic into an error.
func safeEvaluate(cfg registry.NodeConfig, ctx registry.EvalContext, node graph.Node) (v cty.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = cty.NilVal
			err = fmt.Errorf("operator %s panicked: %v", cfg.Type, r)
		}
	}()
	return cfg.Evaluate(ctx, node)
}

// fallback is the value of a node that cannot be computed right now: its
// previously cached value, typed after its first output socket.
func (p *pass) fallback(nodeID string) cty.Value {
	node, ok := p.nodes[nodeID]
	if !ok {
		return cty.Zero
	}
	prev := node.ValueOr(0)

	if cfg, ok := p.registry.Lookup(node.Type); ok && len(cfg.Outputs) > 0 && cfg.Outputs[0].Kind == registry.KindBoolean {
		return cty.BoolVal(prev != 0)
	}
	return registry.FromFloat(prev)
}

// Package session hosts one editable calculator graph. Every mutation goes
// through the connection validator where relevant and is followed by a fresh
// evaluation pass and code generation from the output node.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/specialistvlad/nodecalc/internal/codegen"
	"github.com/specialistvlad/nodecalc/internal/connection"
	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/dag"
	"github.com/specialistvlad/nodecalc/internal/engine"
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/specialistvlad/nodecalc/modules/output"
)

// ErrUnknownType is returned by AddNode for a type missing from the registry.
var ErrUnknownType = errors.New("unknown node type")

// Session is safe for concurrent use.
type Session struct {
	id       string
	registry *registry.Registry
	engine   *engine.Engine
	codegen  *codegen.Generator
	outputID string
	newID    func() string

	mu    sync.Mutex
	graph graph.Graph
	code  string
}

// Option configures a Session.
type Option func(*Session)

// WithOutput pins the node evaluated after each mutation. Without it the
// first outputNode in the graph is used.
func WithOutput(nodeID string) Option {
	return func(s *Session) {
		s.outputID = nodeID
	}
}

// WithIDSource replaces the generator of node and edge IDs. The session only
// calls fn while holding its lock.
func WithIDSource(fn func() string) Option {
	return func(s *Session) {
		s.newID = fn
	}
}

// New creates an empty session backed by reg.
func New(reg *registry.Registry, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		registry: reg,
		engine:   engine.New(reg),
		codegen:  codegen.New(reg),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.graph = graph.New(s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Load replaces the current graph with seed. Seed edges go through the
// connection validator in order; rejected ones are dropped, logged and
// returned.
func (s *Session) Load(ctx context.Context, seed graph.Graph) ([]graph.Edge, error) {
	logger := ctxlog.FromContext(ctx)
	if err := graph.Validate(seed); err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}

	g := graph.Graph{ID: seed.ID, Nodes: graph.Clone(seed).Nodes}
	if g.ID == "" {
		g.ID = s.id
	}

	var dropped []graph.Edge
	for _, e := range seed.Edges {
		c := graph.Connection{Source: e.Source, SourceHandle: e.SourceHandle, Target: e.Target, TargetHandle: e.TargetHandle}
		if err := connection.Check(s.registry, g, c); err != nil {
			logger.Warn("Dropping seed edge rejected by the connection validator.", "edge", e.ID, "reason", err)
			dropped = append(dropped, e)
			continue
		}
		next, err := graph.AddEdge(g, e)
		if err != nil {
			logger.Warn("Dropping invalid seed edge.", "edge", e.ID, "reason", err)
			dropped = append(dropped, e)
			continue
		}
		g = next
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = g
	s.refresh(ctx)

	logger.Debug("Session graph loaded.", "session", s.id, "nodes", len(g.Nodes), "edges", len(g.Edges), "dropped", len(dropped))
	return dropped, nil
}

// AddNode creates a node of the given type. Source nodes start at 0, other
// nodes start without a value.
func (s *Session) AddNode(ctx context.Context, nodeType string, pos graph.Position) (graph.Node, error) {
	cfg, ok := s.registry.Lookup(nodeType)
	if !ok {
		return graph.Node{}, fmt.Errorf("add node: %w: %s", ErrUnknownType, nodeType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := graph.Node{
		ID:       fmt.Sprintf("%s-%s", nodeType, s.newID()),
		Type:     nodeType,
		Data:     graph.NodeData{Label: nodeType},
		Position: pos,
	}
	if cfg.IsSource() {
		n.Data.Value = graph.Float(0)
	}

	g, err := graph.AddNode(s.graph, n)
	if err != nil {
		return graph.Node{}, err
	}
	s.graph = g
	ctxlog.FromContext(ctx).Debug("Node added.", "node", n.ID, "type", nodeType)
	s.refresh(ctx)

	return n, nil
}

// Connect adds an edge for c if the connection validator accepts it. The
// reason for a rejection is logged, and the graph is left untouched.
func (s *Session) Connect(ctx context.Context, c graph.Connection) (graph.Edge, bool) {
	logger := ctxlog.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := connection.Check(s.registry, s.graph, c); err != nil {
		logger.Info("Connection rejected.", "source", c.Source, "source_handle", c.SourceHandle, "target", c.Target, "target_handle", c.TargetHandle, "reason", err)
		return graph.Edge{}, false
	}

	e := c.ToEdge(s.newID())
	g, err := graph.AddEdge(s.graph, e)
	if err != nil {
		logger.Warn("Connection accepted but edge could not be added.", "edge", e.ID, "error", err)
		return graph.Edge{}, false
	}
	s.graph = g
	logger.Debug("Edge added.", "edge", e.ID)
	s.refresh(ctx)

	return e, true
}

// SetValue replaces the user-entered value of a node. NaN is rejected with
// graph.ErrInvalidValue.
func (s *Session) SetValue(ctx context.Context, nodeID string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := graph.SetNodeValue(s.graph, nodeID, value)
	if err != nil {
		return err
	}
	s.graph = g
	ctxlog.FromContext(ctx).Debug("Node value set.", "node", nodeID, "value", value)
	s.refresh(ctx)

	return nil
}

// DeleteNode removes a node and every edge touching it. Unknown IDs are a
// no-op apart from the re-evaluation.
func (s *Session) DeleteNode(ctx context.Context, nodeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	if dependents, err := dag.FromGraph(s.graph).Dependents(nodeID); err == nil && len(dependents) > 0 {
		logger.Info("Deleted node fed other nodes, their inputs now read zero.", "node", nodeID, "dependents", dependents)
	}

	s.graph = graph.DeleteNode(s.graph, nodeID)
	logger.Debug("Node deleted.", "node", nodeID)
	s.refresh(ctx)
}

// Evaluate re-runs evaluation and code generation on the current graph.
func (s *Session) Evaluate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh(ctx)
}

// Graph returns a copy of the current graph.
func (s *Session) Graph() graph.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.Clone(s.graph)
}

// Code returns the program generated by the last refresh.
func (s *Session) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

// OutputID returns the node the session evaluates from, or "" when there is
// none.
func (s *Session) OutputID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveOutput()
}

func (s *Session) resolveOutput() string {
	if s.outputID != "" {
		if _, ok := graph.FindNode(s.graph, s.outputID); ok {
			return s.outputID
		}
		return ""
	}
	if outs := graph.NodesOfType(s.graph, output.Type); len(outs) > 0 {
		return outs[0].ID
	}
	return ""
}

// refresh evaluates and regenerates code. The caller holds s.mu.
func (s *Session) refresh(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	deps := dag.FromGraph(s.graph)
	if err := deps.DetectCycles(); err != nil {
		logger.Warn("Graph contains a cycle, results are truncated.", "error", err)
	}

	outputID := s.resolveOutput()
	if outputID == "" {
		logger.Warn("No output node found, skipping evaluation.", "requested", s.outputID)
		s.code = ""
		return
	}

	if upstream, err := deps.Upstream(outputID); err == nil {
		var unreached []string
		for _, n := range s.graph.Nodes {
			if n.ID != outputID && !slices.Contains(upstream, n.ID) {
				unreached = append(unreached, n.ID)
			}
		}
		if len(unreached) > 0 {
			logger.Debug("Some nodes are not connected to the output and keep their values.", "output", outputID, "unreached", unreached)
		}
	}

	evaluated, err := s.engine.EvaluateFromOutput(ctx, s.graph, outputID)
	if err != nil {
		logger.Warn("Evaluation skipped.", "error", err)
		return
	}
	s.graph = evaluated

	code, err := s.codegen.GenerateCodeFromOutput(ctx, s.graph, outputID)
	if err != nil {
		logger.Warn("Code generation skipped.", "error", err)
		return
	}
	s.code = code
}

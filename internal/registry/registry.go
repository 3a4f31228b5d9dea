package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/zclconf/go-cty/cty"
)

// EvalContext is handed to an operator's evaluation function. It resolves
// values of other nodes within the current evaluation pass.
type EvalContext interface {
	// NodeValue returns the value of nodeID. With an empty handleID it is the
	// node's own result; with an input socket ID it is the value of whatever
	// is wired into that socket, or the socket's zero value.
	NodeValue(nodeID, handleID string) cty.Value
}

// CodeContext is handed to an operator's code-emission function.
type CodeContext interface {
	// VariableName returns the generated variable name of a node.
	VariableName(nodeID string) string
	// InputVariable returns the variable bound to an input socket of node,
	// or the literal "0" when the socket is unconnected.
	InputVariable(node graph.Node, handleID string) string
	// Emit appends one statement to the generated program.
	Emit(statement string)
}

// EvalFunc computes the value of a node.
type EvalFunc func(ctx EvalContext, node graph.Node) (cty.Value, error)

// CodeFunc emits the statement that declares a node's value.
type CodeFunc func(ctx CodeContext, node graph.Node, g graph.Graph) error

// NodeConfig is the static contract of one operator type.
type NodeConfig struct {
	// Type is the unique registry key stored in graph.Node.Type.
	Type     string
	Label    string
	Category string
	Color    string
	// VarPrefix is the stem of variable names in generated code.
	VarPrefix string

	Inputs  []Socket
	Outputs []Socket

	Evaluate     EvalFunc
	GenerateCode CodeFunc
}

// Input returns the input socket with the given ID.
func (c NodeConfig) Input(id string) (Socket, bool) {
	return findSocket(c.Inputs, id)
}

// Output returns the output socket with the given ID.
func (c NodeConfig) Output(id string) (Socket, bool) {
	return findSocket(c.Outputs, id)
}

// IsSource reports whether the operator has no inputs.
func (c NodeConfig) IsSource() bool {
	return len(c.Inputs) == 0
}

func findSocket(sockets []Socket, id string) (Socket, bool) {
	for _, s := range sockets {
		if s.ID == id {
			return s, true
		}
	}
	return Socket{}, false
}

// Module is the interface that every operator family must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered operator configurations for a single
// application instance.
type Registry struct {
	configs map[string]NodeConfig
}

// New creates and initializes a new Registry, registering the given modules.
func New(modules ...Module) *Registry {
	r := &Registry{
		configs: make(map[string]NodeConfig),
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds cfg to the registry. It returns false and leaves the registry
// unchanged if a config with the same type is already present.
func (r *Registry) Register(cfg NodeConfig) bool {
	if _, exists := r.configs[cfg.Type]; exists {
		slog.Debug("Rejecting duplicate node config.", "type", cfg.Type)
		return false
	}
	slog.Debug("Registering node config.", "type", cfg.Type, "inputs", len(cfg.Inputs), "outputs", len(cfg.Outputs))
	r.configs[cfg.Type] = cfg
	return true
}

// MustRegister is like Register but panics on a duplicate type. Modules use
// it because a collision between compiled-in operators is a programmer error.
func (r *Registry) MustRegister(cfg NodeConfig) {
	if !r.Register(cfg) {
		panic(fmt.Sprintf("node config with type '%s' already registered", cfg.Type))
	}
}

// Configs returns a copy of the full registry table.
func (r *Registry) Configs() map[string]NodeConfig {
	cp := make(map[string]NodeConfig, len(r.configs))
	for k, v := range r.configs {
		cp[k] = v
	}
	return cp
}

// Lookup returns the config registered for nodeType.
func (r *Registry) Lookup(nodeType string) (NodeConfig, bool) {
	cfg, ok := r.configs[nodeType]
	return cfg, ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.configs))
	for k := range r.configs {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

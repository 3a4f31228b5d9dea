// Package connection decides whether a proposed edge may be added to a
// graph. The same rule is used by the editor when the user drags a wire and
// by the host before it commits an edge, so the two never disagree.
package connection

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
)

var (
	ErrUnknownNode    = errors.New("endpoint node not found")
	ErrUnknownType    = errors.New("endpoint node type is not registered")
	ErrUnknownSocket  = errors.New("socket not found")
	ErrKindMismatch   = errors.New("socket kinds differ")
	ErrInputOccupied  = errors.New("input socket already connected")
	ErrOutputOccupied = errors.New("output socket already connected")
)

// CanConnect reports whether c may be added to g.
func CanConnect(reg *registry.Registry, g graph.Graph, c graph.Connection) bool {
	return Check(reg, g, c) == nil
}

// Check runs the connection rules in order and returns the first one that
// fails, or nil. It never modifies g.
func Check(reg *registry.Registry, g graph.Graph, c graph.Connection) error {
	sourceNode, ok := graph.FindNode(g, c.Source)
	if !ok {
		return fmt.Errorf("source %q: %w", c.Source, ErrUnknownNode)
	}
	targetNode, ok := graph.FindNode(g, c.Target)
	if !ok {
		return fmt.Errorf("target %q: %w", c.Target, ErrUnknownNode)
	}

	sourceConfig, ok := reg.Lookup(sourceNode.Type)
	if !ok {
		return fmt.Errorf("source %q type %q: %w", sourceNode.ID, sourceNode.Type, ErrUnknownType)
	}
	targetConfig, ok := reg.Lookup(targetNode.Type)
	if !ok {
		return fmt.Errorf("target %q type %q: %w", targetNode.ID, targetNode.Type, ErrUnknownType)
	}

	sourceSocket, ok := sourceConfig.Output(c.SourceHandle)
	if !ok {
		return fmt.Errorf("output %q on %q: %w", c.SourceHandle, sourceNode.ID, ErrUnknownSocket)
	}
	targetSocket, ok := targetConfig.Input(c.TargetHandle)
	if !ok {
		return fmt.Errorf("input %q on %q: %w", c.TargetHandle, targetNode.ID, ErrUnknownSocket)
	}

	if sourceSocket.Kind != targetSocket.Kind {
		return fmt.Errorf("%s -> %s: %w", sourceSocket.Kind, targetSocket.Kind, ErrKindMismatch)
	}

	if !targetSocket.Multiple {
		if _, taken := graph.FindEdgeTo(g, targetNode.ID, c.TargetHandle); taken {
			return fmt.Errorf("input %q on %q: %w", c.TargetHandle, targetNode.ID, ErrInputOccupied)
		}
	}
	if !sourceSocket.Multiple && graph.HasEdgeFrom(g, sourceNode.ID, c.SourceHandle) {
		return fmt.Errorf("output %q on %q: %w", c.SourceHandle, sourceNode.ID, ErrOutputOccupied)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines sockets, the typed attachment points of a node.
//
// Only two value kinds exist: numbers and booleans. Each kind is backed by a
// cty.Type so that evaluation functions can use cty arithmetic and comparison
// directly, and so that every socket has a well-defined zero value for
// unconnected inputs.
package registry

import "github.com/zclconf/go-cty/cty"

// SocketKind is the value kind carried by a socket.
type SocketKind string

const (
	KindNumber  SocketKind = "number"
	KindBoolean SocketKind = "boolean"
)

// Valid reports whether k is one of the known kinds.
func (k SocketKind) Valid() bool {
	return k == KindNumber || k == KindBoolean
}

// Type returns the cty type backing the kind. Unknown kinds map to
// cty.DynamicPseudoType.
func (k SocketKind) Type() cty.Type {
	switch k {
	case KindNumber:
		return cty.Number
	case KindBoolean:
		return cty.Bool
	default:
		return cty.DynamicPseudoType
	}
}

// Zero returns the value an unconnected socket of this kind resolves to.
func (k SocketKind) Zero() cty.Value {
	if k == KindBoolean {
		return cty.False
	}
	return cty.Zero
}

// Socket is a named input or output of a node.
type Socket struct {
	ID   string
	Kind SocketKind
	// Multiple allows more than one edge to be bound to this socket.
	Multiple bool
}

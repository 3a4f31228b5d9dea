// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package graph is the in-memory store for a calculator program: a flat list
// of operator nodes and the edges that wire their sockets together.
//
// # Core Concepts
//
//   - Node: one operator instance. Its Type is a key into the node
//     configuration registry; its Data.Value is the user-entered value for
//     source nodes and the cached evaluation result for everything else.
//
//   - Edge: a directed link from an output socket (SourceHandle) of one node
//     to an input socket (TargetHandle) of another.
//
//   - Graph: the whole program. It is a value type with no back-references.
//
// Every operation in this package takes a Graph and returns a new one. The
// receiver's slices are never modified, so a caller holding an older snapshot
// keeps seeing it unchanged. Mutable ownership lives in the host (see the
// session package), which replaces its snapshot after every mutation.
package graph

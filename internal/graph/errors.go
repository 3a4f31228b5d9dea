// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import "errors"

var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrDuplicateNode = errors.New("duplicate node ID")
	ErrDuplicateEdge = errors.New("duplicate edge ID")
	ErrEmptyID       = errors.New("empty ID")
	ErrDanglingEdge  = errors.New("edge references a missing node")
	ErrInvalidValue  = errors.New("value is not a number")
)

// ErrNoOutput is returned by the evaluation engine and the code generator
// when the requested output node does not exist. Hosts treat it as a warning.
var ErrNoOutput = errors.New("no output to evaluate")

// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pathquiz/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep magic numbers out of test bodies.

package core_test

// Common node ids used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3

	NodesSmall = 4
)

// Common weights used across core tests.
const (
	Weight1  = 1
	Weight3  = 3
	Weight4  = 4
	Weight10 = 10
)

// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// errors.go — sentinel errors for graph constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates a Topology.Kind with no constructor.
var ErrUnknownTopology = errors.New("builder: unknown topology")

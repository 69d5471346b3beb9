package model

import "errors"

// Sentinel errors for the model package (spec §7).
var (
	// ErrNilModel indicates an operation was given a nil *Model.
	ErrNilModel = errors.New("model: nil model")

	// ErrUnknownKind indicates a dispatch encountered a node kind it cannot
	// classify; structural corruption (spec §7: CORRUPT).
	ErrUnknownKind = errors.New("model: unknown kind")

	// ErrEmptySetList indicates divide was asked to subdivide a leaf with
	// no sets at all, which has no pruning to do.
	ErrEmptySetList = errors.New("model: empty set-list")
)

const site = "model"

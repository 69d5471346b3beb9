package set

import "errors"

// Sentinel errors for the set package (spec §7: argument errors are
// WARNINGs, structural corruption is CORRUPT).
var (
	// ErrNilSet indicates an operation was given the zero Set value where a
	// constructed set was required.
	ErrNilSet = errors.New("set: nil set")

	// ErrUnknownKind indicates a dispatch encountered a node kind it cannot
	// classify; structural corruption (spec §7: CORRUPT).
	ErrUnknownKind = errors.New("set: unknown kind")

	// ErrNoCodec indicates an attribute tag has no registered codec when
	// serial needs to write or read its payload.
	ErrNoCodec = errors.New("set: no codec registered for attribute tag")
)

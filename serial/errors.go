package serial

import "errors"

const site = "serial"

// Sentinel errors surfaced by Reader methods. A malformed stream is a
// Corrupt-severity condition (spec §6: "the reader may abort the entire
// load on the first malformed entity") rather than a Warning one, since
// unlike a bad constructor argument there is no sane defensive value for
// half of a parse tree.
var (
	ErrUnexpectedEOF  = errors.New("serial: unexpected end of stream")
	ErrBadToken       = errors.New("serial: unexpected token")
	ErrUnknownTag     = errors.New("serial: unrecognised entity tag")
	ErrUnknownVersion = errors.New("serial: unsupported stream version")
	ErrDanglingRef    = errors.New("serial: address referenced before it was defined")
	ErrNoCodec        = errors.New("serial: no attribute codec registered for tag")
)

package xyzpub

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is returned when the input string is not valid
	// base58.
	ErrInvalidEncoding = errors.New("extended key is not valid base58")

	// ErrBadChecksum is returned when the trailing checksum of the
	// decoded extended key does not match its payload.
	ErrBadChecksum = errors.New("extended key checksum mismatch")
)

// InvalidLengthError is returned when a decoded extended key payload is not
// the expected 78 bytes.
type InvalidLengthError struct {
	// Length is the observed payload length.
	Length int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("extended key payload is %d bytes, want %d",
		e.Length, serializedKeyLen)
}

// InvalidVersionError is returned when the leading version bytes of an
// extended key match none of the recognized SLIP-132 prefixes.
type InvalidVersionError struct {
	// Version is the observed version prefix.
	Version [versionLen]byte
}

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unknown extended key version %x", e.Version[:])
}

// Package address provides the fixed 32-byte account address shared by the
// asset, transfer hook and vault modules, along with deterministic
// derivation of program-owned addresses.
package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"lukechampine.com/blake3"
)

// Length is the size in bytes of every address.
const Length = 32

var (
	// ErrInvalidLength is returned when raw bytes are not exactly Length long
	ErrInvalidLength = errors.New("invalid address length")

	// ErrInvalidEncoding is returned when a textual address is not valid base58
	ErrInvalidEncoding = errors.New("invalid address encoding")
)

// Address identifies an account, a program or a derived record.
type Address [Length]byte

// Zero is the all-zero address.
var Zero Address

// FromBytes copies b into an Address.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Length {
		return a, fmt.Errorf("%w: expected %d, got %d", ErrInvalidLength, Length, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Parse decodes the base58 text form of an address.
func Parse(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return FromBytes(raw)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromName hashes an arbitrary name into an address. Program IDs are built
// this way from module names.
func FromName(name string) Address {
	return Address(blake3.Sum256([]byte(name)))
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, Length)
	copy(out, a[:])
	return out
}

func (a Address) IsZero() bool {
	return a == Zero
}

func (a Address) Equals(other Address) bool {
	return a == other
}

// Compare orders addresses bytewise.
func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

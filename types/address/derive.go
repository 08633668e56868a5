package address

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"lukechampine.com/blake3"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included, in a derivation.
	MaxSeeds = 16

	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32

	derivationMarker = "ProgramDerivedAddress"
)

var (
	// ErrMaxSeedLengthExceeded is returned when a seed or the seed count is too large
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")

	// ErrOnCurve is returned when a candidate address is a valid ed25519 point
	// and could therefore have a private key
	ErrOnCurve = errors.New("derived address lies on the ed25519 curve")

	// ErrNoViableBump is returned when no bump yields an off-curve address
	ErrNoViableBump = errors.New("unable to find a viable derivation bump")
)

// CreateProgramAddress derives the address owned by program for the given
// seeds. The last seed is normally the bump returned by FindProgramAddress.
// Addresses that decode as ed25519 points are rejected so that no private key
// can ever sign for a derived address.
func CreateProgramAddress(seeds [][]byte, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Zero, fmt.Errorf("%w: %d seeds", ErrMaxSeedLengthExceeded, len(seeds))
	}

	h := blake3.New(Length, nil)
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Zero, fmt.Errorf("%w: seed of %d bytes", ErrMaxSeedLengthExceeded, len(seed))
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write([]byte(derivationMarker))

	var out Address
	copy(out[:], h.Sum(nil))
	if isOnCurve(out) {
		return Zero, ErrOnCurve
	}
	return out, nil
}

// FindProgramAddress searches bumps from 255 downward and returns the first
// off-curve address together with the bump that produced it.
func FindProgramAddress(seeds [][]byte, program Address) (Address, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		addr, err := CreateProgramAddress(withBump, program)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return Zero, 0, err
		}
	}
	return Zero, 0, ErrNoViableBump
}

// VerifyProgramAddress reports whether addr is the derivation of seeds and
// bump under program.
func VerifyProgramAddress(addr Address, seeds [][]byte, bump uint8, program Address) bool {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	withBump[len(seeds)] = []byte{bump}

	derived, err := CreateProgramAddress(withBump, program)
	if err != nil {
		return false
	}
	return derived == addr
}

func isOnCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}

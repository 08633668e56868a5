// Package accountmeta describes, in a declarative fixed-size format, the
// extra accounts a transfer hook needs beyond the accounts of the transfer
// itself, and resolves those descriptions into concrete addresses at
// transfer time.
package accountmeta

import (
	errorsmod "cosmossdk.io/errors"
)

// SeedKind identifies how a seed's bytes are obtained.
type SeedKind uint8

const (
	SeedUninitialized   SeedKind = 0
	SeedLiteral         SeedKind = 1
	SeedInstructionData SeedKind = 2
	SeedAccountKey      SeedKind = 3
)

// ConfigLength is the fixed size of a packed seed configuration.
const ConfigLength = 32

// Seed is one component of a derivation rule.
type Seed struct {
	Kind SeedKind

	// Bytes holds the literal value for SeedLiteral.
	Bytes []byte

	// Index is the account index for SeedAccountKey or the byte offset into
	// the instruction data for SeedInstructionData.
	Index uint8

	// Length is the number of instruction data bytes for SeedInstructionData.
	Length uint8
}

// Literal is a seed made of fixed bytes.
func Literal(b []byte) Seed {
	return Seed{Kind: SeedLiteral, Bytes: append([]byte(nil), b...)}
}

// AccountKey is a seed taken from the address at index in the transfer's
// account list.
func AccountKey(index uint8) Seed {
	return Seed{Kind: SeedAccountKey, Index: index}
}

// InstructionData is a seed taken from the transfer's instruction data.
func InstructionData(index, length uint8) Seed {
	return Seed{Kind: SeedInstructionData, Index: index, Length: length}
}

func (s Seed) packedLen() int {
	switch s.Kind {
	case SeedLiteral:
		return 2 + len(s.Bytes)
	case SeedInstructionData:
		return 3
	case SeedAccountKey:
		return 2
	default:
		return 0
	}
}

// PackSeeds packs seeds into the fixed 32-byte configuration. Unused trailing
// bytes stay zero, which reads back as SeedUninitialized.
func PackSeeds(seeds []Seed) ([ConfigLength]byte, error) {
	var cfg [ConfigLength]byte

	offset := 0
	for _, s := range seeds {
		n := s.packedLen()
		if n == 0 {
			return cfg, errorsmod.Wrapf(ErrInvalidSeedConfig, "seed kind %d", s.Kind)
		}
		if s.Kind == SeedLiteral && len(s.Bytes) > 255 {
			return cfg, errorsmod.Wrapf(ErrSeedConfigTooLarge, "literal of %d bytes", len(s.Bytes))
		}
		if offset+n > ConfigLength {
			return cfg, errorsmod.Wrapf(ErrSeedConfigTooLarge, "need %d bytes", offset+n)
		}

		cfg[offset] = byte(s.Kind)
		switch s.Kind {
		case SeedLiteral:
			cfg[offset+1] = byte(len(s.Bytes))
			copy(cfg[offset+2:], s.Bytes)
		case SeedInstructionData:
			cfg[offset+1] = s.Index
			cfg[offset+2] = s.Length
		case SeedAccountKey:
			cfg[offset+1] = s.Index
		}
		offset += n
	}
	return cfg, nil
}

// UnpackSeeds reverses PackSeeds.
func UnpackSeeds(cfg [ConfigLength]byte) ([]Seed, error) {
	var seeds []Seed

	offset := 0
	for offset < ConfigLength {
		kind := SeedKind(cfg[offset])
		switch kind {
		case SeedUninitialized:
			return seeds, nil
		case SeedLiteral:
			if offset+2 > ConfigLength {
				return nil, errorsmod.Wrap(ErrInvalidSeedConfig, "truncated literal header")
			}
			n := int(cfg[offset+1])
			if offset+2+n > ConfigLength {
				return nil, errorsmod.Wrap(ErrInvalidSeedConfig, "truncated literal")
			}
			seeds = append(seeds, Literal(cfg[offset+2:offset+2+n]))
			offset += 2 + n
		case SeedInstructionData:
			if offset+3 > ConfigLength {
				return nil, errorsmod.Wrap(ErrInvalidSeedConfig, "truncated instruction data seed")
			}
			seeds = append(seeds, InstructionData(cfg[offset+1], cfg[offset+2]))
			offset += 3
		case SeedAccountKey:
			if offset+2 > ConfigLength {
				return nil, errorsmod.Wrap(ErrInvalidSeedConfig, "truncated account key seed")
			}
			seeds = append(seeds, AccountKey(cfg[offset+1]))
			offset += 2
		default:
			return nil, errorsmod.Wrapf(ErrInvalidSeedConfig, "unknown seed kind %d", kind)
		}
	}
	return seeds, nil
}

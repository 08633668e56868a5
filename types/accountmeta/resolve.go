package accountmeta

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/tchajed/marshal"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// Indexes of the accounts every transfer hook invocation receives before
// its extra accounts.
const (
	IndexSource      uint8 = 0
	IndexMint        uint8 = 1
	IndexDestination uint8 = 2
	IndexOwner       uint8 = 3
	IndexMetaList    uint8 = 4
)

// ListSeed is the literal seed of the address holding an asset's list.
const ListSeed = "extra-account-metas"

// ListAddress derives the address at which program stores the extra account
// meta list for mint.
func ListAddress(mint, program address.Address) (address.Address, uint8, error) {
	return address.FindProgramAddress([][]byte{[]byte(ListSeed), mint.Bytes()}, program)
}

// Resolve computes the concrete address of every meta in the list. accounts
// holds the fixed accounts of the transfer in index order; each resolved
// address is appended so that later metas may reference earlier ones.
// Derived metas are derived under program.
func Resolve(list List, accounts []address.Address, data []byte, program address.Address) ([]address.Address, error) {
	all := make([]address.Address, len(accounts), len(accounts)+len(list))
	copy(all, accounts)

	resolved := make([]address.Address, 0, len(list))
	for i, m := range list {
		var addr address.Address
		switch m.Discriminator {
		case MetaFixed:
			addr = address.Address(m.AddressConfig)
		case MetaDerived:
			seeds, err := m.Seeds()
			if err != nil {
				return nil, errorsmod.Wrapf(err, "meta %d", i)
			}
			raw, err := seedBytes(seeds, all, data)
			if err != nil {
				return nil, errorsmod.Wrapf(err, "meta %d", i)
			}
			addr, _, err = address.FindProgramAddress(raw, program)
			if err != nil {
				return nil, errorsmod.Wrapf(ErrInvalidSeedConfig, "meta %d: %v", i, err)
			}
		default:
			return nil, errorsmod.Wrapf(ErrUnsupportedMeta, "meta %d discriminator %d", i, m.Discriminator)
		}

		all = append(all, addr)
		resolved = append(resolved, addr)
	}
	return resolved, nil
}

func seedBytes(seeds []Seed, accounts []address.Address, data []byte) ([][]byte, error) {
	out := make([][]byte, 0, len(seeds))
	for _, s := range seeds {
		switch s.Kind {
		case SeedLiteral:
			out = append(out, s.Bytes)
		case SeedAccountKey:
			if int(s.Index) >= len(accounts) {
				return nil, errorsmod.Wrapf(ErrAccountIndexOutOfRange, "index %d of %d", s.Index, len(accounts))
			}
			out = append(out, accounts[s.Index].Bytes())
		case SeedInstructionData:
			end := int(s.Index) + int(s.Length)
			if end > len(data) {
				return nil, errorsmod.Wrapf(ErrInstructionDataTooShort, "need %d bytes, have %d", end, len(data))
			}
			out = append(out, data[s.Index:end])
		default:
			return nil, errorsmod.Wrapf(ErrInvalidSeedConfig, "seed kind %d", s.Kind)
		}
	}
	return out, nil
}

// ExecuteData is the instruction data of a hook execution: the execute
// discriminator followed by the little-endian amount.
func ExecuteData(amount uint64) []byte {
	b := make([]byte, 0, 16)
	b = marshal.WriteBytes(b, ExecuteDiscriminator[:])
	return marshal.WriteInt(b, amount)
}

package accountmeta

import (
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"
	"lukechampine.com/blake3"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

const (
	// MetaFixed marks a meta whose address config is a literal address.
	MetaFixed uint8 = 0
	// MetaDerived marks a meta derived from seeds under the hook program.
	MetaDerived uint8 = 1

	// MetaSize is the encoded size of one Meta.
	MetaSize = 1 + ConfigLength + 1 + 1

	headerSize = 8 + 4 + 4
)

// ExecuteDiscriminator tags a list as describing the accounts of the hook's
// execute entry point.
var ExecuteDiscriminator = discriminator("transfer-hook-interface:execute")

func discriminator(name string) [8]byte {
	sum := blake3.Sum256([]byte(name))
	var d [8]byte
	copy(d[:], sum[:8])
	return d
}

// Meta describes one extra account.
type Meta struct {
	Discriminator uint8
	AddressConfig [ConfigLength]byte
	IsSigner      bool
	IsWritable    bool
}

// NewFixed describes an extra account by its literal address.
func NewFixed(addr address.Address, isSigner, isWritable bool) Meta {
	return Meta{
		Discriminator: MetaFixed,
		AddressConfig: addr,
		IsSigner:      isSigner,
		IsWritable:    isWritable,
	}
}

// NewWithSeeds describes an extra account derived from seeds under the hook
// program.
func NewWithSeeds(seeds []Seed, isSigner, isWritable bool) (Meta, error) {
	cfg, err := PackSeeds(seeds)
	if err != nil {
		return Meta{}, err
	}
	return Meta{
		Discriminator: MetaDerived,
		AddressConfig: cfg,
		IsSigner:      isSigner,
		IsWritable:    isWritable,
	}, nil
}

// Seeds unpacks the derivation rule of a derived meta.
func (m Meta) Seeds() ([]Seed, error) {
	if m.Discriminator != MetaDerived {
		return nil, errorsmod.Wrapf(ErrUnsupportedMeta, "discriminator %d has no seeds", m.Discriminator)
	}
	return UnpackSeeds(m.AddressConfig)
}

// List is the ordered set of extra accounts declared for one asset.
type List []Meta

// SizeOf is the encoded size of a list holding n metas.
func SizeOf(n int) int {
	return headerSize + n*MetaSize
}

// Encode writes the list in its fixed on-disk form:
// discriminator(8) · length(u32) · count(u32) · count × meta(35).
func (l List) Encode() ([]byte, error) {
	for i, m := range l {
		if m.Discriminator != MetaFixed && m.Discriminator != MetaDerived {
			return nil, errorsmod.Wrapf(ErrUnsupportedMeta, "meta %d discriminator %d", i, m.Discriminator)
		}
		if m.Discriminator == MetaDerived {
			if _, err := m.Seeds(); err != nil {
				return nil, errorsmod.Wrapf(err, "meta %d", i)
			}
		}
	}

	out := make([]byte, SizeOf(len(l)))
	copy(out[:8], ExecuteDiscriminator[:])
	binary.LittleEndian.PutUint32(out[8:12], uint32(4+len(l)*MetaSize))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(l)))

	offset := headerSize
	for _, m := range l {
		out[offset] = m.Discriminator
		copy(out[offset+1:offset+1+ConfigLength], m.AddressConfig[:])
		out[offset+1+ConfigLength] = boolByte(m.IsSigner)
		out[offset+2+ConfigLength] = boolByte(m.IsWritable)
		offset += MetaSize
	}
	return out, nil
}

// Decode parses a list written by Encode.
func Decode(bz []byte) (List, error) {
	if len(bz) < headerSize {
		return nil, errorsmod.Wrapf(ErrInvalidList, "list of %d bytes is shorter than its header", len(bz))
	}

	var disc [8]byte
	copy(disc[:], bz[:8])
	if disc != ExecuteDiscriminator {
		return nil, ErrDiscriminatorMismatch
	}

	length := binary.LittleEndian.Uint32(bz[8:12])
	count := binary.LittleEndian.Uint32(bz[12:16])
	if int(length) != 4+int(count)*MetaSize || len(bz) != SizeOf(int(count)) {
		return nil, errorsmod.Wrapf(ErrInvalidList, "length %d does not match %d entries", length, count)
	}

	list := make(List, 0, count)
	offset := headerSize
	for i := 0; i < int(count); i++ {
		var m Meta
		m.Discriminator = bz[offset]
		copy(m.AddressConfig[:], bz[offset+1:offset+1+ConfigLength])
		m.IsSigner = bz[offset+1+ConfigLength] == 1
		m.IsWritable = bz[offset+2+ConfigLength] == 1
		list = append(list, m)
		offset += MetaSize
	}
	return list, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

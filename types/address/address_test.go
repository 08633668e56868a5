package address_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

func TestParseRoundTrip(t *testing.T) {
	a := address.FromName("alice")

	parsed, err := address.Parse(a.String())
	require.NoError(t, err)
	require.Equal(t, a, parsed)

	_, err = address.Parse("0OIl")
	require.ErrorIs(t, err, address.ErrInvalidEncoding)

	_, err = address.FromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, address.ErrInvalidLength)
}

func TestAddressJSON(t *testing.T) {
	type wrapper struct {
		Owner address.Address `json:"owner"`
	}
	in := wrapper{Owner: address.FromName("bob")}

	bz, err := json.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(bz), in.Owner.String())

	var out wrapper
	require.NoError(t, json.Unmarshal(bz, &out))
	require.Equal(t, in, out)
}

func TestFindProgramAddressIsDeterministic(t *testing.T) {
	program := address.FromName("transferhook")
	seeds := [][]byte{[]byte("whitelist"), address.FromName("mint").Bytes()}

	a1, bump1, err := address.FindProgramAddress(seeds, program)
	require.NoError(t, err)
	a2, bump2, err := address.FindProgramAddress(seeds, program)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Equal(t, bump1, bump2)
	require.True(t, address.VerifyProgramAddress(a1, seeds, bump1, program))

	// a different program never yields the same address
	other, _, err := address.FindProgramAddress(seeds, address.FromName("vault"))
	require.NoError(t, err)
	require.NotEqual(t, a1, other)

	// the caller's seed slice is left untouched
	require.Len(t, seeds, 2)
}

func TestVerifyProgramAddressRejectsWrongBump(t *testing.T) {
	program := address.FromName("vault")
	seeds := [][]byte{[]byte("vault"), address.FromName("authority").Bytes()}

	addr, bump, err := address.FindProgramAddress(seeds, program)
	require.NoError(t, err)
	require.False(t, address.VerifyProgramAddress(addr, seeds, bump-1, program))
}

func TestCreateProgramAddressSeedLimits(t *testing.T) {
	program := address.FromName("vault")

	_, err := address.CreateProgramAddress([][]byte{make([]byte, address.MaxSeedLength+1)}, program)
	require.ErrorIs(t, err, address.ErrMaxSeedLengthExceeded)

	tooMany := make([][]byte, address.MaxSeeds+1)
	_, err = address.CreateProgramAddress(tooMany, program)
	require.ErrorIs(t, err, address.ErrMaxSeedLengthExceeded)
}

func TestKeyCodec(t *testing.T) {
	a := address.FromName("carol")
	buf := make([]byte, address.KeyCodec.Size(a))

	n, err := address.KeyCodec.Encode(buf, a)
	require.NoError(t, err)
	require.Equal(t, address.Length, n)

	read, decoded, err := address.KeyCodec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, address.Length, read)
	require.Equal(t, a, decoded)

	bz, err := address.KeyCodec.EncodeJSON(a)
	require.NoError(t, err)
	fromJSON, err := address.KeyCodec.DecodeJSON(bz)
	require.NoError(t, err)
	require.Equal(t, a, fromJSON)
}

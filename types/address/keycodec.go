package address

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// KeyCodec encodes addresses as fixed-width collections keys. Because every
// address has the same length, the terminal and non-terminal forms are
// identical and need no length prefix.
var KeyCodec collcodec.KeyCodec[Address] = keyCodec{}

type keyCodec struct{}

func (keyCodec) Encode(buffer []byte, key Address) (int, error) {
	if len(buffer) < Length {
		return 0, fmt.Errorf("%w: buffer too small for address key", ErrInvalidLength)
	}
	return copy(buffer, key[:]), nil
}

func (keyCodec) Decode(buffer []byte) (int, Address, error) {
	if len(buffer) < Length {
		return 0, Zero, fmt.Errorf("%w: expected %d key bytes, got %d", ErrInvalidLength, Length, len(buffer))
	}
	var a Address
	copy(a[:], buffer[:Length])
	return Length, a, nil
}

func (keyCodec) Size(Address) int { return Length }

func (keyCodec) EncodeJSON(value Address) ([]byte, error) {
	return json.Marshal(value.String())
}

func (keyCodec) DecodeJSON(b []byte) (Address, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return Zero, err
	}
	return Parse(s)
}

func (keyCodec) Stringify(key Address) string { return key.String() }

func (keyCodec) KeyType() string { return "address" }

func (c keyCodec) EncodeNonTerminal(buffer []byte, key Address) (int, error) {
	return c.Encode(buffer, key)
}

func (c keyCodec) DecodeNonTerminal(buffer []byte) (int, Address, error) {
	return c.Decode(buffer)
}

func (keyCodec) SizeNonTerminal(Address) int { return Length }

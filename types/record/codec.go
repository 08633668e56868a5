// Package record adapts fixed-layout binary records to collections value
// codecs. Every persisted record of the asset, transfer hook and vault
// modules has a fixed byte length, so a size mismatch is always corruption.
package record

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the registered error namespace of this package.
const Codespace = "record"

// ErrInvalidLength is returned when stored bytes do not match a record's
// fixed length.
var ErrInvalidLength = errorsmod.Register(Codespace, 1, "record has an unexpected length")

// Layout describes how one record type is laid out on disk.
type Layout[T any] struct {
	// Name is reported as the collections value type.
	Name string
	// Size is the exact encoded length.
	Size int
	// Encode appends the record to b.
	Encode func(b []byte, v T) []byte
	// Decode reads a record from exactly Size bytes.
	Decode func(b []byte) T
}

// NewCodec returns a collections value codec for layout.
func NewCodec[T any](layout Layout[T]) collcodec.ValueCodec[T] {
	return codec[T]{layout: layout}
}

type codec[T any] struct {
	layout Layout[T]
}

func (c codec[T]) Encode(value T) ([]byte, error) {
	out := c.layout.Encode(make([]byte, 0, c.layout.Size), value)
	if len(out) != c.layout.Size {
		return nil, errorsmod.Wrapf(ErrInvalidLength, "%s encoded to %d bytes, want %d", c.layout.Name, len(out), c.layout.Size)
	}
	return out, nil
}

func (c codec[T]) Decode(b []byte) (T, error) {
	if len(b) != c.layout.Size {
		var zero T
		return zero, errorsmod.Wrapf(ErrInvalidLength, "%s of %d bytes, want %d", c.layout.Name, len(b), c.layout.Size)
	}
	return c.layout.Decode(b), nil
}

func (codec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (codec[T]) DecodeJSON(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}

func (codec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c codec[T]) ValueType() string {
	return c.layout.Name
}

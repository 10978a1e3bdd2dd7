// Package u24 handles the 3-byte big-endian length prefix used by
// metadata fields on the wire.
package u24

import (
	"io"

	"github.com/warmsocket/rsocket/internal/common"
)

// MaxUint24 is the max value a Uint24 can hold.
const MaxUint24 = common.MaxUint24

// Uint24 is a 3 bytes unsigned integer.
type Uint24 = common.Uint24

// IsExceedMaximumUint24Error returns true if err means a value exceeded MaxUint24.
func IsExceedMaximumUint24Error(err error) bool {
	return common.IsExceedMaximumUint24Error(err)
}

// IsNegativeUint24Error returns true if err means a value was negative.
func IsNegativeUint24Error(err error) bool {
	return common.IsNegativeUint24Error(err)
}

// NewUint24 returns a new Uint24, erroring if v is out of range.
func NewUint24(v int) (Uint24, error) {
	return common.NewUint24(v)
}

// MustNewUint24 returns a new Uint24, panicking if v is out of range.
func MustNewUint24(v int) Uint24 {
	return common.MustNewUint24(v)
}

// NewUint24Bytes decodes a Uint24 from its 3 byte encoding.
func NewUint24Bytes(bs []byte) Uint24 {
	return common.NewUint24Bytes(bs)
}

// ReadUint24ToInt decodes the leading 3 bytes of bs as a Uint24 and
// returns it as an int.
func ReadUint24ToInt(bs []byte) int {
	return NewUint24Bytes(bs).AsInt()
}

// WriteUint24 encodes n as a Uint24 and writes it to w.
func WriteUint24(w io.Writer, n int) error {
	v, err := NewUint24(n)
	if err != nil {
		return err
	}
	_, err = v.WriteTo(w)
	return err
}

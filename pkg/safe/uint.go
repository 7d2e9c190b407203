// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Int64 converts an unsigned value to int64, rejecting values above math.MaxInt64.
// SQLite integers are signed 64-bit, so every u64 bound to a statement goes through here.
func Int64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errors.Newf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint64 converts a signed value to uint64 while guarding against negatives.
func Uint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, errors.Newf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint32 narrows an unsigned value to uint32 with range validation.
func Uint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, errors.Newf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

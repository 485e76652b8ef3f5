package opts

import (
	"errors"
	"math"
	"strconv"
)

// Number lists the types the typed accessors can convert to.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Value converts the first value of the named option to T, accepting the
// full range of T.
func Value[T Number](p *Parser, name string) (T, error) {
	low, high := limits[T]()
	return ValueIn(p, name, low, high)
}

// Values converts every value of the named option to T, accepting the full
// range of T.
func Values[T Number](p *Parser, name string) ([]T, error) {
	low, high := limits[T]()
	return ValuesIn(p, name, low, high)
}

// ValueIn converts the first value of the named option to T and checks that
// it lies within [low, high].
func ValueIn[T Number](p *Parser, name string, low, high T) (T, error) {
	values, err := ValuesIn(p, name, low, high)
	if err != nil {
		var zero T
		return zero, err
	}
	return values[0], nil
}

// ValuesIn converts every value of the named option to T, in order. It fails
// with ErrorKindOptionNotGiven if the option is absent and with
// ErrorKindOptionValueError if any value is malformed or outside [low, high].
func ValuesIn[T Number](p *Parser, name string, low, high T) ([]T, error) {
	raw, err := p.find(name)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, text := range raw {
		v, err := convert[T](text)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return nil, rangeError(name, text, low, high)
		case err != nil:
			perr := newParseError(ErrorKindOptionValueError, name,
				"invalid argument value for %q: %s", name, text)
			perr.Value = text
			return nil, perr
		}
		if v != v || v < low || v > high { // v != v catches NaN
			return nil, rangeError(name, text, low, high)
		}
		out = append(out, v)
	}
	return out, nil
}

func rangeError[T Number](name, text string, low, high T) *ParseError {
	err := newParseError(ErrorKindOptionValueError, name,
		"argument value for %q is out-of-range: %s [valid range is %v .. %v]", name, text, low, high)
	err.Value = text
	return err
}

// convert parses text as a base-10 T. Values that do not fit T report
// strconv.ErrRange.
func convert[T Number](text string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64:
		n, err := strconv.ParseInt(text, 10, bitSize[T]())
		return T(n), err
	case uint, uint8, uint16, uint32, uint64:
		n, err := strconv.ParseUint(text, 10, bitSize[T]())
		return T(n), err
	default:
		f, err := strconv.ParseFloat(text, bitSize[T]())
		return T(f), err
	}
}

func bitSize[T Number]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int, uint:
		return strconv.IntSize
	default:
		return 64
	}
}

// limits returns the smallest and largest finite values of T. Constants go
// through typed variables since they are not representable in every T.
func limits[T Number]() (T, T) {
	var zero T
	switch any(zero).(type) {
	case int:
		low, high := math.MinInt, math.MaxInt
		return T(low), T(high)
	case int8:
		low, high := int8(math.MinInt8), int8(math.MaxInt8)
		return T(low), T(high)
	case int16:
		low, high := int16(math.MinInt16), int16(math.MaxInt16)
		return T(low), T(high)
	case int32:
		low, high := int32(math.MinInt32), int32(math.MaxInt32)
		return T(low), T(high)
	case int64:
		low, high := int64(math.MinInt64), int64(math.MaxInt64)
		return T(low), T(high)
	case uint:
		high := uint(math.MaxUint)
		return 0, T(high)
	case uint8:
		high := uint8(math.MaxUint8)
		return 0, T(high)
	case uint16:
		high := uint16(math.MaxUint16)
		return 0, T(high)
	case uint32:
		high := uint32(math.MaxUint32)
		return 0, T(high)
	case uint64:
		high := uint64(math.MaxUint64)
		return 0, T(high)
	case float32:
		high := float32(math.MaxFloat32)
		return T(-high), T(high)
	default:
		high := math.MaxFloat64
		return T(-high), T(high)
	}
}

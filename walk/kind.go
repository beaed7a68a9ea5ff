// Package walk rebuilds document trees, converting every mapping key through
// a rename function while leaf values pass through untouched.
package walk

import (
	"math/big"
	"reflect"
	"time"

	"github.com/woodsbury/decimal128"
)

// Kind classifies a single value before conversion.
type Kind int

const (
	// KindNull matches nil and typed nil pointers.
	KindNull Kind = iota
	// KindTemporal matches date/time leaves that must never be walked.
	KindTemporal
	// KindBigNumber matches arbitrary-precision numeric leaves.
	KindBigNumber
	// KindMapping matches string-keyed maps and structs.
	KindMapping
	// KindSequence matches slices and arrays, except byte slices.
	KindSequence
	// KindScalar matches every remaining primitive.
	KindScalar
)

// KindOf classifies value in a fixed priority order: null and the leaf kinds
// (temporal, big number) are recognised before the structural checks, so a
// time.Time or big.Int is never walked as a struct.
func KindOf(value interface{}) Kind {
	if value == nil {
		return KindNull
	}
	switch actual := value.(type) {
	case time.Time:
		return KindTemporal
	case *time.Time:
		if actual == nil {
			return KindNull
		}
		return KindTemporal
	case big.Int, decimal128.Decimal:
		return KindBigNumber
	case *big.Int:
		if actual == nil {
			return KindNull
		}
		return KindBigNumber
	case map[string]interface{}:
		if actual == nil {
			return KindNull
		}
		return KindMapping
	case []interface{}:
		if actual == nil {
			return KindNull
		}
		return KindSequence
	case []byte: //blob
		return KindScalar
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindScalar
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOf(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return KindNull
		}
		return KindMapping
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}
		return KindSequence
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}
		return KindSequence
	case reflect.Struct:
		return KindMapping
	}
	return KindScalar
}

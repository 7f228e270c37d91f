package domain

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// CoerceNumber converts whatever numeric shape a store driver hands back
// into a float64. Fallback chain: native numeric -> big integer -> string
// parse -> high/low pair -> 0. The aggregation core only ever sees the
// result, never the driver shape. NaN and infinities degrade to 0 too:
// they would otherwise poison the int64 conversions downstream.
func CoerceNumber(value any) float64 {
	f := coerceNumber(value, 0)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func coerceNumber(value any, depth int) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return f
	case *big.Float:
		f, _ := v.Float64()
		return f
	case json.Number:
		return parseNumericString(string(v))
	case string:
		return parseNumericString(v)
	case []byte:
		return parseNumericString(string(v))
	}

	if depth < 4 {
		if v, ok := value.(driver.Valuer); ok {
			if inner, err := v.Value(); err == nil && inner != value {
				return coerceNumber(inner, depth+1)
			}
		}
	}

	if high, low, ok := highLowPair(value); ok {
		return high*4294967296 + low
	}

	return 0
}

func parseNumericString(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// highLowPair recognizes 64-bit values split into 32-bit halves, a shape
// some wire formats use for long integers.
func highLowPair(value any) (high, low float64, ok bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		h := rv.FieldByName("High")
		l := rv.FieldByName("Low")
		if h.IsValid() && l.IsValid() && h.CanInterface() && l.CanInterface() {
			return coerceNumber(h.Interface(), 4), coerceNumber(l.Interface(), 4), true
		}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			h := rv.MapIndex(reflect.ValueOf("high"))
			l := rv.MapIndex(reflect.ValueOf("low"))
			if h.IsValid() && l.IsValid() {
				return coerceNumber(h.Interface(), 4), coerceNumber(l.Interface(), 4), true
			}
		}
	}
	return 0, 0, false
}

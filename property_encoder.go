package servicebus

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"time"
	"unicode/utf8"
)

// AmqpTypeTag names the AMQP scalar type a Go value was mapped to by the type-detection decision tree in §4.6.
// It is a closed set, replacing the source's runtime typeof/instanceof ladder with the pattern-matching design
// note calls for (spec.md §9).
type AmqpTypeTag string

const (
	TagNull           AmqpTypeTag = "null"
	TagBoolean        AmqpTypeTag = "boolean"
	TagByte           AmqpTypeTag = "byte"
	TagSByte          AmqpTypeTag = "sbyte"
	TagInt16          AmqpTypeTag = "int16"
	TagUInt16         AmqpTypeTag = "uint16"
	TagInt32          AmqpTypeTag = "int32"
	TagUInt32         AmqpTypeTag = "uint32"
	TagInt64          AmqpTypeTag = "int64"
	TagUInt64         AmqpTypeTag = "uint64"
	TagSingle         AmqpTypeTag = "single"
	TagDouble         AmqpTypeTag = "double"
	TagDecimal        AmqpTypeTag = "decimal"
	TagChar           AmqpTypeTag = "char"
	TagString         AmqpTypeTag = "string"
	TagGUID           AmqpTypeTag = "guid"
	TagURI            AmqpTypeTag = "uri"
	TagDateTime       AmqpTypeTag = "datetime"
	TagDateTimeOffset AmqpTypeTag = "datetimeoffset"
	TagTimespan       AmqpTypeTag = "timespan"
	TagStream         AmqpTypeTag = "stream"
	TagArray          AmqpTypeTag = "array"
)

// Decimal is the shape the spec's "decimal-like object" rule (§4.6 step 11) looks for: a value with
// precision/scale and a String() representation, such as a fixed-point money type.
type Decimal interface {
	Value() float64
	Precision() int
	Scale() int
	String() string
}

// AmqpValue is the tagged-variant result of detecting a Go value's AMQP type. Native is ready to hand to the
// AMQP codec (encodeAMQPMap); for the two types the codec has no first-class wire representation for (char,
// decimal — see DESIGN.md), Native is a best-effort fallback but Tag still reports the type the spec's decision
// tree actually selected.
type AmqpValue struct {
	Tag    AmqpTypeTag
	Native interface{}
}

var (
	guidPattern     = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	timespanPattern = regexp.MustCompile(`^-?(\d+\.)?(\d{2}:)?(\d{2}:)?\d{2}(\.\d{1,7})?$`)

	dateLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
		time.RFC1123,
	}
)

// detectAMQPValue implements the §4.6 type-detection decision tree for a single value.
func detectAMQPValue(key string, v interface{}) (AmqpValue, error) {
	switch val := v.(type) {
	case nil:
		return AmqpValue{Tag: TagNull, Native: nil}, nil
	case bool:
		return AmqpValue{Tag: TagBoolean, Native: val}, nil
	case int:
		return detectAMQPInt(int64(val)), nil
	case int8:
		return detectAMQPInt(int64(val)), nil
	case int16:
		return detectAMQPInt(int64(val)), nil
	case int32:
		return detectAMQPInt(int64(val)), nil
	case int64:
		return detectAMQPInt(val), nil
	case uint:
		return detectAMQPUint(uint64(val)), nil
	case uint8:
		return detectAMQPInt(int64(val)), nil
	case uint16:
		return detectAMQPInt(int64(val)), nil
	case uint32:
		return detectAMQPUint(uint64(val)), nil
	case uint64:
		return detectAMQPWideUint(val), nil
	case float32:
		return detectAMQPFloat(float64(val)), nil
	case float64:
		return detectAMQPFloat(val), nil
	case string:
		return detectAMQPString(val), nil
	case time.Time:
		// Rule 7: an instant object is always datetimeoffset, regardless of how string detection (rule 6) would
		// have classified its ISO rendering.
		return AmqpValue{Tag: TagDateTimeOffset, Native: val.UTC().Format(time.RFC3339Nano)}, nil
	case *url.URL:
		return AmqpValue{Tag: TagURI, Native: val.String()}, nil
	case url.URL:
		return AmqpValue{Tag: TagURI, Native: val.String()}, nil
	case []byte:
		return AmqpValue{Tag: TagStream, Native: val}, nil
	case Decimal:
		return AmqpValue{Tag: TagDecimal, Native: val.String()}, nil
	default:
		return detectAMQPOther(key, v)
	}
}

func detectAMQPOther(key string, v interface{}) (AmqpValue, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elemVal, err := detectAMQPValue(fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface())
			if err != nil {
				return AmqpValue{}, err
			}
			elems[i] = elemVal.Native
		}
		return AmqpValue{Tag: TagArray, Native: elems}, nil
	}
	return AmqpValue{}, ErrUnsupportedType{Key: key, GoType: fmt.Sprintf("%T", v)}
}

// detectAMQPInt implements §4.6 step 3: minimal-width signed/unsigned integer selection, tried in the exact
// documented order so a value like 200 lands on byte rather than int16.
func detectAMQPInt(i int64) AmqpValue {
	switch {
	case i >= 0 && i <= 255:
		return AmqpValue{Tag: TagByte, Native: uint8(i)}
	case i >= -128 && i <= 127:
		return AmqpValue{Tag: TagSByte, Native: int8(i)}
	case i >= -32768 && i <= 32767:
		return AmqpValue{Tag: TagInt16, Native: int16(i)}
	case i >= 0 && i <= 65535:
		return AmqpValue{Tag: TagUInt16, Native: uint16(i)}
	case i >= math.MinInt32 && i <= math.MaxInt32:
		return AmqpValue{Tag: TagInt32, Native: int32(i)}
	case i >= 0 && i <= int64(math.MaxUint32):
		return AmqpValue{Tag: TagUInt32, Native: uint32(i)}
	default:
		return AmqpValue{Tag: TagInt64, Native: i}
	}
}

func detectAMQPUint(u uint64) AmqpValue {
	if u <= math.MaxInt64 {
		return detectAMQPInt(int64(u))
	}
	return AmqpValue{Tag: TagUInt64, Native: u}
}

// detectAMQPWideUint implements §4.6 step 5 for a Go uint64, which can hold values an int64 can't represent.
func detectAMQPWideUint(u uint64) AmqpValue {
	if u <= math.MaxInt64 {
		return detectAMQPInt(int64(u))
	}
	return AmqpValue{Tag: TagUInt64, Native: u}
}

// detectAMQPFloat implements §4.6 step 4.
func detectAMQPFloat(f float64) AmqpValue {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) <= math.MaxFloat32 {
		return AmqpValue{Tag: TagSingle, Native: float32(f)}
	}
	return AmqpValue{Tag: TagDouble, Native: f}
}

// detectAMQPString implements §4.6 step 6, trying each heuristic in the documented order.
func detectAMQPString(s string) AmqpValue {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return AmqpValue{Tag: TagChar, Native: int32(r)}
	}

	if guidPattern.MatchString(s) {
		return AmqpValue{Tag: TagGUID, Native: s}
	}

	if looksLikeURI(s) {
		return AmqpValue{Tag: TagURI, Native: s}
	}

	if timespanPattern.MatchString(s) {
		return AmqpValue{Tag: TagTimespan, Native: s}
	}

	if t, ok := parseDateString(s); ok {
		return AmqpValue{Tag: TagDateTime, Native: t.UTC().Format(time.RFC3339Nano)}
	}

	return AmqpValue{Tag: TagString, Native: s}
}

func looksLikeURI(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ConvertPropertiesToAMQPBytes is C5's primary entry point (§6 "convert_properties_to_amqp_bytes"): it
// type-detects every value in the map and hands the result to the AMQP codec as an encoded map.
func ConvertPropertiesToAMQPBytes(values map[string]interface{}) ([]byte, error) {
	native := make(map[string]interface{}, len(values))
	for k, v := range values {
		av, err := detectAMQPValue(k, v)
		if err != nil {
			return nil, err
		}
		native[k] = av.Native
	}
	return encodeAMQPMap(native)
}

// ValidateAMQPProperties is C5's companion validator (§6 "validate_amqp_properties"): it runs the same
// decision tree without emitting, so a caller can reject a property bag with precise key attribution before
// committing to an encode + RPC round trip.
func ValidateAMQPProperties(values map[string]interface{}) error {
	for k, v := range values {
		if _, err := detectAMQPValue(k, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAMQPPropertiesForOperation is the convenience wrapper settlement operations call: it returns zero
// bytes for an empty or missing property map, and wraps any encode failure with the operation name.
func EncodeAMQPPropertiesForOperation(values map[string]interface{}, opName string) ([]byte, error) {
	if len(values) == 0 {
		return []byte{}, nil
	}
	b, err := ConvertPropertiesToAMQPBytes(values)
	if err != nil {
		return nil, ErrEncodeFailed{Op: opName, Cause: err}
	}
	return b, nil
}

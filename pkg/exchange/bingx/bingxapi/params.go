package bingxapi

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Param is a single name/value pair of a canonical parameter string.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter set. The insertion order is the order of the
// canonical string, and therefore the order that gets signed.
//
// A nil pointer (or a nil interface) passed to Add is treated as "absent" and the
// field is dropped entirely. Zero values such as "", 0 and false are kept.
type Params struct {
	existing string
	entries  []Param
}

func NewParams() *Params {
	return &Params{}
}

// Extend seeds the parameter set with an already encoded canonical string, the new
// fields are appended after it.
func (p *Params) Extend(existing string) *Params {
	p.existing = existing
	return p
}

// Add appends the field when the value is present.
func (p *Params) Add(key string, value interface{}) *Params {
	str, ok := FormatValue(value)
	if !ok {
		return p
	}

	p.entries = append(p.entries, Param{Key: key, Value: str})
	return p
}

// Prepend inserts the field before every other field.
func (p *Params) Prepend(key string, value interface{}) *Params {
	str, ok := FormatValue(value)
	if !ok {
		return p
	}

	p.entries = append([]Param{{Key: key, Value: str}}, p.entries...)
	return p
}

// Get returns the encoded value of the first field with the given key.
func (p *Params) Get(key string) (string, bool) {
	for _, e := range p.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}

// Len returns the number of present fields, the seeded string is not counted.
func (p *Params) Len() int {
	return len(p.entries)
}

// Clone returns a copy that can be extended without touching the receiver.
func (p *Params) Clone() *Params {
	entries := make([]Param, len(p.entries))
	copy(entries, p.entries)
	return &Params{existing: p.existing, entries: entries}
}

// Encode builds the canonical string: key=value pairs joined by "&" in insertion
// order, without a trailing separator.
func (p *Params) Encode() string {
	var sb strings.Builder
	if p.existing != "" {
		sb.WriteString(strings.TrimRight(p.existing, "&"))
	}

	for _, e := range p.entries {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(e.Key)
		sb.WriteByte('=')
		sb.WriteString(e.Value)
	}

	return sb.String()
}

func (p *Params) String() string {
	return p.Encode()
}

// EncodeParams is the functional form of Params: it extends the existing canonical
// string with the given fields.
func EncodeParams(existing string, fields ...Param) string {
	p := NewParams().Extend(existing)
	p.entries = append(p.entries, fields...)
	return p.Encode()
}

// FormatValue converts a parameter value into its wire representation. The boolean
// result is false when the value is absent.
func FormatValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false

	case string:
		return v, true

	case bool:
		return strconv.FormatBool(v), true

	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true

	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true

	case decimal.Decimal:
		return v.String(), true

	case fmt.Stringer:
		// typed nil pointers implementing Stringer are still absent
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return "", false
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return FormatValue(rv.Elem().Interface())

	case reflect.String:
		return rv.String(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	}

	return fmt.Sprintf("%v", value), true
}

package nbt

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/goccy/go-yaml"
)

var ErrUnsupportedValue = errors.New("nbt: unsupported value")

// FromValue converts a decoded JSON or YAML value into a tag.
//
// Mappings become compounds (yaml.MapSlice keeps its order, Go maps are
// sorted by key), sequences become lists, booleans become bytes, integers
// become Int when they fit in 32 bits and Long otherwise, and floats become
// Double.
func FromValue(v any) (Tag, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupportedValue)
	case Tag:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return fromInt64(int64(x)), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return fromInt64(x), nil
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return fromInt64(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d overflows long", ErrUnsupportedValue, x)
		}
		return fromInt64(int64(x)), nil
	case uint:
		return FromValue(uint64(x))
	case float32:
		return Float(x), nil
	case float64:
		return Double(x), nil
	case yaml.MapSlice:
		c := NewCompound()
		for _, item := range x {
			if err := setValue(c, item.Key, item.Value); err != nil {
				return nil, err
			}
		}
		return c, nil
	case map[string]any:
		c := NewCompound()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			if err := setValue(c, key, x[key]); err != nil {
				return nil, err
			}
		}
		return c, nil
	case []any:
		l := NewList()
		for i, item := range x {
			t, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			l.Append(t)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func fromInt64(n int64) Tag {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return Int(n)
	}
	return Long(n)
}

func setValue(c *Compound, key, value any) error {
	name, ok := key.(string)
	if !ok {
		name = fmt.Sprint(key)
	}
	t, err := FromValue(value)
	if err != nil {
		return fmt.Errorf("key %q: %w", name, err)
	}
	c.Set(name, t)
	return nil
}

// ValueOptions controls ToValue.
type ValueOptions struct {
	// UUIDs renders four-element int arrays as UUID strings.
	UUIDs bool
}

// ToValue converts a tag into plain Go values suitable for YAML or JSON
// encoding. Compounds become yaml.MapSlice so key order survives.
func ToValue(t Tag, opts ValueOptions) any {
	switch x := t.(type) {
	case nil:
		return nil
	case Byte:
		return int8(x)
	case Short:
		return int16(x)
	case Int:
		return int32(x)
	case Long:
		return int64(x)
	case Float:
		return float32(x)
	case Double:
		return float64(x)
	case String:
		return string(x)
	case ByteArray:
		return slices.Clone([]int8(x))
	case IntArray:
		if opts.UUIDs {
			if u, ok := UUIDFromIntArray(x); ok {
				return u.String()
			}
		}
		return slices.Clone([]int32(x))
	case LongArray:
		return slices.Clone([]int64(x))
	case *List:
		out := make([]any, 0, x.Len())
		for elem := range x.All() {
			out = append(out, ToValue(elem, opts))
		}
		return out
	case *Compound:
		out := make(yaml.MapSlice, 0, x.Len())
		for name, child := range x.All() {
			out = append(out, yaml.MapItem{Key: name, Value: ToValue(child, opts)})
		}
		return out
	default:
		return fmt.Sprint(t)
	}
}

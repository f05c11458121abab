package settings

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
var timeDurationType = reflect.TypeOf(time.Duration(0))

// coerce converts a decoded document value into the target type. Values
// arrive as whatever the document decoder produced: int64 from TOML, float64
// from JSON, strings everywhere, so numeric widths convert when they fit and
// strings parse into non-string targets. The returned value's dynamic type
// is exactly target.
func coerce(raw any, target reflect.Type) (any, error) {
	if raw == nil {
		return nil, fmt.Errorf("value is null")
	}
	if reflect.TypeOf(raw) == target {
		return raw, nil
	}
	if target == timeDurationType {
		return coerceDuration(raw)
	}

	var result any
	switch target.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot use %T as string", raw)
		}
		result = s

	case reflect.Bool:
		switch v := raw.(type) {
		case bool:
			result = v
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("parse bool: %w", err)
			}
			result = b
		default:
			return nil, fmt.Errorf("cannot use %T as bool", raw)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := coerceInt(raw, target)
		if err != nil {
			return nil, err
		}
		result = n

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := coerceUint(raw, target)
		if err != nil {
			return nil, err
		}
		result = n

	case reflect.Float32, reflect.Float64:
		f, err := coerceFloat(raw, target)
		if err != nil {
			return nil, err
		}
		result = f

	default:
		if s, ok := raw.(string); ok && reflect.PointerTo(target).Implements(textUnmarshalerType) {
			holder := reflect.New(target)
			if err := holder.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return nil, fmt.Errorf("text decode: %w", err)
			}
			return holder.Elem().Interface(), nil
		}
		return nil, fmt.Errorf("unsupported setting type %s", target)
	}

	value := reflect.ValueOf(result)
	if value.Type() != target {
		if !value.Type().ConvertibleTo(target) {
			return nil, fmt.Errorf("cannot convert %s to %s", value.Type(), target)
		}
		value = value.Convert(target)
	}
	return value.Interface(), nil
}

func coerceDuration(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("duration must be a string like \"750ms\", got %T", raw)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, fmt.Errorf("parse duration: %w", err)
	}
	return d, nil
}

func coerceInt(raw any, target reflect.Type) (int64, error) {
	var n int64
	switch v := raw.(type) {
	case int64:
		n = v
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		n = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, target.Bits())
		if err != nil {
			return 0, fmt.Errorf("parse int: %w", err)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("cannot use %T as %s", raw, target.Kind())
	}
	if reflect.Zero(target).OverflowInt(n) {
		return 0, fmt.Errorf("%d overflows %s", n, target)
	}
	return n, nil
}

func coerceUint(raw any, target reflect.Type) (uint64, error) {
	var n uint64
	switch v := raw.(type) {
	case uint64:
		n = v
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("%d is negative", v)
		}
		n = uint64(v)
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%d is negative", v)
		}
		n = uint64(v)
	case float64:
		if v != math.Trunc(v) || v < 0 {
			return 0, fmt.Errorf("%v is not an unsigned integer", v)
		}
		n = uint64(v)
	case string:
		parsed, err := strconv.ParseUint(v, 10, target.Bits())
		if err != nil {
			return 0, fmt.Errorf("parse uint: %w", err)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("cannot use %T as %s", raw, target.Kind())
	}
	if reflect.Zero(target).OverflowUint(n) {
		return 0, fmt.Errorf("%d overflows %s", n, target)
	}
	return n, nil
}

func coerceFloat(raw any, target reflect.Type) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, target.Bits())
		if err != nil {
			return 0, fmt.Errorf("parse float: %w", err)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("cannot use %T as %s", raw, target.Kind())
	}
	if reflect.Zero(target).OverflowFloat(f) {
		return 0, fmt.Errorf("%v overflows %s", f, target)
	}
	return f, nil
}

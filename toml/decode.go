package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses TOML data and stores the result in the value pointed to
// by v. Struct fields are matched by `toml` tag first, then by
// case-insensitive field name.
func Unmarshal(data []byte, v any) error {
	parsed, err := newParser(data).parse()
	if err != nil {
		return err
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("toml: target must be a non-nil pointer")
	}
	return decodeValue(parsed, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	switch val.Kind() {
	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("toml: expected table for struct, got %T", data)
		}
		return decodeStruct(m, val)

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("toml: expected array, got %T", data)
		}
		out := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeValue(item, out.Index(i)); err != nil {
				return err
			}
		}
		val.Set(out)
		return nil

	case reflect.Array:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("toml: expected array, got %T", data)
		}
		if len(items) != val.Len() {
			return fmt.Errorf("toml: expected %d elements, got %d", val.Len(), len(items))
		}
		for i, item := range items {
			if err := decodeValue(item, val.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("toml: expected string, got %T", data)
		}
		val.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("toml: expected boolean, got %T", data)
		}
		val.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := data.(int64)
		if !ok {
			return fmt.Errorf("toml: expected integer, got %T", data)
		}
		if val.OverflowInt(i) {
			return fmt.Errorf("toml: integer %d overflows %s", i, val.Type())
		}
		val.SetInt(i)
		return nil

	case reflect.Float32, reflect.Float64:
		// Integers promote to floats so "speed = 120" works
		switch n := data.(type) {
		case float64:
			val.SetFloat(n)
		case int64:
			val.SetFloat(float64(n))
		default:
			return fmt.Errorf("toml: expected number, got %T", data)
		}
		return nil
	}

	return fmt.Errorf("toml: unsupported target type %s", val.Type())
}

func decodeStruct(m map[string]any, val reflect.Value) error {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := field.Tag.Get("toml")
		if key == "-" {
			continue
		}
		if key == "" {
			key = field.Name
		}

		raw, ok := lookupKey(m, key)
		if !ok {
			continue
		}
		if err := decodeValue(raw, val.Field(i)); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

func lookupKey(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

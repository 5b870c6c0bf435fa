// Package respond guarantees that every tool result crossing the process
// boundary is valid JSON text. Raw string messages are wrapped, arbitrary
// values are serialized through a permissive sanitizer, and the error
// fallback is built by direct construction so it can never recurse.
package respond

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// fallback is the fixed-shape payload emitted when even the error object
// cannot be marshaled. It exists so the normalizer has a non-recursive
// floor; in practice it is unreachable.
const fallback = `{"status": "error", "error": "serialization failure"}`

// EnsureJSON renders any tool result as valid JSON text.
//
// Strings that already parse as JSON pass through unchanged, which makes
// the function idempotent on its own output. Any other string is wrapped
// as a success message. Non-string values are serialized with unsupported
// leaves (channels, funcs, NaN floats, live handles) replaced by their
// display-string representation. EnsureJSON never panics and never returns
// text that fails to parse.
func EnsureJSON(v any) string {
	if s, ok := v.(string); ok {
		if json.Valid([]byte(s)) {
			return s
		}
		return Success(s)
	}

	b, err := json.MarshalIndent(sanitize(v), "", "  ")
	if err != nil {
		return errorJSON("serialization error: " + err.Error())
	}
	return string(b)
}

// Success builds a {"status":"success","message":...} payload.
func Success(message string) string {
	b, err := json.MarshalIndent(map[string]string{
		"status":  "success",
		"message": message,
	}, "", "  ")
	if err != nil {
		return fallback
	}
	return string(b)
}

// Error builds a {"status":"error","error":...} payload.
func Error(message string) string {
	return errorJSON(message)
}

// errorJSON is the terminal fallback path. It marshals a flat string map
// and never re-enters EnsureJSON.
func errorJSON(message string) string {
	b, err := json.MarshalIndent(map[string]string{
		"status": "error",
		"error":  message,
	}, "", "  ")
	if err != nil {
		return fallback
	}
	return string(b)
}

// cycleMarker replaces a back-reference when a container turns out to
// contain itself. json.Marshal rejects such values, and fmt.Sprint would
// loop on them, so they are cut here.
const cycleMarker = "<cycle>"

// sanitize returns a value that json.Marshal is guaranteed to accept.
// Values that already marshal are returned untouched; containers are
// rebuilt with sanitized elements; everything else degrades to fmt.Sprint.
func sanitize(v any) any {
	return sanitizeValue(v, make(map[uintptr]bool))
}

// sanitizeValue does the recursion. visited holds the identity of every
// map, slice and pointer already entered, so reference cycles terminate
// instead of recursing forever.
func sanitizeValue(v any, visited map[uintptr]bool) any {
	if v == nil {
		return nil
	}
	if _, err := json.Marshal(v); err == nil {
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		if visited[rv.Pointer()] {
			return cycleMarker
		}
		visited[rv.Pointer()] = true
		return sanitizeValue(rv.Elem().Interface(), visited)

	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return sanitizeValue(rv.Elem().Interface(), visited)

	case reflect.Map:
		if visited[rv.Pointer()] {
			return cycleMarker
		}
		visited[rv.Pointer()] = true
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[stringKey(iter.Key())] = sanitizeValue(iter.Value().Interface(), visited)
		}
		return m

	case reflect.Slice:
		if visited[rv.Pointer()] {
			return cycleMarker
		}
		visited[rv.Pointer()] = true
		return sanitizeElems(rv, visited)

	case reflect.Array:
		return sanitizeElems(rv, visited)

	case reflect.Struct:
		t := rv.Type()
		m := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := fieldName(f)
			if name == "" {
				continue
			}
			m[name] = sanitizeValue(rv.Field(i).Interface(), visited)
		}
		return m

	default:
		// Channels, funcs, complex numbers, NaN/Inf floats and anything
		// else encoding/json rejects become their display string.
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func sanitizeElems(rv reflect.Value, visited map[uintptr]bool) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = sanitizeValue(rv.Index(i).Interface(), visited)
	}
	return out
}

// fieldName mirrors encoding/json's naming: the json tag wins, "-" drops
// the field, otherwise the Go field name is used.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func stringKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

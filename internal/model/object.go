package model

import "strings"

// Object is a single OSM object: a type name followed by its ordered
// fields. For handle-bearing types the first field is the "{uuid}" handle
// and the second is the object name; reference fields point at other
// objects by handle.
type Object struct {
	Type   string
	Fields []string
}

// Field returns field i or the empty string when the object is shorter.
// OSM files routinely omit trailing fields.
func (o *Object) Field(i int) string {
	if i < 0 || i >= len(o.Fields) {
		return ""
	}
	return o.Fields[i]
}

// Handle returns the object's handle, or "" for handle-less objects.
func (o *Object) Handle() string {
	if isHandle(o.Field(0)) {
		return o.Field(0)
	}
	return ""
}

// Name returns the object's name field.
func (o *Object) Name() string {
	if isHandle(o.Field(0)) {
		return o.Field(1)
	}
	return o.Field(0)
}

func isHandle(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

// ReflectionCache remembers the exported fields of component types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// FieldLine is one leaf of a flattened component, e.g. "Position.X".
type FieldLine struct {
	Path  string
	Value string
}

// Describe flattens a component (or a pointer to one) into one line per
// leaf field. Non-struct components produce a single line with an empty
// path. Vectors print as a single leaf.
func Describe(component any) []FieldLine {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return []FieldLine{{Value: "nil"}}
		}
		val = val.Elem()
	}
	var lines []FieldLine
	describeValue("", val, &lines)
	return lines
}

func describeValue(path string, val reflect.Value, out *[]FieldLine) {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			*out = append(*out, FieldLine{Path: path, Value: "nil"})
			return
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		*out = append(*out, FieldLine{Path: path, Value: formatValue(val)})
		return
	}

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		name := field.Name
		if path != "" {
			name = path + "." + name
		}
		describeValue(name, val.Field(field.Index), out)
	}
}

func formatValue(val reflect.Value) string {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.3f", val.Float())
	case reflect.Array:
		if val.Type().Elem().Kind() == reflect.Float32 {
			s := "("
			for i := 0; i < val.Len(); i++ {
				if i > 0 {
					s += ", "
				}
				s += fmt.Sprintf("%.3f", val.Index(i).Float())
			}
			return s + ")"
		}
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	case reflect.Func:
		if val.IsNil() {
			return "nil"
		}
		return "func"
	}
	return fmt.Sprintf("%v", val.Interface())
}

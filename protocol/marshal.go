package protocol

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocolversion"
)

// fieldRange parses a `ver:"min,max"` struct tag into a
// protocolversion.Range. An absent tag means the field is present for
// every version. Either bound may be blank ("764," or ",764") to mean
// unbounded on that side. This is the mechanism behind §4.4: one struct
// field declaration, not defaulted or zero-filled, just skipped entirely
// outside its range.
func fieldRange(tag string) (protocolversion.Range, error) {
	if tag == "" {
		return protocolversion.Always, nil
	}
	parts := strings.SplitN(tag, ",", 2)
	var r protocolversion.Range
	if parts[0] != "" {
		min, err := strconv.Atoi(parts[0])
		if err != nil {
			return r, fmt.Errorf("bad ver tag %q: %w", tag, err)
		}
		r.Min = protocolversion.ProtocolVersion(min)
	}
	if len(parts) == 2 && parts[1] != "" {
		max, err := strconv.Atoi(parts[1])
		if err != nil {
			return r, fmt.Errorf("bad ver tag %q: %w", tag, err)
		}
		r.Max = protocolversion.ProtocolVersion(max)
	}
	return r, nil
}

// Marshal walks p's fields in declaration order and encodes each one whose
// `ver` range contains version, skipping the rest entirely. p must be a
// struct or a pointer to one.
func Marshal(p any, version protocolversion.ProtocolVersion) (ns.ByteArray, error) {
	val := reflect.ValueOf(p)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Marshal: %T is not a struct", p)
	}
	return marshalStruct(val, version)
}

func marshalStruct(val reflect.Value, version protocolversion.ProtocolVersion) (ns.ByteArray, error) {
	typ := val.Type()
	var out ns.ByteArray

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanInterface() {
			continue
		}

		r, err := fieldRange(sf.Tag.Get("ver"))
		if err != nil {
			return nil, err
		}
		if !r.Contains(version) {
			continue
		}

		encoded, err := marshalField(field, version)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		out = append(out, encoded...)
	}

	return out, nil
}

func marshalField(field reflect.Value, version protocolversion.ProtocolVersion) (ns.ByteArray, error) {
	if field.Kind() == reflect.Struct {
		if m, ok := fieldCodec(field); ok {
			return m()
		}
		return marshalStruct(field, version)
	}
	if m, ok := fieldCodec(field); ok {
		return m()
	}
	return nil, fmt.Errorf("type %s has no ToBytes method", field.Type())
}

func fieldCodec(field reflect.Value) (func() (ns.ByteArray, error), bool) {
	if field.CanAddr() {
		if method := field.Addr().MethodByName("ToBytes"); method.IsValid() {
			return func() (ns.ByteArray, error) { return callToBytes(method) }, true
		}
	}
	if method := field.MethodByName("ToBytes"); method.IsValid() {
		return func() (ns.ByteArray, error) { return callToBytes(method) }, true
	}
	return nil, false
}

func callToBytes(method reflect.Value) (ns.ByteArray, error) {
	results := method.Call(nil)
	if !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface().(ns.ByteArray), nil
}

// Unmarshal decodes data into p's fields in declaration order, skipping
// every field whose `ver` range excludes version.
func Unmarshal(data ns.ByteArray, p any, version protocolversion.ProtocolVersion) error {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("Unmarshal: destination must be a non-nil pointer")
	}
	_, err := unmarshalStruct(val.Elem(), data, version)
	return err
}

func unmarshalStruct(val reflect.Value, data ns.ByteArray, version protocolversion.ProtocolVersion) (int, error) {
	typ := val.Type()
	offset := 0

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() {
			continue
		}

		r, err := fieldRange(sf.Tag.Get("ver"))
		if err != nil {
			return offset, err
		}
		if !r.Contains(version) {
			continue
		}

		n, err := unmarshalField(field, data[offset:], version)
		if err != nil {
			return offset, fmt.Errorf("field %s (offset %d): %w", sf.Name, offset, err)
		}
		offset += n
	}

	return offset, nil
}

func unmarshalField(field reflect.Value, data ns.ByteArray, version protocolversion.ProtocolVersion) (int, error) {
	if field.CanAddr() {
		if method := field.Addr().MethodByName("FromBytes"); method.IsValid() {
			return callFromBytes(method, data)
		}
	}
	if field.Kind() == reflect.Struct {
		return unmarshalStruct(field, data, version)
	}
	return 0, fmt.Errorf("type %s has no FromBytes method", field.Type())
}

func callFromBytes(method reflect.Value, data ns.ByteArray) (int, error) {
	results := method.Call([]reflect.Value{reflect.ValueOf(data)})
	if !results[1].IsNil() {
		return 0, results[1].Interface().(error)
	}
	return results[0].Interface().(int), nil
}

package visitor

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/viant/xunsafe"
)

var structTypes = struct {
	sync.RWMutex
	m map[reflect.Type]*xunsafe.Struct
}{m: map[reflect.Type]*xunsafe.Struct{}}

func xStructFor(structType reflect.Type) *xunsafe.Struct {
	structTypes.RLock()
	ret := structTypes.m[structType]
	structTypes.RUnlock()
	if ret != nil {
		return ret
	}
	ret = xunsafe.NewStruct(structType)
	structTypes.Lock()
	structTypes.m[structType] = ret
	structTypes.Unlock()
	return ret
}

// Fields creates a visitor over the exported fields of a struct or a pointer
// to struct, along with the field count. Field names are visited as written
// in the Go type; key conversion is the caller's concern.
func Fields(value interface{}) (Visitor[string, interface{}], int, error) {
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, 0, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, 0, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	xStruct := xStructFor(structType)
	ptr := xunsafe.AsPointer(value)
	visit := func(f func(key string, element interface{}) (bool, error)) error {
		return visitFields(xStruct, structType, ptr, f)
	}
	return visit, len(xStruct.Fields), nil
}

func visitFields(xStruct *xunsafe.Struct, structType reflect.Type, ptr unsafe.Pointer, f func(key string, element interface{}) (bool, error)) error {
	for i := 0; i < len(xStruct.Fields); i++ {
		xField := &xStruct.Fields[i]
		if structType.Field(i).PkgPath != "" { //unexported
			continue
		}
		continueVisit, err := f(xField.Name, xField.Value(ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

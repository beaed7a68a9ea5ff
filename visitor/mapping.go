package visitor

import (
	"fmt"
	"reflect"
)

// Mapping creates a visitor over any mapping value with string keys, along
// with the entry count so callers can size their output. Maps keyed by
// anything other than a string are rejected.
func Mapping(value interface{}) (Visitor[string, interface{}], int, error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return typedMapping(actual), len(actual), nil
	case map[string]string:
		return typedMapping(actual), len(actual), nil
	case map[string]int:
		return typedMapping(actual), len(actual), nil
	case map[string]int64:
		return typedMapping(actual), len(actual), nil
	case map[string]float64:
		return typedMapping(actual), len(actual), nil
	case map[string]bool:
		return typedMapping(actual), len(actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Map {
		return nil, 0, fmt.Errorf("expected mapping, got %T", value)
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, 0, fmt.Errorf("expected string keys, got %s", val.Type().Key())
	}
	return reflectMapping(val), val.Len(), nil
}

func typedMapping[V any](aMap map[string]V) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func reflectMapping(val reflect.Value) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		iter := val.MapRange()
		for iter.Next() {
			continueVisit, err := f(iter.Key().String(), iter.Value().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

package visitor

import (
	"fmt"
	"reflect"
)

// Sequence creates a visitor over any slice or array value, along with its
// length. The key is the element index.
func Sequence(value interface{}) (Visitor[int, interface{}], int, error) {
	switch actual := value.(type) {
	case []interface{}:
		return typedSequence(actual), len(actual), nil
	case []string:
		return typedSequence(actual), len(actual), nil
	case []int:
		return typedSequence(actual), len(actual), nil
	case []int64:
		return typedSequence(actual), len(actual), nil
	case []float64:
		return typedSequence(actual), len(actual), nil
	case []bool:
		return typedSequence(actual), len(actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, 0, fmt.Errorf("expected sequence, got %T", value)
	}
	return reflectSequence(val), val.Len(), nil
}

func typedSequence[E any](slice []E) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

func reflectSequence(val reflect.Value) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i := 0; i < val.Len(); i++ {
			continueVisit, err := f(i, val.Index(i).Interface())
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

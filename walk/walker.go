package walk

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"

	"github.com/docrow/tablemap/visitor"
	"github.com/woodsbury/decimal128"
)

// DefaultMaxDepth bounds recursion when no explicit limit is configured.
const DefaultMaxDepth = 64

// StructuralError reports input the walker cannot traverse: a cyclic
// structure or nesting beyond the configured depth limit.
type StructuralError struct {
	Path   string
	Reason string
}

// Error implements error.
func (e *StructuralError) Error() string {
	if e.Path == "" {
		return "walk: " + e.Reason
	}
	return fmt.Sprintf("walk: %s at %s", e.Reason, e.Path)
}

// Rename converts a single mapping key while a structure is walked.
type Rename func(name string) (string, error)

// Walker rebuilds a document tree with every mapping key passed through a
// rename function. Leaf values are classified by KindOf and pass through
// untouched, except big numbers when the string conversion is enabled.
// A Walker is immutable after construction and safe for concurrent use.
type Walker struct {
	rename            Rename
	bigNumberAsString bool
	maxDepth          int
}

// New creates a walker. A nil rename keeps keys as they are; a non-positive
// maxDepth falls back to DefaultMaxDepth.
func New(rename Rename, bigNumberAsString bool, maxDepth int) *Walker {
	if rename == nil {
		rename = func(name string) (string, error) { return name, nil }
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Walker{rename: rename, bigNumberAsString: bigNumberAsString, maxDepth: maxDepth}
}

// Shape returns a copy of value with the same structure and converted mapping
// keys. Non-structural values come back as they are. The result is built
// locally; on error nothing partial escapes.
func (w *Walker) Shape(value interface{}) (interface{}, error) {
	return w.shape(value, "", 0, map[uintptr]bool{})
}

// Flatten produces the positional bind parameters for a write: the values of
// a single-level mapping ordered by lexicographically sorted key, each
// structural value first reshaped. A nil input yields an empty sequence and a
// non-structural input a single-element one, as it is.
func (w *Walker) Flatten(value interface{}) ([]interface{}, error) {
	switch KindOf(value) {
	case KindNull:
		return []interface{}{}, nil
	case KindMapping:
		visit, size, err := mappingVisitor(value)
		if err != nil {
			return nil, err
		}
		type entry struct {
			key   string
			value interface{}
		}
		entries := make([]entry, 0, size)
		err = visit(func(key string, element interface{}) (bool, error) {
			entries = append(entries, entry{key: key, value: element})
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		out := make([]interface{}, 0, len(entries))
		for _, item := range entries {
			switch KindOf(item.value) {
			case KindMapping, KindSequence:
				converted, err := w.Shape(item.value)
				if err != nil {
					return nil, err
				}
				out = append(out, converted)
			case KindBigNumber:
				out = append(out, w.bigNumber(item.value))
			default:
				out = append(out, item.value)
			}
		}
		return out, nil
	case KindSequence:
		shaped, err := w.Shape(value)
		if err != nil {
			return nil, err
		}
		return shaped.([]interface{}), nil
	default:
		return []interface{}{value}, nil
	}
}

func (w *Walker) shape(value interface{}, path string, depth int, seen map[uintptr]bool) (interface{}, error) {
	if depth > w.maxDepth {
		return nil, &StructuralError{Path: path, Reason: fmt.Sprintf("max depth %d exceeded", w.maxDepth)}
	}
	switch KindOf(value) {
	case KindNull:
		return nil, nil
	case KindTemporal, KindScalar:
		return value, nil
	case KindBigNumber:
		return w.bigNumber(value), nil
	case KindSequence:
		return w.shapeSequence(value, path, depth, seen)
	case KindMapping:
		return w.shapeMapping(value, path, depth, seen)
	}
	return value, nil
}

func (w *Walker) shapeSequence(value interface{}, path string, depth int, seen map[uintptr]bool) (interface{}, error) {
	ptr, tracked := pointerOf(value)
	if tracked {
		if seen[ptr] {
			return nil, &StructuralError{Path: path, Reason: "cycle detected"}
		}
		seen[ptr] = true
		defer delete(seen, ptr)
	}
	visit, size, err := visitor.Sequence(value)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, size)
	err = visit(func(index int, element interface{}) (bool, error) {
		converted, err := w.shape(element, childPath(path, strconv.Itoa(index)), depth+1, seen)
		if err != nil {
			return false, err
		}
		out = append(out, converted)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (w *Walker) shapeMapping(value interface{}, path string, depth int, seen map[uintptr]bool) (interface{}, error) {
	ptr, tracked := pointerOf(value)
	if tracked {
		if seen[ptr] {
			return nil, &StructuralError{Path: path, Reason: "cycle detected"}
		}
		seen[ptr] = true
		defer delete(seen, ptr)
	}
	visit, size, err := mappingVisitor(value)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, size)
	err = visit(func(key string, element interface{}) (bool, error) {
		renamed, err := w.rename(key)
		if err != nil {
			return false, err
		}
		converted, err := w.shape(element, childPath(path, key), depth+1, seen)
		if err != nil {
			return false, err
		}
		out[renamed] = converted
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (w *Walker) bigNumber(value interface{}) interface{} {
	if !w.bigNumberAsString {
		return value
	}
	switch actual := value.(type) {
	case *big.Int:
		return actual.String()
	case big.Int:
		return actual.String()
	case decimal128.Decimal:
		return actual.String()
	case *decimal128.Decimal:
		return actual.String()
	}
	return value
}

func mappingVisitor(value interface{}) (visitor.Visitor[string, interface{}], int, error) {
	rType := reflect.TypeOf(value)
	kind := rType.Kind()
	if kind == reflect.Ptr {
		kind = rType.Elem().Kind()
	}
	if kind == reflect.Struct {
		return visitor.Fields(value)
	}
	return visitor.Mapping(value)
}

func pointerOf(value interface{}) (uintptr, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

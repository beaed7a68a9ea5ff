// Package tablemap provides the table mapping strategies a document mapper
// uses to translate rows between the storage column naming convention and
// the in-memory document property convention. A strategy converts identifier
// casing in both directions and normalises nested values (temporal and
// big-number leaves, nested mappings, sequences) on the way through.
package tablemap

import (
	"fmt"

	"github.com/docrow/tablemap/casing"
	"github.com/docrow/tablemap/walk"
)

// Strategy translates between column names and property names and reshapes
// documents accordingly. Implementations are immutable after construction and
// safe for concurrent use; the document mapper selects one per model at
// registration time.
type Strategy interface {
	// PropertyNameToColumnName converts a document property name into the
	// corresponding column name.
	PropertyNameToColumnName(property string) (string, error)
	// ColumnNameToPropertyName converts a column name into the corresponding
	// document property name.
	ColumnNameToPropertyName(column string) (string, error)
	// ToStorageRow converts a document into its row-shaped structure with
	// column-named keys.
	ToStorageRow(document interface{}) (interface{}, error)
	// ToDocument converts a row-shaped structure into a document with
	// property-named keys.
	ToDocument(row interface{}) (interface{}, error)
	// ToParameterList flattens a document into positional bind parameters for
	// a write, ordered by sorted property name.
	ToParameterList(document interface{}) ([]interface{}, error)
	// CreateDocument returns a fresh, empty document.
	CreateDocument() Document
}

type mapping struct {
	toColumn   func(name string) string
	toProperty func(name string) string
	toStorage  *walk.Walker
	toDoc      *walk.Walker
}

// NewDefault returns the identity strategy: property and column names match,
// values are still classified and nested structures still rebuilt.
func NewDefault(opts ...Option) Strategy {
	s := newSettings(opts)
	identity := func(name string) string { return name }
	return newMapping(identity, identity, s)
}

// NewUnderscoreToCamelCase returns the strategy mapping snake_case columns to
// camelCase properties. Column names that collide with a reserved word get a
// trailing underscore appended on the way to storage and stripped on the way
// back.
func NewUnderscoreToCamelCase(opts ...Option) Strategy {
	s := newSettings(opts)
	toColumn := func(name string) string { return s.reserved.Escape(casing.ToUnderscore(name)) }
	toProperty := func(name string) string { return casing.ToLowerCamel(s.reserved.Unescape(name)) }
	return newMapping(toColumn, toProperty, s)
}

// NewUnderscoreToPascalCase returns the strategy mapping snake_case columns
// to PascalCase properties.
func NewUnderscoreToPascalCase(opts ...Option) Strategy {
	s := newSettings(opts)
	toColumn := func(name string) string { return s.reserved.Escape(casing.ToUnderscore(name)) }
	toProperty := func(name string) string { return casing.ToUpperCamel(s.reserved.Unescape(name)) }
	return newMapping(toColumn, toProperty, s)
}

func newMapping(toColumn, toProperty func(string) string, s *settings) *mapping {
	return &mapping{
		toColumn:   toColumn,
		toProperty: toProperty,
		toStorage:  walk.New(renameFunc(toColumn), s.bigNumberAsString, s.maxDepth),
		toDoc:      walk.New(renameFunc(toProperty), s.bigNumberAsString, s.maxDepth),
	}
}

func renameFunc(convert func(string) string) walk.Rename {
	return func(name string) (string, error) {
		if name == "" {
			return "", fmt.Errorf("mapping key: %w", ErrInvalidIdentifier)
		}
		return convert(name), nil
	}
}

func (m *mapping) PropertyNameToColumnName(property string) (string, error) {
	if property == "" {
		return "", fmt.Errorf("property name: %w", ErrInvalidIdentifier)
	}
	return m.toColumn(property), nil
}

func (m *mapping) ColumnNameToPropertyName(column string) (string, error) {
	if column == "" {
		return "", fmt.Errorf("column name: %w", ErrInvalidIdentifier)
	}
	return m.toProperty(column), nil
}

func (m *mapping) ToStorageRow(document interface{}) (interface{}, error) {
	return m.toStorage.Shape(document)
}

func (m *mapping) ToDocument(row interface{}) (interface{}, error) {
	return m.toDoc.Shape(row)
}

func (m *mapping) ToParameterList(document interface{}) ([]interface{}, error) {
	return m.toStorage.Flatten(document)
}

func (m *mapping) CreateDocument() Document {
	return Document{}
}

package tablemap

import (
	"fmt"
	"sort"

	"github.com/francoispqt/gojay"
)

// Document is the in-memory representation of a single stored row.
type Document map[string]interface{}

// MarshalJSONObject encodes the document with deterministic key order.
func (d Document) MarshalJSONObject(enc *gojay.Encoder) {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		enc.AddInterfaceKey(key, d[key])
	}
}

// IsNil reports whether the document should encode as null.
func (d Document) IsNil() bool {
	return d == nil
}

// UnmarshalJSONObject decodes a single object key into the document. The
// receiver must be allocated; a zero-value document cannot take entries.
func (d Document) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	if d == nil {
		return fmt.Errorf("tablemap: cannot unmarshal into a nil document")
	}
	var value interface{}
	if err := dec.AddInterface(&value); err != nil {
		return err
	}
	d[key] = value
	return nil
}

// NKeys instructs the decoder to accept any number of keys.
func (d Document) NKeys() int {
	return 0
}

// MarshalJSON encodes the document as a JSON object, e.g. for storage in a
// text column.
func (d Document) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(d)
}

// UnmarshalJSON decodes a JSON object into the document.
func (d Document) UnmarshalJSON(data []byte) error {
	return gojay.UnmarshalJSONObject(data, d)
}

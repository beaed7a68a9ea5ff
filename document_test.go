package tablemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentMarshalJSON(t *testing.T) {
	document := Document{
		"userId": 1,
		"email":  "e@x",
		"active": true,
	}
	data, err := document.MarshalJSON()
	assert.Nil(t, err)
	//keys are sorted for a deterministic form
	assert.EqualValues(t, `{"active":true,"email":"e@x","userId":1}`, string(data))
}

func TestDocumentUnmarshalJSON(t *testing.T) {
	document := Document{}
	err := document.UnmarshalJSON([]byte(`{"userId":1,"email":"e@x"}`))
	assert.Nil(t, err)
	assert.EqualValues(t, "e@x", document["email"])
	assert.EqualValues(t, 1, document["userId"])
}

func TestDocumentUnmarshalJSONNil(t *testing.T) {
	var document Document
	err := document.UnmarshalJSON([]byte(`{"userId":1}`))
	assert.NotNil(t, err)
}

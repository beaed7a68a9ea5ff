package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservedWords(t *testing.T) {
	words := NewReservedWords("select", "FROM")

	assert.True(t, words.Contains("select"))
	assert.True(t, words.Contains("SELECT"))
	assert.True(t, words.Contains("from"))
	assert.False(t, words.Contains("user"))
	assert.EqualValues(t, 2, words.Len())
}

func TestEscape(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      string
	}{
		{
			description: "reserved word gets trailing underscore",
			name:        "select",
			expect:      "select_",
		},
		{
			description: "plain name unchanged",
			name:        "user_id",
			expect:      "user_id",
		},
		{
			description: "reserved word in the middle unchanged",
			name:        "select_count",
			expect:      "select_count",
		},
	}

	for _, testCase := range testCases {
		actual := CQLKeywords.Escape(testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestUnescape(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      string
	}{
		{
			description: "escaped reserved word",
			name:        "select_",
			expect:      "select",
		},
		{
			description: "trailing underscore on a plain name stays",
			name:        "user_",
			expect:      "user_",
		},
		{
			description: "no trailing underscore",
			name:        "select",
			expect:      "select",
		},
	}

	for _, testCase := range testCases {
		actual := CQLKeywords.Unescape(testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestCQLKeywords(t *testing.T) {
	assert.EqualValues(t, 58, CQLKeywords.Len())
	for _, word := range []string{"select", "table", "where", "batch", "keyspace"} {
		assert.True(t, CQLKeywords.Contains(word), word)
	}
}

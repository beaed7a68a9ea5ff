package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      *Tag
		hasError    bool
	}{
		{
			description: "bare strategy element",
			text:        "underscore_to_camelcase",
			expect:      &Tag{Strategy: "underscore_to_camelcase"},
		},
		{
			description: "key value pairs",
			text:        "strategy=underscore_to_pascalcase,bignumber=string,maxdepth=32",
			expect:      &Tag{Strategy: "underscore_to_pascalcase", BigNumber: "string", MaxDepth: 32},
		},
		{
			description: "bare element with pair",
			text:        "underscore_to_camelcase,bignumber=string",
			expect:      &Tag{Strategy: "underscore_to_camelcase", BigNumber: "string"},
		},
		{
			description: "quoted value",
			text:        "strategy='underscore_to_camelcase'",
			expect:      &Tag{Strategy: "underscore_to_camelcase"},
		},
		{
			description: "empty tag",
			text:        "",
			expect:      &Tag{},
		},
		{
			description: "unknown key",
			text:        "colour=blue",
			hasError:    true,
		},
		{
			description: "invalid depth",
			text:        "maxdepth=everest",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.text)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

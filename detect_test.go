package tablemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectStrategy(t *testing.T) {
	var testCases = []struct {
		description string
		columns     []string
		expect      string
	}{
		{
			description: "snake case columns",
			columns:     []string{"user_id", "first_name"},
			expect:      StrategyUnderscoreToCamelCase,
		},
		{
			description: "pascal case columns",
			columns:     []string{"UserId", "FirstName"},
			expect:      StrategyUnderscoreToPascalCase,
		},
		{
			description: "camel case columns need no conversion",
			columns:     []string{"userId", "firstName"},
			expect:      StrategyDefault,
		},
	}

	for _, testCase := range testCases {
		actual := DetectStrategy(testCase.columns...)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

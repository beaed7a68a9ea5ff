package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUnderscore(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      string
	}{
		{
			description: "camel case",
			name:        "userId",
			expect:      "user_id",
		},
		{
			description: "pascal case",
			name:        "UserId",
			expect:      "user_id",
		},
		{
			description: "trailing acronym",
			name:        "userID",
			expect:      "user_id",
		},
		{
			description: "leading acronym",
			name:        "HTMLElement",
			expect:      "html_element",
		},
		{
			description: "single letter",
			name:        "A",
			expect:      "a",
		},
		{
			description: "already lower",
			name:        "username",
			expect:      "username",
		},
		{
			description: "multi segment",
			name:        "homeAddressStreetName",
			expect:      "home_address_street_name",
		},
		{
			description: "empty",
			name:        "",
			expect:      "",
		},
	}

	for _, testCase := range testCases {
		actual := ToUnderscore(testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestToLowerCamel(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      string
	}{
		{
			description: "two segments",
			name:        "user_id",
			expect:      "userId",
		},
		{
			description: "three segments",
			name:        "home_address_street",
			expect:      "homeAddressStreet",
		},
		{
			description: "single segment",
			name:        "user",
			expect:      "user",
		},
		{
			description: "leading and doubled underscores skip empty segments",
			name:        "__user__id",
			expect:      "userId",
		},
		{
			description: "trailing underscore",
			name:        "user_id_",
			expect:      "userId",
		},
		{
			description: "empty",
			name:        "",
			expect:      "",
		},
	}

	for _, testCase := range testCases {
		actual := ToLowerCamel(testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestToUpperCamel(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      string
	}{
		{
			description: "two segments",
			name:        "user_id",
			expect:      "UserId",
		},
		{
			description: "single segment",
			name:        "user",
			expect:      "User",
		},
		{
			description: "leading underscore",
			name:        "_user",
			expect:      "User",
		},
	}

	for _, testCase := range testCases {
		actual := ToUpperCamel(testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"userId", "homeAddressStreetName", "user"} {
		assert.EqualValues(t, name, ToLowerCamel(ToUnderscore(name)), name)
	}
	for _, name := range []string{"UserId", "HomeAddressStreetName", "User"} {
		assert.EqualValues(t, name, ToUpperCamel(ToUnderscore(name)), name)
	}
}

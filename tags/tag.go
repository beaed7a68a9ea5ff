package tags

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// TagName is the struct tag inspected for per-model mapping configuration.
const TagName = "tablemap"

// BigNumberString requests decimal-string conversion of big-number leaves.
const BigNumberString = "string"

// Tag holds the parsed tablemap tag values.
type Tag struct {
	Strategy  string
	BigNumber string
	MaxDepth  int
}

// Parse lexes a tag value into a Tag. A bare element selects the strategy:
// `underscore_to_camelcase,bignumber=string,maxdepth=32`.
func Parse(text string) (*Tag, error) {
	ret := &Tag{}
	cursor := parsly.NewCursor("", []byte(text), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := ret.update(key, value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "strategy":
		t.Strategy = value
	case "bignumber":
		t.BigNumber = value
	case "maxdepth":
		depth, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("tablemap tag: maxdepth %q: %w", value, err)
		}
		t.MaxDepth = depth
	default:
		if value == "" { //bare element selects the strategy
			t.Strategy = key
			return nil
		}
		return fmt.Errorf("tablemap tag: unknown key %q", key)
	}
	return nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	eqIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte("="))
	comaIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte(","))
	hasEq := eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex)

	if hasEq {
		match := cursor.MatchAny(eqTerminatorMatcher)
		if match.Code == eqTerminatorToken {
			key = match.Text(cursor)
			key = key[:len(key)-1] //exclude =
		}
		match = cursor.MatchAny(quotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case quotedToken:
			value = strings.Trim(match.Text(cursor), "'")
			cursor.MatchAny(comaTerminatorMatcher)
		case comaTerminatorToken:
			value = match.Text(cursor)
			value = value[:len(value)-1] //exclude ,
		default:
			if cursor.Pos < len(cursor.Input) {
				value = string(cursor.Input[cursor.Pos:])
				cursor.Pos = len(cursor.Input)
			}
		}
		return strings.TrimSpace(key), strings.TrimSpace(value)
	}

	match := cursor.MatchAny(comaTerminatorMatcher)
	if match.Code == comaTerminatorToken {
		key = match.Text(cursor)
		key = key[:len(key)-1] //exclude ,
	} else if cursor.Pos < len(cursor.Input) {
		key = string(cursor.Input[cursor.Pos:])
		cursor.Pos = len(cursor.Input)
	}
	return strings.TrimSpace(key), ""
}

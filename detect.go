package tablemap

import "github.com/viant/tagly/format/text"

// DetectStrategy samples stored column names and proposes the strategy name
// matching their case format. Snake case columns map to the camel case
// strategy; names already pascal cased suggest the pascal variant; anything
// else needs no conversion.
func DetectStrategy(columnNames ...string) string {
	switch text.DetectCaseFormat(columnNames...) {
	case text.CaseFormatLowerUnderscore, text.CaseFormatUpperUnderscore:
		return StrategyUnderscoreToCamelCase
	case text.CaseFormatUpperCamel:
		return StrategyUnderscoreToPascalCase
	default:
		return StrategyDefault
	}
}

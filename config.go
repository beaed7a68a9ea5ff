package tablemap

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/docrow/tablemap/tags"
)

// Strategy names accepted by New and by the tablemap struct tag.
const (
	StrategyDefault                = "default"
	StrategyUnderscoreToCamelCase  = "underscore_to_camelcase"
	StrategyUnderscoreToPascalCase = "underscore_to_pascalcase"
)

// Config carries the per-model mapping configuration the document mapper
// supplies at model registration time.
type Config struct {
	// Strategy selects the concrete mapping by name; empty means default.
	Strategy string
	// BigNumberAsString converts big-number leaves to decimal strings.
	BigNumberAsString bool
	// MaxDepth bounds walker recursion; zero keeps the package default.
	MaxDepth int
}

// Validate checks that the configuration selects a known strategy and a sane
// depth bound.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Strategy,
			validation.In(StrategyDefault, StrategyUnderscoreToCamelCase, StrategyUnderscoreToPascalCase)),
		validation.Field(&c.MaxDepth, validation.Min(0)),
	)
}

// New selects and builds the concrete strategy the configuration names.
func New(config Config) (Strategy, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("tablemap config: %w", err)
	}
	var opts Options
	if config.BigNumberAsString {
		opts = append(opts, WithBigNumberAsString())
	}
	if config.MaxDepth > 0 {
		opts = append(opts, WithMaxDepth(config.MaxDepth))
	}
	switch config.Strategy {
	case StrategyUnderscoreToCamelCase:
		return NewUnderscoreToCamelCase(opts...), nil
	case StrategyUnderscoreToPascalCase:
		return NewUnderscoreToPascalCase(opts...), nil
	default:
		return NewDefault(opts...), nil
	}
}

// ParseConfig builds a Config from the tablemap struct tag form, e.g.
// `strategy=underscore_to_camelcase,bignumber=string,maxdepth=32`.
func ParseConfig(text string) (Config, error) {
	tag, err := tags.Parse(text)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Strategy:          tag.Strategy,
		BigNumberAsString: tag.BigNumber == tags.BigNumberString,
		MaxDepth:          tag.MaxDepth,
	}, nil
}

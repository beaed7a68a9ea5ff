package tablemap

import (
	"github.com/docrow/tablemap/casing"
	"github.com/docrow/tablemap/walk"
)

type settings struct {
	reserved          *casing.ReservedWords
	bigNumberAsString bool
	maxDepth          int
}

//Option strategy option
type Option func(s *settings)

//Options represents strategy options
type Options []Option

//Apply applies options
func (o Options) Apply(s *settings) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(s)
	}
}

//WithBigNumberAsString converts big-number leaves to their decimal string form
func WithBigNumberAsString() Option {
	return func(s *settings) {
		s.bigNumberAsString = true
	}
}

//WithMaxDepth bounds walker recursion depth
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.maxDepth = depth
	}
}

//WithReservedWords overrides the reserved word set
func WithReservedWords(words *casing.ReservedWords) Option {
	return func(s *settings) {
		s.reserved = words
	}
}

func newSettings(opts Options) *settings {
	s := &settings{reserved: casing.CQLKeywords, maxDepth: walk.DefaultMaxDepth}
	opts.Apply(s)
	return s
}

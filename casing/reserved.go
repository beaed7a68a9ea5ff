package casing

import "strings"

// ReservedWords is an immutable, case-insensitive set of identifiers that
// collide with storage-engine keywords. A set is built once per strategy and
// never mutated afterwards, so it is safe for concurrent use.
type ReservedWords struct {
	words map[string]struct{}
}

// NewReservedWords builds a set from the given words.
func NewReservedWords(words ...string) *ReservedWords {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[strings.ToLower(word)] = struct{}{}
	}
	return &ReservedWords{words: set}
}

// Contains reports whether name matches a reserved word, ignoring case.
func (r *ReservedWords) Contains(name string) bool {
	_, ok := r.words[strings.ToLower(name)]
	return ok
}

// Escape appends a trailing underscore when name collides with a reserved
// word, leaving any other name untouched.
func (r *ReservedWords) Escape(name string) string {
	if r.Contains(name) {
		return name + "_"
	}
	return name
}

// Unescape strips the trailing underscore introduced by Escape. Names that do
// not end in an underscore, or whose remainder is not reserved, come back
// unchanged.
func (r *ReservedWords) Unescape(name string) string {
	if strings.HasSuffix(name, "_") && r.Contains(name[:len(name)-1]) {
		return name[:len(name)-1]
	}
	return name
}

// Len returns the number of words in the set.
func (r *ReservedWords) Len() int {
	return len(r.words)
}

// CQLKeywords holds the CQL reserved keywords that cannot be used unescaped
// as column names.
var CQLKeywords = NewReservedWords(
	"add", "allow", "alter", "and", "apply", "asc", "authorize", "batch",
	"begin", "by", "columnfamily", "create", "delete", "desc", "describe",
	"drop", "entries", "execute", "from", "full", "grant", "if", "in",
	"index", "infinity", "insert", "into", "is", "keyspace", "limit",
	"materialized", "modify", "nan", "norecursive", "not", "null", "of",
	"on", "or", "order", "primary", "rename", "replace", "revoke", "schema",
	"select", "set", "table", "to", "token", "truncate", "unlogged",
	"update", "use", "using", "view", "where", "with",
)

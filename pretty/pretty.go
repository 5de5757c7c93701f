package pretty

import "strings"

// Rule pairs a long path prefix with the short alias expected to follow it.
// A rule fires at a position only when the prefix is immediately followed by
// the alias, so "sync." never eats into an unrelated "sync.Once" entry aliased
// to something else.
type Rule struct {
	Prefix string `yaml:"prefix"`
	Alias  string `yaml:"alias"`
}

// Prettifier rewrites raw fully-qualified type names using an ordered rule
// list. Rules are tried in declaration order; the first rule to fire at a
// position wins. Duplicate prefixes in the list are deliberate: they resolve
// to the same short form in practice.
type Prettifier struct {
	rules []Rule
}

// New builds a Prettifier from an ordered rule list.
func New(rules ...Rule) *Prettifier {
	return &Prettifier{rules: rules}
}

// Default returns a Prettifier over DefaultRules.
func Default() *Prettifier {
	return New(DefaultRules()...)
}

// Apply shortens a raw type name. Every occurrence of a rule prefix that is
// immediately followed by its alias is stripped, so instantiation arguments
// inside generic brackets shorten too. Unmatched input is returned unchanged,
// backed by the same string; a single leading match returns a substring of the
// input without allocating.
func (p *Prettifier) Apply(name string) string {
	for _, r := range p.rules {
		name = stripAll(name, r)
	}

	return name
}

func stripAll(name string, r Rule) string {
	if r.Prefix == "" {
		return name
	}

	i := matchFrom(name, 0, r)
	if i < 0 {
		return name
	}

	// Leading occurrence with no further matches stays allocation-free.
	if i == 0 {
		rest := name[len(r.Prefix):]
		if matchFrom(rest, len(r.Alias), r) < 0 {
			return rest
		}
	}

	var b strings.Builder

	b.Grow(len(name))

	pos := 0
	for i >= 0 {
		b.WriteString(name[pos:i])
		pos = i + len(r.Prefix)
		i = matchFrom(name, pos+len(r.Alias), r)
	}

	b.WriteString(name[pos:])

	return b.String()
}

// matchFrom finds the first position at or after start where the rule fires.
func matchFrom(name string, start int, r Rule) int {
	if start > len(name) {
		return -1
	}

	for {
		i := strings.Index(name[start:], r.Prefix)
		if i < 0 {
			return -1
		}

		i += start
		if strings.HasPrefix(name[i+len(r.Prefix):], r.Alias) {
			return i
		}

		start = i + 1
	}
}

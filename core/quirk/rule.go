// Package quirk implements typing-quirk text transformation: named
// characters with ordered chains of regular-expression substitution rules
// applied forward ("quirkify") or inverse ("dequirkify").
package quirk

// Rule is one substitution step: a regular expression to search for and a
// template to replace every match with. The template may reference capture
// groups from the pattern using $1-style expansions.
//
// Neither field is validated at construction. A malformed pattern is only
// detected when the rule is applied, at which point compilation fails and
// the error is returned by Quirkify or Dequirkify.
type Rule struct {
	pattern     string
	replacement string
}

// NewRule creates a rule from a search pattern and a replacement template.
func NewRule(pattern, replacement string) Rule {
	return Rule{pattern: pattern, replacement: replacement}
}

// Pattern returns the search pattern.
func (r Rule) Pattern() string { return r.pattern }

// Replacement returns the replacement template.
func (r Rule) Replacement() string { return r.replacement }

// SetPattern replaces the search pattern.
func (r *Rule) SetPattern(pattern string) { r.pattern = pattern }

// SetReplacement replaces the replacement template.
func (r *Rule) SetReplacement(replacement string) { r.replacement = replacement }

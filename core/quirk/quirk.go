package quirk

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Quirk is one character's text-transformation profile: display metadata
// (name, color, aliases) plus two independent ordered rule chains. The
// forward chain styles plain text; the inverse chain removes the styling.
// The chains are authored separately and are not guaranteed to be inverses
// of one another.
type Quirk struct {
	name    string
	color   string
	aliases []string
	forward []Rule
	inverse []Rule
}

// NewQuirk creates an empty quirk. All fields are populated through the
// setter and adder methods.
func NewQuirk() *Quirk {
	return &Quirk{}
}

// New creates a fully populated quirk in one call. When verbose is true, a
// structured summary of the constructed quirk is logged at info level.
func New(name, color string, aliases []string, forward, inverse []Rule, verbose bool) *Quirk {
	q := NewQuirk()
	q.SetName(name)
	q.SetColor(color)
	q.AddAliases(aliases...)
	q.AddForwardRules(forward...)
	q.AddInverseRules(inverse...)
	if verbose {
		slog.Info("quirk_created",
			"name", name,
			"color", color,
			"aliases", strings.Join(aliases, " or "),
			"forward_rules", summarizeRules(forward),
			"inverse_rules", summarizeRules(inverse),
		)
	}
	return q
}

func summarizeRules(rules []Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.Pattern() + " to " + r.Replacement()
	}
	return strings.Join(parts, ", ")
}

// SetName sets the character name. The name has no effect on transformation;
// it is the key used when quirks are folded into a name-keyed map.
func (q *Quirk) SetName(name string) { q.name = name }

// SetColor sets the display color. The value is free-form; no format is
// enforced.
func (q *Quirk) SetColor(color string) { q.color = color }

// AddAliases appends aliases after any existing ones, preserving argument
// order. Aliases are display-only metadata.
func (q *Quirk) AddAliases(aliases ...string) {
	q.aliases = append(q.aliases, aliases...)
}

// AddForwardRules appends rules to the forward (quirkify) chain. Existing
// rules are never replaced or reordered.
func (q *Quirk) AddForwardRules(rules ...Rule) {
	q.forward = append(q.forward, rules...)
}

// AddInverseRules appends rules to the inverse (dequirkify) chain.
func (q *Quirk) AddInverseRules(rules ...Rule) {
	q.inverse = append(q.inverse, rules...)
}

// Name returns the character name.
func (q *Quirk) Name() string { return q.name }

// Color returns the display color.
func (q *Quirk) Color() string { return q.color }

// Aliases returns a copy of the alias list.
func (q *Quirk) Aliases() []string { return slices.Clone(q.aliases) }

// ForwardRules returns a copy of the forward rule chain.
func (q *Quirk) ForwardRules() []Rule { return slices.Clone(q.forward) }

// InverseRules returns a copy of the inverse rule chain.
func (q *Quirk) InverseRules() []Rule { return slices.Clone(q.inverse) }

// Quirkify applies the forward rule chain to text. Rules apply in list
// order; each rule performs a global substitution over the output of the
// previous one, so later rules see (and may clean up) the artifacts of
// earlier ones. An empty chain returns the input unchanged.
//
// A rule whose pattern does not compile stops the chain and returns the
// compilation error; the partially transformed text is discarded.
func (q *Quirk) Quirkify(text string) (string, error) {
	return applyChain(q.forward, text)
}

// Dequirkify applies the inverse rule chain to text, under the same
// contract as Quirkify.
func (q *Quirk) Dequirkify(text string) (string, error) {
	return applyChain(q.inverse, text)
}

func applyChain(rules []Rule, text string) (string, error) {
	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern())
		if err != nil {
			return "", fmt.Errorf("compiling rule %d pattern %q: %w", i, rule.Pattern(), err)
		}
		text = re.ReplaceAllString(text, rule.Replacement())
	}
	return text, nil
}

// MapByName folds quirks into a name-keyed map. When several quirks share a
// name, the last one in list order wins.
func MapByName(quirks []*Quirk) map[string]*Quirk {
	m := make(map[string]*Quirk, len(quirks))
	for _, q := range quirks {
		m[q.Name()] = q
	}
	return m
}

// Package quirkml implements the XML document format for typing quirks.
//
// A document holds one <document> root with one <rule> element per quirk.
// Each <rule> carries required name and color attributes and contains
// <alias value=""/> children plus <quirk from="" to=""/> (forward) and
// <dequirk from="" to=""/> (inverse) rule children. Sibling order is
// significant and survives a parse/serialize round trip.
package quirkml

import (
	"bytes"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/hstranslate/quirk/core/errors"
	"github.com/hstranslate/quirk/core/quirk"
)

// Rule entries are matched by tag anywhere in the tree, not by strict
// parent-child position.
var (
	ruleEntryQuery = xpath.MustCompile("//rule")
	aliasQuery     = xpath.MustCompile(".//alias")
	forwardQuery   = xpath.MustCompile(".//quirk")
	inverseQuery   = xpath.MustCompile(".//dequirk")
)

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// Verbose logs a structured summary of each constructed quirk.
	Verbose bool
}

// Parse parses a quirk document into an ordered list of quirks, in document
// order of rule entries. Malformed XML yields a ParseError; a rule entry
// lacking a required attribute yields a MissingFieldError. A failed parse
// yields no partial result.
func Parse(data []byte) ([]*quirk.Quirk, error) {
	return ParseWith(data, ParseOptions{})
}

// ParseWith is Parse with explicit options.
func ParseWith(data []byte, opts ParseOptions) ([]*quirk.Quirk, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParse("XML", "", err.Error())
	}

	quirks := []*quirk.Quirk{}
	for _, entry := range xmlquery.QuerySelectorAll(doc, ruleEntryQuery) {
		name, ok := lookupAttr(entry, "name")
		if !ok {
			return nil, errors.NewMissingField("rule", "name")
		}
		color, ok := lookupAttr(entry, "color")
		if !ok {
			return nil, errors.NewMissingField("rule", "color")
		}

		var aliases []string
		for _, el := range xmlquery.QuerySelectorAll(entry, aliasQuery) {
			value, ok := lookupAttr(el, "value")
			if !ok {
				return nil, errors.NewMissingField("alias", "value")
			}
			aliases = append(aliases, value)
		}

		forward, err := collectRules(entry, forwardQuery, "quirk")
		if err != nil {
			return nil, err
		}
		inverse, err := collectRules(entry, inverseQuery, "dequirk")
		if err != nil {
			return nil, err
		}

		quirks = append(quirks, quirk.New(name, color, aliases, forward, inverse, opts.Verbose))
	}
	return quirks, nil
}

// ParseMap parses a quirk document into a name-keyed map. When several rule
// entries share a name, the last one in document order wins.
func ParseMap(data []byte) (map[string]*quirk.Quirk, error) {
	return ParseMapWith(data, ParseOptions{})
}

// ParseMapWith is ParseMap with explicit options.
func ParseMapWith(data []byte, opts ParseOptions) (map[string]*quirk.Quirk, error) {
	quirks, err := ParseWith(data, opts)
	if err != nil {
		return nil, err
	}
	return quirk.MapByName(quirks), nil
}

func collectRules(entry *xmlquery.Node, query *xpath.Expr, element string) ([]quirk.Rule, error) {
	var rules []quirk.Rule
	for _, el := range xmlquery.QuerySelectorAll(entry, query) {
		from, ok := lookupAttr(el, "from")
		if !ok {
			return nil, errors.NewMissingField(element, "from")
		}
		to, ok := lookupAttr(el, "to")
		if !ok {
			return nil, errors.NewMissingField(element, "to")
		}
		rules = append(rules, quirk.NewRule(from, to))
	}
	return rules, nil
}

// lookupAttr distinguishes an absent attribute from an empty one.
func lookupAttr(n *xmlquery.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

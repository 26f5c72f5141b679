// Package quirkdef parses the plain-text quirk definition format, a
// hand-editable alternative to the XML document format. Both compile to the
// same quirk model.
//
// Example:
//
//	# comments run to end of line
//	quirk "Sollux Captor" color "#a1a100" {
//	    alias "TA" "twinArmageddons"
//	    sub "s" -> "2"
//	    sub "S" -> "2"
//	    unsub "2" -> "s"
//	}
//
// sub lines form the forward (quirkify) chain, unsub lines the inverse
// (dequirkify) chain, both in source order.
package quirkdef

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/hstranslate/quirk/core/errors"
	"github.com/hstranslate/quirk/core/quirk"
)

type defDocument struct {
	Quirks []quirkDef `@@*`
}

type quirkDef struct {
	Name  string    `"quirk" @String`
	Color string    `"color" @String`
	Lines []defLine `"{" @@* "}"`
}

type defLine struct {
	Aliases []string  `  "alias" @String+`
	Forward *ruleExpr `| "sub" @@`
	Inverse *ruleExpr `| "unsub" @@`
}

type ruleExpr struct {
	From string `@String`
	To   string `"->" @String`
}

// defLexer tokenizes quirk definition files. Order matters: the arrow must
// be matched before single punctuation would be.
var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
	{Name: "Brace", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var defParser = participle.MustBuild[defDocument](
	participle.Lexer(defLexer),
	participle.Elide("Comment", "Whitespace"),
)

// unquote strips the surrounding quotes and resolves \" and \\ escapes.
// Other backslash sequences pass through untouched so regex escapes like \d
// or \b need no doubling.
func unquote(s string) string {
	s = s[1 : len(s)-1]
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			i++
		}
		out = append(out, s[i])
	}
	return string(out)
}

// Options controls definition parsing.
type Options struct {
	// Verbose logs a structured summary of each constructed quirk.
	Verbose bool
}

// ParseDefs parses quirk definition text into an ordered list of quirks.
// Syntax errors are reported as ParseError.
func ParseDefs(data []byte) ([]*quirk.Quirk, error) {
	return ParseDefsWith(data, Options{})
}

// ParseDefsWith is ParseDefs with explicit options.
func ParseDefsWith(data []byte, opts Options) ([]*quirk.Quirk, error) {
	doc, err := defParser.ParseBytes("", data)
	if err != nil {
		return nil, errors.NewParse("quirkdef", "", err.Error())
	}

	quirks := []*quirk.Quirk{}
	for _, def := range doc.Quirks {
		var aliases []string
		var forward, inverse []quirk.Rule
		for _, line := range def.Lines {
			switch {
			case line.Aliases != nil:
				for _, alias := range line.Aliases {
					aliases = append(aliases, unquote(alias))
				}
			case line.Forward != nil:
				forward = append(forward, quirk.NewRule(unquote(line.Forward.From), unquote(line.Forward.To)))
			case line.Inverse != nil:
				inverse = append(inverse, quirk.NewRule(unquote(line.Inverse.From), unquote(line.Inverse.To)))
			}
		}
		quirks = append(quirks, quirk.New(unquote(def.Name), unquote(def.Color), aliases, forward, inverse, opts.Verbose))
	}
	return quirks, nil
}

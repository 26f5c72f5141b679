package quirkml

import (
	"bytes"
	"sort"

	"github.com/hstranslate/quirk/core/encoding"
	"github.com/hstranslate/quirk/core/errors"
	"github.com/hstranslate/quirk/core/quirk"
)

// declaration is the header prefixed to every serialized document.
const declaration = `<?xml version="1.0" encoding="utf-8"?>`

// SerializeOptions controls document output.
type SerializeOptions struct {
	// Compact emits the document on a single line with minimal whitespace.
	// The default is pretty output: one element per line, indented.
	Compact bool
	// Indent is the per-level indentation string for pretty output.
	// Defaults to two spaces.
	Indent string
}

// Serialize writes a quirk list as a document. Element order follows list
// order; alias and rule children keep their chain order. A nil element is
// rejected with a ValidationError.
func Serialize(quirks []*quirk.Quirk, opts SerializeOptions) ([]byte, error) {
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	for _, q := range quirks {
		if q == nil {
			return nil, errors.NewValidation("quirks", "nil quirk in source list")
		}
	}

	var buf bytes.Buffer
	buf.WriteString(declaration)
	if !opts.Compact {
		buf.WriteString("\n")
	}

	if len(quirks) == 0 {
		buf.WriteString("<document/>")
		if !opts.Compact {
			buf.WriteString("\n")
		}
		return buf.Bytes(), nil
	}

	buf.WriteString("<document>")
	if !opts.Compact {
		buf.WriteString("\n")
	}
	for _, q := range quirks {
		writeRuleEntry(&buf, q, opts)
	}
	buf.WriteString("</document>")
	if !opts.Compact {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// SerializeMap writes a name-keyed quirk map as a document. Entries are
// emitted sorted by name, since Go map iteration order is randomized.
func SerializeMap(quirks map[string]*quirk.Quirk, opts SerializeOptions) ([]byte, error) {
	names := make([]string, 0, len(quirks))
	for name := range quirks {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]*quirk.Quirk, 0, len(quirks))
	for _, name := range names {
		list = append(list, quirks[name])
	}
	return Serialize(list, opts)
}

func writeRuleEntry(buf *bytes.Buffer, q *quirk.Quirk, opts SerializeOptions) {
	aliases := q.Aliases()
	forward := q.ForwardRules()
	inverse := q.InverseRules()

	writeIndent(buf, 1, opts)
	buf.WriteString(`<rule name="`)
	buf.WriteString(encoding.EscapeXMLAttr(q.Name()))
	buf.WriteString(`" color="`)
	buf.WriteString(encoding.EscapeXMLAttr(q.Color()))
	buf.WriteString(`"`)

	if len(aliases) == 0 && len(forward) == 0 && len(inverse) == 0 {
		buf.WriteString("/>")
		if !opts.Compact {
			buf.WriteString("\n")
		}
		return
	}

	buf.WriteString(">")
	if !opts.Compact {
		buf.WriteString("\n")
	}
	for _, alias := range aliases {
		writeIndent(buf, 2, opts)
		buf.WriteString(`<alias value="`)
		buf.WriteString(encoding.EscapeXMLAttr(alias))
		buf.WriteString(`"/>`)
		if !opts.Compact {
			buf.WriteString("\n")
		}
	}
	for _, rule := range forward {
		writeRule(buf, "quirk", rule, opts)
	}
	for _, rule := range inverse {
		writeRule(buf, "dequirk", rule, opts)
	}
	writeIndent(buf, 1, opts)
	buf.WriteString("</rule>")
	if !opts.Compact {
		buf.WriteString("\n")
	}
}

func writeRule(buf *bytes.Buffer, element string, rule quirk.Rule, opts SerializeOptions) {
	writeIndent(buf, 2, opts)
	buf.WriteString("<")
	buf.WriteString(element)
	buf.WriteString(` from="`)
	buf.WriteString(encoding.EscapeXMLAttr(rule.Pattern()))
	buf.WriteString(`" to="`)
	buf.WriteString(encoding.EscapeXMLAttr(rule.Replacement()))
	buf.WriteString(`"/>`)
	if !opts.Compact {
		buf.WriteString("\n")
	}
}

func writeIndent(buf *bytes.Buffer, depth int, opts SerializeOptions) {
	if opts.Compact {
		return
	}
	for i := 0; i < depth; i++ {
		buf.WriteString(opts.Indent)
	}
}

// Command quirk is the CLI tool for typing-quirk documents.
// It applies quirk transformations to text and converts, lists, and
// fingerprints quirk documents.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/hstranslate/quirk/core/quirk"
	"github.com/hstranslate/quirk/core/quirkdef"
	"github.com/hstranslate/quirk/core/quirkml"
	"github.com/hstranslate/quirk/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for quirk.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug|info|warn|error)" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text|json)" default:"text"`

	// Command groups (noun-first organization)
	Apply   ApplyGroup `cmd:"" help:"Apply a quirk to text (quirkify, dequirkify)"`
	Doc     DocGroup   `cmd:"" help:"Quirk document operations (list, convert, fingerprint)"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ApplyGroup contains text transformation operations.
type ApplyGroup struct {
	Quirkify   QuirkifyCmd   `cmd:"" help:"Style plain text with a character's forward rules"`
	Dequirkify DequirkifyCmd `cmd:"" help:"Strip a character's styling with their inverse rules"`
}

// DocGroup contains quirk document operations.
type DocGroup struct {
	List        ListCmd        `cmd:"" help:"List the quirks in a document"`
	Convert     ConvertCmd     `cmd:"" help:"Convert a document between formats and output modes"`
	Fingerprint FingerprintCmd `cmd:"" help:"Print the content fingerprint of a document"`
}

// QuirkifyCmd applies a character's forward rule chain.
type QuirkifyCmd struct {
	Rules string   `help:"Quirk document path" short:"r" required:"" type:"path"`
	Name  string   `help:"Character name" short:"n" required:""`
	Text  []string `arg:"" optional:"" help:"Text to transform (reads stdin when omitted)"`
}

func (c *QuirkifyCmd) Run() error {
	return runApply(c.Rules, c.Name, c.Text, (*quirk.Quirk).Quirkify)
}

// DequirkifyCmd applies a character's inverse rule chain.
type DequirkifyCmd struct {
	Rules string   `help:"Quirk document path" short:"r" required:"" type:"path"`
	Name  string   `help:"Character name" short:"n" required:""`
	Text  []string `arg:"" optional:"" help:"Text to transform (reads stdin when omitted)"`
}

func (c *DequirkifyCmd) Run() error {
	return runApply(c.Rules, c.Name, c.Text, (*quirk.Quirk).Dequirkify)
}

func runApply(rulesPath, name string, args []string, apply func(*quirk.Quirk, string) (string, error)) error {
	quirks, err := loadQuirks(rulesPath, false)
	if err != nil {
		return err
	}
	q, ok := quirk.MapByName(quirks)[name]
	if !ok {
		return fmt.Errorf("no quirk named %q in %s", name, rulesPath)
	}

	text, err := gatherText(args)
	if err != nil {
		return err
	}
	out, err := apply(q, text)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func gatherText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// ListCmd prints a summary line per quirk in a document.
type ListCmd struct {
	Rules   string `help:"Quirk document path" short:"r" required:"" type:"path"`
	Verbose bool   `help:"Log full rule chains while loading" short:"v"`
}

func (c *ListCmd) Run() error {
	quirks, err := loadQuirks(c.Rules, c.Verbose)
	if err != nil {
		return err
	}
	logging.DocumentLoaded(c.Rules, len(quirks))
	for _, q := range quirks {
		fmt.Printf("%s\t%s\taliases=%d\tforward=%d\tinverse=%d\n",
			q.Name(), q.Color(), len(q.Aliases()), len(q.ForwardRules()), len(q.InverseRules()))
	}
	return nil
}

// ConvertCmd rewrites a document as XML, optionally compact. The input may
// be an XML document (raw, .gz, or .xz) or a .quirks definition file.
type ConvertCmd struct {
	In      string `help:"Input document path" required:"" type:"path"`
	Out     string `help:"Output path (- for stdout)" default:"-"`
	Compact bool   `help:"Emit compact single-line output instead of pretty"`
}

func (c *ConvertCmd) Run() error {
	quirks, err := loadQuirks(c.In, false)
	if err != nil {
		return err
	}
	data, err := quirkml.Serialize(quirks, quirkml.SerializeOptions{Compact: c.Compact})
	if err != nil {
		return err
	}
	if c.Out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}
	logging.Info("document_written", "path", c.Out, "quirks", len(quirks), "compact", c.Compact)
	return nil
}

// FingerprintCmd prints the BLAKE3 fingerprint of a document's canonical form.
type FingerprintCmd struct {
	Rules string `help:"Quirk document path" short:"r" required:"" type:"path"`
}

func (c *FingerprintCmd) Run() error {
	quirks, err := loadQuirks(c.Rules, false)
	if err != nil {
		return err
	}
	fp, err := quirkml.Fingerprint(quirks)
	if err != nil {
		return err
	}
	fmt.Println(fp)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("quirk version %s\n", version)
	return nil
}

// loadQuirks dispatches on extension: .quirks files use the definition
// format, everything else is treated as an XML document (with transparent
// .gz/.xz decompression).
func loadQuirks(path string, verbose bool) ([]*quirk.Quirk, error) {
	if strings.HasSuffix(path, ".quirks") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return quirkdef.ParseDefsWith(data, quirkdef.Options{Verbose: verbose})
	}
	return quirkml.LoadListWith(path, quirkml.ParseOptions{Verbose: verbose})
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("quirk"),
		kong.Description("Typing-quirk transformation and document tool"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

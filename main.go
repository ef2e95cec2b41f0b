package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"jsonlens/internal/config"
	"jsonlens/internal/diff"
	"jsonlens/internal/errors"
	"jsonlens/internal/formatter"
	"jsonlens/internal/lexer"
	"jsonlens/internal/parser"
	"jsonlens/internal/search"
	"jsonlens/internal/stats"
	"jsonlens/internal/textdiff"
)

// CLI defines the command-line interface
var CLI struct {
	Config  string           `help:"Path to a jsonlens config file. Discovered automatically when omitted." type:"path"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`

	Diff     DiffCmd     `cmd:"" help:"Compare two JSON documents structurally."`
	Format   FormatCmd   `cmd:"" help:"Reformat and validate a JSON document."`
	Search   SearchCmd   `cmd:"" help:"Find a substring in a formatted JSON document."`
	TextDiff TextDiffCmd `cmd:"" name:"text-diff" help:"Compare two text files line by line."`
	Stats    StatsCmd    `cmd:"" help:"Count value kinds in a JSON document."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jsonlens"),
		kong.Description("Compare, reformat and search JSON documents."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("jsonlens version %s", Version)},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := ctx.Run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// DiffCmd compares two JSON documents and prints the classified paths.
type DiffCmd struct {
	Left  string `arg:"" help:"Left JSON document." type:"existingfile"`
	Right string `arg:"" help:"Right JSON document." type:"existingfile"`

	All   bool `help:"Include unchanged paths in the report." short:"a"`
	Stats bool `help:"Also print value-kind counts for both documents." short:"s"`
}

// Run executes the diff command. A parse failure on either side
// suppresses the report entirely; there is no partial diff.
func (c *DiffCmd) Run(ctx *Context) error {
	left, err := parser.ParseFile(c.Left)
	if err != nil {
		return diffInputError(c.Left, err)
	}
	right, err := parser.ParseFile(c.Right)
	if err != nil {
		return diffInputError(c.Right, err)
	}

	report := diff.Compare(left, right)
	for _, p := range report.Added {
		fmt.Printf("+ %s\n", p)
	}
	for _, p := range report.Removed {
		fmt.Printf("- %s\n", p)
	}
	for _, p := range report.Modified {
		fmt.Printf("~ %s\n", p)
	}
	if c.All {
		for _, p := range report.Same {
			fmt.Printf("= %s\n", p)
		}
	}

	fmt.Fprintf(os.Stderr, "%d of %d path(s) changed: %d added, %d removed, %d modified\n",
		len(report.Added)+len(report.Removed)+len(report.Modified), report.Total(),
		len(report.Added), len(report.Removed), len(report.Modified))

	if c.Stats {
		printStats(os.Stderr, c.Left, stats.Collect(left))
		printStats(os.Stderr, c.Right, stats.Collect(right))
	}
	return nil
}

// diffInputError attributes a parse failure to the side that produced
// it; the whole report is suppressed, never just that side's paths.
func diffInputError(path string, err error) error {
	if errors.IsParseFailure(err) {
		return errors.NewParsingError(fmt.Sprintf("cannot diff: '%s' is not valid JSON", path), err)
	}
	return err
}

// FormatCmd reformats a single JSON document.
type FormatCmd struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent      int    `help:"Spaces per nesting level: 0 (minified), 2, 4 or 8." default:"-1"`
	SortKeys    bool   `help:"Sort object keys recursively." name:"sort-keys"`
	Tokens      bool   `help:"Print the token stream instead of the formatted text."`
	Stats       bool   `help:"Print value-kind counts to stderr." short:"s"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Run executes the format command
func (c *FormatCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input, c.Interactive)
	if err != nil {
		return err
	}

	v, err := parser.ParseString(text)
	if err != nil {
		return err
	}

	opts := formatter.Options{
		Indent:   resolveIndent(c.Indent, ctx.Config),
		SortKeys: c.SortKeys || ctx.Config.Format.SortKeys,
	}
	formatted, err := formatter.Format(v, opts)
	if err != nil {
		return err
	}

	if c.Stats {
		printStats(os.Stderr, inputName(c.Input), stats.Collect(v))
	}

	if c.Tokens {
		for _, tok := range lexer.Tokenize(formatted) {
			fmt.Printf("%d:%d\t%s\t%q\n", tok.Line+1, tok.Col+1, tok.Kind, tok.Text)
		}
		return nil
	}

	return writeOutput(c.Output, formatted)
}

// SearchCmd formats a document and reports every occurrence of a query.
type SearchCmd struct {
	Query string `arg:"" help:"Literal substring to look for."`

	Input         string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Indent        int    `help:"Indent width used to format the document before searching." default:"-1"`
	CaseSensitive bool   `help:"Match case exactly." name:"case-sensitive"`
}

// Run executes the search command. The document is formatted first:
// search operates on the same text the highlighter renders.
func (c *SearchCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input, false)
	if err != nil {
		return err
	}

	opts := formatter.Options{Indent: resolveIndent(c.Indent, ctx.Config)}
	formatted, err := formatter.FormatString(text, opts)
	if err != nil {
		return err
	}

	caseSensitive := c.CaseSensitive || ctx.Config.Search.CaseSensitive
	matches := search.Find(c.Query, formatted, caseSensitive)
	for _, m := range matches {
		fmt.Printf("%d:%d\t%s\n", m.Line+1, m.Col+1, m.Text)
	}
	fmt.Fprintf(os.Stderr, "%d match(es)\n", len(matches))
	return nil
}

// TextDiffCmd compares two arbitrary text files line by line.
type TextDiffCmd struct {
	Left  string `arg:"" help:"Left text file." type:"existingfile"`
	Right string `arg:"" help:"Right text file." type:"existingfile"`

	CollapseWhitespace bool `help:"Collapse whitespace runs before comparing." name:"collapse-whitespace"`
	IgnoreCase         bool `help:"Ignore letter case." name:"ignore-case"`
}

// Run executes the text-diff command
func (c *TextDiffCmd) Run(ctx *Context) error {
	left, err := readFile(c.Left)
	if err != nil {
		return err
	}
	right, err := readFile(c.Right)
	if err != nil {
		return err
	}

	opts := textdiff.Options{
		CollapseWhitespace: c.CollapseWhitespace || ctx.Config.Compare.CollapseWhitespace,
		IgnoreCase:         c.IgnoreCase || ctx.Config.Compare.IgnoreCase,
	}
	leftSeq, rightSeq := textdiff.Compare(left, right, opts)

	changed := 0
	for k := range leftSeq {
		l, r := leftSeq[k], rightSeq[k]
		if l.Kind == textdiff.Unchanged {
			fmt.Printf("  %4d %4d  %s\n", l.Number, r.Number, l.Content)
			continue
		}
		changed++
		if l.Number != 0 {
			fmt.Printf("- %4d       %s\n", l.Number, l.Content)
		}
		if r.Number != 0 {
			fmt.Printf("+      %4d  %s\n", r.Number, r.Content)
		}
	}
	fmt.Fprintf(os.Stderr, "%d of %d line(s) differ\n", changed, len(leftSeq))
	return nil
}

// StatsCmd prints value-kind counts for a document.
type StatsCmd struct {
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
}

// Run executes the stats command
func (c *StatsCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input, false)
	if err != nil {
		return err
	}
	v, err := parser.ParseString(text)
	if err != nil {
		return err
	}
	printStats(os.Stdout, inputName(c.Input), stats.Collect(v))
	return nil
}

func printStats(w io.Writer, name string, s stats.Stats) {
	fmt.Fprintf(w, "%s: %d objects, %d arrays, %d strings, %d numbers, %d booleans, %d nulls\n",
		name, s.Objects, s.Arrays, s.Strings, s.Numbers, s.Booleans, s.Nulls)
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

// resolveIndent prefers an explicit flag value over the configured
// default. -1 is the "not set" sentinel so that 0 (minified) remains a
// valid explicit choice.
func resolveIndent(flag int, cfg *config.Config) int {
	if flag < 0 {
		return cfg.Format.Indent
	}
	return flag
}

// readInput reads the document text from a file or stdin
func readInput(path string, interactive bool) (string, error) {
	if path != "" {
		return readFile(path)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

// readFile reads a whole file, mapping the usual failure modes to the
// application error taxonomy
func readFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
		}
		return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	return string(data), nil
}

// writeOutput writes the formatted document to a file or stdout. File
// output is written verbatim, UTF-8, with no extra transformation.
func writeOutput(path, formatted string) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", path)
		return nil
	}

	if _, err := fmt.Println(formatted); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste
// JSON and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jsonlens Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			builder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	text := builder.String()
	if len(text) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return text, nil
}

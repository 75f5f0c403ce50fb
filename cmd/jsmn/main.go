// Command jsmn tokenizes a JSON document and prints each token's
// kind, byte range, and the raw input it covers. It is a peripheral
// convenience around the jsmn package, not part of its API.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	flags "github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"

	"github.com/gojsmn/jsmn"
)

var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

type cliOptions struct {
	Permissive   bool `short:"p" long:"permissive" description:"accept unquoted keys, bare values, and tolerated missing commas"`
	SiblingLinks bool `short:"s" long:"sibling-links" description:"track and print next-sibling indices"`
	NoColor      bool `long:"no-color" description:"disable colored output even on a TTY"`
	Args         struct {
		File string `positional-arg-name:"file" description:"JSON file to tokenize (default: stdin)"`
	} `positional-args:"yes"`
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] [file]"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Error("tokenize failed", "err", err)
		os.Exit(1)
	}
}

func run(opts cliOptions) error {
	data, err := readInput(opts.Args.File)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var parserOpts []jsmn.Option
	if opts.Permissive {
		parserOpts = append(parserOpts, jsmn.WithPermissive())
	}
	if opts.SiblingLinks {
		parserOpts = append(parserOpts, jsmn.WithSiblingLinks())
	}

	count, err := jsmn.NewParser(parserOpts...).Count(data)
	if err != nil {
		return err
	}

	p := jsmn.NewParser(parserOpts...)
	tokens := make([]jsmn.Token, count)
	n, err := p.Parse(data, tokens)
	if err != nil {
		return err
	}

	useColor := !opts.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	printTokens(tokens[:n], data, useColor)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printTokens(tokens []jsmn.Token, data []byte, useColor bool) {
	kindColor := color.New(color.FgCyan).SprintFunc()
	rangeColor := color.New(color.FgYellow).SprintFunc()
	rawColor := color.New(color.FgGreen).SprintFunc()
	if !useColor {
		identity := func(a ...interface{}) string { return fmt.Sprint(a...) }
		kindColor, rangeColor, rawColor = identity, identity, identity
	}

	for i, tok := range tokens {
		sibling := "-"
		if tok.NextSibling != jsmn.None {
			sibling = fmt.Sprintf("%d", tok.NextSibling)
		}
		fmt.Printf("%4d  %-20s  %s  parent=%-4d size=%-3d next=%-4s  %s\n",
			i,
			kindColor(tok.Kind.String()),
			rangeColor(fmt.Sprintf("[%d,%d)", tok.Start, tok.End)),
			tok.Parent,
			tok.Size,
			sibling,
			rawColor(previewRaw(tok, data)),
		)
	}
}

func previewRaw(tok jsmn.Token, data []byte) string {
	raw := tok.Raw(data)
	if raw == nil {
		return ""
	}
	const maxPreview = 60
	if len(raw) > maxPreview {
		return string(raw[:maxPreview]) + "..."
	}
	return string(raw)
}

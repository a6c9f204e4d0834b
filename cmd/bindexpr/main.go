// Command bindexpr parses binding expressions from the command line and
// prints their AST, for inspecting what a given path resolves into and
// for wiring the parser into shell pipelines.
//
//	bindexpr parse "user.accounts[0]['display name']"
//	bindexpr parse --json "foo[bar.baz]"
//	bindexpr parse --canonical "foo['bar']"
//
// Defaults (output format, nesting bound) can be set in an optional
// .bindexpr.yaml file; flags override the file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/sandrolain/bindexpr"
	"github.com/sandrolain/bindexpr/pkg/parser"
	"github.com/sandrolain/bindexpr/pkg/types"
)

var errParseFailed = errors.New("one or more expressions failed to parse")

// Context carries the loaded config and logger to the commands.
type Context struct {
	Config *Config
	Logger zerolog.Logger
}

// ParseCmd parses one or more expressions and prints their ASTs.
type ParseCmd struct {
	Expressions []string `arg:"" name:"expression" help:"Binding expressions to parse."`
	JSON        bool     `help:"Print the AST as a JSON segment array." short:"j"`
	Canonical   bool     `help:"Print the canonical rendering." short:"c"`
	MaxDepth    int      `help:"Maximum bracket nesting depth (0 = config or parser default)." default:"0"`
}

// Run executes the parse command.
func (cmd *ParseCmd) Run(ctx *Context) error {
	var opts []parser.CompileOption
	switch {
	case cmd.MaxDepth > 0:
		opts = append(opts, parser.WithMaxDepth(cmd.MaxDepth))
	case ctx.Config.MaxDepth > 0:
		opts = append(opts, parser.WithMaxDepth(ctx.Config.MaxDepth))
	}

	output := ctx.Config.Output
	switch {
	case cmd.JSON:
		output = OutputJSON
	case cmd.Canonical:
		output = OutputCanonical
	}

	failed := false
	for _, input := range cmd.Expressions {
		start := time.Now()
		expr, err := bindexpr.Parse(input, opts...)
		if err != nil {
			failed = true
			renderParseError(input, err)
			continue
		}
		ctx.Logger.Debug().
			Str("expression", input).
			Int("segments", expr.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("parsed")

		if err := printExpression(expr, output); err != nil {
			return err
		}
	}

	if failed {
		return errParseFailed
	}
	return nil
}

func printExpression(expr *types.BindingExpression, output string) error {
	switch output {
	case OutputJSON:
		data, err := json.Marshal(expr)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case OutputCanonical:
		fmt.Println(expr.String())
	default:
		for _, seg := range expr.Segments() {
			switch seg.Type {
			case types.SegmentKey:
				fmt.Printf("key    %q\n", seg.Key)
			case types.SegmentIndex:
				fmt.Printf("index  %d\n", seg.Index)
			case types.SegmentNested:
				fmt.Printf("nested %s\n", seg.Path)
			}
		}
	}
	return nil
}

// renderParseError prints the failing input with a caret under the
// offending byte offset, then the structured error message.
func renderParseError(input string, err error) {
	fmt.Fprintln(os.Stderr, input)

	var perr *types.Error
	if errors.As(err, &perr) && perr.Position >= 0 && perr.Position <= len(input) {
		caret := strings.Repeat(" ", perr.Position) + "^"
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, caret)
	}
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
}

// VersionCmd prints the library version.
type VersionCmd struct{}

// Run executes the version command.
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Println(bindexpr.Version())
	return nil
}

// CLI is the top-level command structure.
type CLI struct {
	Config  string `help:"Path to the YAML config file." default:".bindexpr.yaml"`
	Verbose bool   `help:"Enable verbose logging." short:"v"`

	Parse   ParseCmd   `cmd:"" default:"withargs" help:"Parse binding expressions and print their AST."`
	Version VersionCmd `cmd:"" help:"Print the version."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("bindexpr"),
		kong.Description("Parse binding expressions into an AST."),
		kong.UsageOnError(),
	)

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	level := zerolog.WarnLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	err = kctx.Run(&Context{Config: cfg, Logger: logger})
	kctx.FatalIfErrorf(err)
}

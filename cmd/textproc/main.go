package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/textproc/internal/accent"
	"github.com/kk-code-lab/textproc/internal/config"
	"github.com/kk-code-lab/textproc/internal/fs"
	"github.com/kk-code-lab/textproc/internal/pipeline"
	"github.com/kk-code-lab/textproc/internal/ui/viewer"
	"github.com/kk-code-lab/textproc/internal/wrap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// ErrUnknownCommand is returned for an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// errUsage marks argument errors; run prints the help text for them.
var errUsage = errors.New("invalid arguments")

func printHelp(w io.Writer) {
	fmt.Fprint(w, `textproc - Text filters for bounded display

USAGE:
    textproc [OPTIONS] COMMAND [ARGS]

COMMANDS:
    encode                Convert non-ASCII bytes to numeric entities
    decode [--named]      Convert numeric entities (and named ones) back to text
    wrap [-w N]           Wrap lines at N columns, keeping {unwrap}...{/unwrap} whole
    censor WORD...        Mask banned words (* matches any word suffix)
    highlight PHRASE      Mark every occurrence of PHRASE
    keyword KEYWORD       Mark KEYWORD ignoring accents (% separates alternatives)
    translit              Replace accented letters with plain ASCII
    words N               Keep the first N words
    chars N               Keep about N characters, cutting at a word boundary
    ellipsize N [POS]     Keep N characters around an ellipsis placed at POS
                          (0 keeps the tail, 0.5 both ends, 1 the head; default 1)
    view [-w N] [PHRASE]  Page through the text, highlighting PHRASE

OPTIONS:
    -f, --file PATH       Read input from PATH instead of stdin
    -v, --verbose         Log each transformation step to stderr
    -h, --help            Show this help message and exit

CONFIG:
    $TEXTPROC_CONFIG or ~/.config/textproc/config.toml
`)
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "textproc: %v\n", err)
		if errors.Is(err, errUsage) || errors.Is(err, ErrUnknownCommand) {
			printHelp(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type options struct {
	file    string
	verbose bool
	help    bool
	named   bool
	width   int
	command string
	args    []string
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-v" || arg == "--verbose":
			opts.verbose = true
		case arg == "--named":
			opts.named = true
		case arg == "-f" || arg == "--file":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a path: %w", arg, errUsage)
			}
			i++
			opts.file = args[i]
		case strings.HasPrefix(arg, "--file="):
			opts.file = strings.TrimPrefix(arg, "--file=")
		case arg == "-w" || arg == "--width":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a number: %w", arg, errUsage)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				return opts, fmt.Errorf("invalid width %q: %w", args[i], errUsage)
			}
			opts.width = n
		case opts.command == "":
			opts.command = arg
		default:
			opts.args = append(opts.args, arg)
		}
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.help || opts.command == "" {
		printHelp(stdout)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.width > 0 {
		cfg.Wrap.Width = opts.width
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger = newVerboseLogger(stderr)
	}
	defer func() { _ = logger.Sync() }()

	steps, err := buildSteps(opts, cfg, terminalWidth(stdout))
	if err != nil {
		return err
	}

	text, err := fs.ReadText(opts.file, stdin)
	if err != nil {
		return err
	}
	logger.Debug("input read", zap.String("file", opts.file), zap.Int("bytes", len(text)))

	out := pipeline.New(logger, steps...).Run(text)

	if opts.command == "view" {
		title := opts.file
		if title == "" {
			title = "stdin"
		}
		return viewer.Show(viewer.ParseMarked(out, cfg.Highlight.Open, cfg.Highlight.Close), title)
	}

	if _, err := io.WriteString(stdout, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		_, _ = io.WriteString(stdout, "\n")
	}
	return nil
}

func buildSteps(opts options, cfg *config.Config, termWidth int) ([]pipeline.Step, error) {
	openTag, closeTag := cfg.Highlight.Open, cfg.Highlight.Close
	wrapOpts := wrap.Options{Width: cfg.WrapWidth(termWidth), Columns: cfg.Wrap.DisplayWidth}

	switch opts.command {
	case "encode":
		return []pipeline.Step{pipeline.Encode()}, nil
	case "decode":
		return []pipeline.Step{pipeline.Decode(opts.named)}, nil
	case "wrap":
		return []pipeline.Step{pipeline.Wrap(wrapOpts)}, nil
	case "censor":
		words := append(append([]string(nil), cfg.Censor.Words...), opts.args...)
		if len(words) == 0 {
			return nil, fmt.Errorf("censor needs at least one word: %w", errUsage)
		}
		return []pipeline.Step{pipeline.Censor(words, cfg.Censor.Replacement)}, nil
	case "highlight":
		phrase, err := singleArg(opts, "PHRASE")
		if err != nil {
			return nil, err
		}
		return []pipeline.Step{pipeline.Highlight(phrase, openTag, closeTag)}, nil
	case "keyword":
		keyword, err := singleArg(opts, "KEYWORD")
		if err != nil {
			return nil, err
		}
		return []pipeline.Step{pipeline.Keyword(accent.Default(), keyword, openTag, closeTag)}, nil
	case "translit":
		return []pipeline.Step{pipeline.Transliterate(accent.Default())}, nil
	case "words", "chars":
		if len(opts.args) != 1 {
			return nil, fmt.Errorf("%s needs N: %w", opts.command, errUsage)
		}
		n, err := countArg(opts.args[0])
		if err != nil {
			return nil, err
		}
		if opts.command == "words" {
			return []pipeline.Step{pipeline.Words(n, cfg.Truncate.EndMarker)}, nil
		}
		return []pipeline.Step{pipeline.Characters(n, cfg.Truncate.EndMarker)}, nil
	case "ellipsize":
		if len(opts.args) < 1 || len(opts.args) > 2 {
			return nil, fmt.Errorf("ellipsize needs N [POS]: %w", errUsage)
		}
		n, err := countArg(opts.args[0])
		if err != nil {
			return nil, err
		}
		position := 1.0
		if len(opts.args) == 2 {
			if position, err = strconv.ParseFloat(opts.args[1], 64); err != nil {
				return nil, fmt.Errorf("invalid position %q: %w", opts.args[1], errUsage)
			}
		}
		return []pipeline.Step{pipeline.Ellipsize(n, position, cfg.Truncate.Ellipsis)}, nil
	case "view":
		steps := []pipeline.Step{pipeline.Wrap(wrapOpts)}
		if len(opts.args) > 0 {
			steps = append(steps, pipeline.Keyword(accent.Default(), strings.Join(opts.args, " "), openTag, closeTag))
		}
		return steps, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, opts.command)
	}
}

func singleArg(opts options, name string) (string, error) {
	if len(opts.args) == 0 {
		return "", fmt.Errorf("%s needs %s: %w", opts.command, name, errUsage)
	}
	return strings.Join(opts.args, " "), nil
}

func countArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid count %q: %w", arg, errUsage)
	}
	return n, nil
}

// terminalWidth reports the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// newVerboseLogger writes development-style logs to w.
func newVerboseLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core, zap.Development())
}

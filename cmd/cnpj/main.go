// Command cnpj validates alphanumeric CNPJs and computes their check digits.
//
//	cnpj -v 12.ABC.345/01DE-35 12ABC34501DE99
//	cnpj -dv 12ABC34501DE
//
// Output messages follow CNPJ_LANG (or --lang); pt-BR by default.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/dmitrymomot/cnpj/pkg/cnpj"
	"github.com/dmitrymomot/cnpj/pkg/config"
	"github.com/dmitrymomot/cnpj/pkg/environment"
	"github.com/dmitrymomot/cnpj/pkg/i18n"
	"github.com/dmitrymomot/cnpj/pkg/logger"
)

// Config holds defaults read from the environment; flags take precedence.
type Config struct {
	Lang      string `env:"CNPJ_LANG" envDefault:"pt-BR"`
	LogLevel  string `env:"CNPJ_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"CNPJ_LOG_FORMAT" envDefault:"text"`
	Env       string `env:"APP_ENV" envDefault:"development"`
}

type options struct {
	Validate    bool   `short:"v" long:"validate" description:"validate full CNPJs"`
	CheckDigits bool   `long:"dv" description:"compute check digits for 12-character bases (-dv also accepted)"`
	Lang        string `long:"lang" description:"message language, e.g. pt-BR or en"`
	LogLevel    string `long:"log-level" description:"log level: debug, info, warn, error"`
	LogFormat   string `long:"log-format" description:"log format: text or json"`
	Dbg         bool   `long:"dbg" description:"debug mode, same as --log-level=debug"`

	Args struct {
		CNPJs []string `positional-arg-name:"CNPJ"`
	} `positional-args:"yes"`
}

var revision = "unknown"

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code. A nil environ
// means the process environment, with ./.env loaded first.
func run(args []string, environ map[string]string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(environ)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "cnpj"
	parser.Usage = "[OPTIONS] -v|-dv CNPJ..."

	if _, err := parser.ParseArgs(legacyArgs(args)); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintln(stderr, err)
		parser.WriteHelp(stderr)
		return 1
	}

	log, err := newLogger(cfg, opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx := environment.WithContext(context.Background(), environment.Parse(cfg.Env))
	log.DebugContext(ctx, "cnpj started", slog.String("revision", revision))

	tr, err := i18n.NewCatalog(ctx, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))
	if err != nil {
		log.ErrorContext(ctx, "failed to load message catalog", logger.Error(err))
		return 1
	}

	lang := cfg.Lang
	if opts.Lang != "" {
		lang = opts.Lang
	}
	lang = tr.Match(lang)

	c := &cli{tr: tr, lang: lang, log: log, stdout: stdout, stderr: stderr}

	switch {
	case !opts.Validate && !opts.CheckDigits:
		fmt.Fprintln(stderr, tr.T(lang, "cli.missing_mode"))
		parser.WriteHelp(stderr)
		return 1
	case opts.Validate && opts.CheckDigits:
		fmt.Fprintln(stderr, tr.T(lang, "cli.conflicting_modes"))
		parser.WriteHelp(stderr)
		return 1
	case len(opts.Args.CNPJs) == 0:
		fmt.Fprintln(stderr, tr.T(lang, "cli.missing_cnpj"))
		parser.WriteHelp(stderr)
		return 1
	}

	if opts.Validate {
		c.validate(ctx, opts.Args.CNPJs)
	} else {
		c.checkDigits(ctx, opts.Args.CNPJs)
	}
	return 0
}

func loadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	var err error
	if environ == nil {
		err = config.Load(&cfg)
	} else {
		err = config.Parse(&cfg, environ)
	}
	return cfg, err
}

// legacyArgs rewrites the single-dash "-dv" into its long form.
// Arguments after "--" are left alone.
func legacyArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, a := range out {
		if a == "--" {
			break
		}
		if a == "-dv" {
			out[i] = "--dv"
		}
	}
	return out
}

func newLogger(cfg Config, opts options, w io.Writer) (*slog.Logger, error) {
	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	if opts.Dbg {
		levelName = "debug"
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	formatName := cfg.LogFormat
	if opts.LogFormat != "" {
		formatName = opts.LogFormat
	}
	format, err := logger.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	), nil
}

type cli struct {
	tr     *i18n.Translator
	lang   string
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func (c *cli) validate(ctx context.Context, inputs []string) {
	c.log.DebugContext(ctx, "validating", logger.Mode("validate"), logger.Count(len(inputs)))

	for i, raw := range inputs {
		id := strings.ToUpper(raw)
		key := "cli.invalid"
		if cnpj.IsValid(id) {
			key = "cli.valid"
		}
		fmt.Fprintln(c.stdout, c.tr.T(c.lang, key, "index", strconv.Itoa(i+1), "cnpj", id))
	}
}

func (c *cli) checkDigits(ctx context.Context, inputs []string) {
	c.log.DebugContext(ctx, "computing check digits", logger.Mode("dv"), logger.Count(len(inputs)))

	for i, raw := range inputs {
		id := strings.ToUpper(raw)
		index := strconv.Itoa(i + 1)

		dv, err := cnpj.CalculateCheckDigits(id)
		if err != nil {
			c.log.DebugContext(ctx, "check digit computation failed",
				logger.Index(i+1), logger.Identifier(id), logger.Error(err))
			reason := c.tr.T(c.lang, cnpj.ErrorKey(err), "length", strconv.Itoa(cnpj.BaseLength))
			fmt.Fprintln(c.stderr, c.tr.T(c.lang, "cli.dv_error", "index", index, "cnpj", id, "reason", reason))
			continue
		}

		fmt.Fprintln(c.stdout, c.tr.T(c.lang, "cli.check_digits", "index", index, "cnpj", id, "dv", dv))
		fmt.Fprintln(c.stdout, c.tr.T(c.lang, "cli.complete", "cnpj", cnpj.RemoveMask(id)+dv))
	}
}

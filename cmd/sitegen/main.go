package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"pkt.systems/mdhtml/internal/site"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	v, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	setupLogging(v.GetBool("verbose"))

	var cfg site.Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatal().Err(err).Msg("cannot decode config")
	}
	if args := flags.Args(); len(args) > 0 {
		cfg.BasePath = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	stats, err := site.Build(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("build failed")
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, stats)
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("sitegen", pflag.ExitOnError)
	flags.String("content", "content", "Directory of Markdown pages")
	flags.String("static", "static", "Directory of static assets copied verbatim (empty to skip)")
	flags.String("template", "template.html", "HTML template with {{ Title }} and {{ Content }}")
	flags.String("dest", "public", "Output directory")
	flags.String("base-path", site.DefaultBasePath, "Base path the site is served under")
	flags.IntP("workers", "j", 0, "Pages generated concurrently (0 uses all CPUs)")
	flags.Bool("front-matter", false, "Strip a leading front matter block from pages")
	flags.String("config", "", "Config file (default ./sitegen.yaml if present)")
	flags.BoolP("verbose", "v", false, "Verbose logging")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: sitegen [flags] [base-path]\n")
		fmt.Fprintln(os.Stderr, "\nSettings are read from flags, SITEGEN_* environment variables and sitegen.yaml.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

func loadConfig(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	bindings := map[string]string{
		"content":      "content",
		"static":       "static",
		"template":     "template",
		"dest":         "dest",
		"base_path":    "base-path",
		"workers":      "workers",
		"front_matter": "front-matter",
		"verbose":      "verbose",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}
	v.SetEnvPrefix("SITEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sitegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Command ibangen generates checksum-valid test IBANs from the terminal or
// serves a small local web UI for doing the same in a browser.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	"github.com/kelseyhightower/envconfig"

	"github.com/mkregel/ibangen"
	"github.com/mkregel/ibangen/internal/log"
	"github.com/mkregel/ibangen/internal/web"
)

func setupLogging(logLevel, logFormat string) {
	programLevel, err := log.ParseLevel(logLevel)
	if err != nil {
		Exit(fmt.Sprintf("Error parsing log level: %s", err))
	}

	// Add source information for debug or lower
	addSource := programLevel <= slog.LevelDebug

	logger, err := log.New(programLevel, addSource, logFormat)
	if err != nil {
		Exit(fmt.Sprintf("Error creating logger: %s", err))
	}
	slog.SetDefault(logger)
}

func Exit(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	// Read config from env
	var cfg ibangen.Config
	if err := envconfig.Process("", &cfg); err != nil {
		Exit(err.Error())
	}

	list := flag.Bool("list", false, "list supported countries and exit")
	serve := flag.Bool("web", false, "serve the web UI instead of printing")
	validate := flag.String("validate", "", "check the given IBAN and exit 0/1")
	asJSON := flag.Bool("json", false, "print generated IBANs as JSON")
	bare := flag.Bool("bare", false, "print IBANs without the 4-character grouping")
	count := flag.Int("n", cfg.Count, "number of IBANs to generate")
	flag.Parse()

	setupLogging(cfg.LogLevel, cfg.LogFormat)
	slog.Debug("starting...", "version", versioninfo.Short())

	engine := ibangen.New()

	switch {
	case *list:
		listCountries(engine)
	case *validate != "":
		if !engine.Validate(*validate) {
			Exit(fmt.Sprintf("invalid: %s", *validate))
		}
		fmt.Println("valid")
	case *serve:
		serveWeb(cfg, engine)
	default:
		code := flag.Arg(0)
		if code == "" {
			fmt.Fprintln(os.Stderr, "usage: ibangen [-n count] [-json] [-bare] <country code>")
			fmt.Fprintln(os.Stderr, "       ibangen -list | -web | -validate <iban>")
			os.Exit(2)
		}
		generate(engine, code, *count, *asJSON, *bare)
	}
}

func listCountries(engine *ibangen.Generator) {
	for _, code := range engine.Codes() {
		p, err := engine.Profile(code)
		if err != nil {
			Exit(err.Error())
		}
		fmt.Printf("%s  %-14s  %d characters\n", p.Code, p.Name, p.Length)
	}
}

func generate(engine *ibangen.Generator, code string, count int, asJSON, bare bool) {
	ibans := make([]string, 0, count)
	for i := 0; i < count; i++ {
		iban, err := engine.Generate(code)
		if err != nil {
			Exit(err.Error())
		}
		ibans = append(ibans, iban)
	}

	if asJSON {
		out, err := json.MarshalIndent(ibans, "", "  ")
		if err != nil {
			Exit(err.Error())
		}
		fmt.Println(string(out))
		return
	}
	for _, iban := range ibans {
		if bare {
			fmt.Println(iban)
		} else {
			fmt.Println(ibangen.Format(iban))
		}
	}
}

func serveWeb(cfg ibangen.Config, engine *ibangen.Generator) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg.Web.Port, cfg.Web.Host, engine, slog.Default().With("component", "web"))
	if err := srv.Start(ctx); err != nil {
		Exit(fmt.Sprintf("Failed to start web UI: %v", err))
	}
	slog.Info("web UI listening", "host", cfg.Web.Host, "port", srv.Port())
	<-ctx.Done()
	slog.Info("shutting down")
}

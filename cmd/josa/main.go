package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jusunglee/josa"
	"github.com/jusunglee/josa/internal/cli"
	"github.com/jusunglee/josa/internal/logger"
	"github.com/jusunglee/josa/internal/playground"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		if !errors.Is(err, cli.ErrFailedWords) {
			slog.Error("fatal", "error", err)
		}
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("josa")
	var (
		josaName    = fs.StringLong("josa", "", "Josa to attach: name, role or notation such as 은/는")
		policyName  = fs.StringEnumLong("policy", "What to do after non-Hangul words", "table", "nocoda", "coda", "strict")
		selectOnly  = fs.BoolLong("select", "Print only the selected form")
		explain     = fs.BoolLong("explain", "Print how each form was chosen")
		normalize   = fs.BoolLong("normalize", "NFC-compose words before selection")
		list        = fs.BoolLong("list", "Print the josa table and exit")
		interactive = fs.BoolLong("interactive", "Start the interactive playground")
		workers     = fs.IntLong("workers", 0, "Concurrent workers for stdin input (0 = GOMAXPROCS)")
	)

	err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("JOSA"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	if *list {
		fmt.Println(cli.Table())
		return nil
	}

	policy, err := josa.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	var j josa.Josa
	if *josaName != "" {
		if j, err = josa.Parse(*josaName); err != nil {
			return err
		}
	}

	if *interactive {
		chosen, err := playground.Run(j, policy, *normalize)
		if err != nil {
			return err
		}
		if chosen != "" {
			fmt.Println(chosen)
		}
		return nil
	}

	cfg := cli.Config{
		Josa:      j,
		Policy:    policy,
		Normalize: *normalize,
		Workers:   *workers,
	}
	switch {
	case *explain:
		cfg.Mode = cli.ModeExplain
	case *selectOnly:
		cfg.Mode = cli.ModeSelect
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Run(ctx, cfg, fs.GetArgs(), os.Stdin, os.Stdout, log)
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/ik5/audexp/internal/cli"
	"github.com/ik5/audexp/internal/logging"
)

var version = "0.1.0"

const description = "Audio degradation experiments: codec sweeps, noise mixing and WER scoring"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel  string `help:"Log level: debug, info, warn or error." env:"AUDEXP_LOG_LEVEL"`
	LogFormat string `help:"Log encoding." enum:"console,json" default:"console"`

	ctx    context.Context
	logger *zap.Logger
}

// Logger builds the logger on first use. level overrides LogLevel when
// the flag was left empty.
func (g *Globals) Logger(level string) (*zap.Logger, error) {
	if g.logger != nil {
		return g.logger, nil
	}

	if g.LogLevel != "" {
		level = g.LogLevel
	}

	logger, err := logging.New(level, g.LogFormat)
	if err != nil {
		return nil, err
	}
	g.logger = logger

	return logger, nil
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Transcode TranscodeCmd `cmd:"" help:"Compress inputs through a codec and decode them back."`
	Mix       MixCmd       `cmd:"" help:"Add noise to a recording at a target SNR."`
	WER       WERCmd       `cmd:"" name:"wer" help:"Score a hypothesis transcript against a reference."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`
}

func main() {
	var cliArgs CLI
	kctx := kong.Parse(&cliArgs,
		kong.Name("audexp"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Help(cli.StyledHelpPrinter(description)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cliArgs.ctx = ctx
	err := kctx.Run(&cliArgs.Globals)
	if cliArgs.logger != nil {
		_ = cliArgs.logger.Sync()
	}
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

type VersionCmd struct{}

func (VersionCmd) Run() error {
	cli.PrintVersion(os.Stdout, version)
	return nil
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/emwave/app"
	"github.com/AnkushinDaniil/emwave/entity/format"
	"github.com/AnkushinDaniil/emwave/entity/mode"
	"github.com/AnkushinDaniil/emwave/entity/parameters"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML parameters file")
	modeFlag := flag.String("mode", "", "demonstration: all, wavelength, amplitude, phase, propagation, spectrum")
	formatFlag := flag.String("format", "", "output format: html, csv, parquet")
	output := flag.String("output", "", "output directory")
	verbose := flag.Bool("v", false, "debug logging")
	prof := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	params, err := loadParameters(*configPath, *modeFlag, *formatFlag, *output)
	if err != nil {
		log.WithError(err).Error("Failed to load parameters")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(params.Output, params, os.Stdout)
	runErr := a.Run(ctx)
	if runErr != nil {
		log.WithError(runErr).Error("Lesson failed")
	}
	if err := a.CustomWave(); err != nil {
		log.WithError(err).Error("Custom wave example failed")
		runErr = err
	}
	if runErr != nil {
		return 1
	}
	return 0
}

func loadParameters(configPath, modeText, formatText, output string) (*parameters.Parameters, error) {
	params := parameters.Default()
	if configPath != "" {
		var err error
		if params, err = parameters.Load(configPath); err != nil {
			return nil, err
		}
	}
	if modeText != "" {
		m, err := mode.UnmarshalText(modeText)
		if err != nil {
			return nil, err
		}
		params.Mode = m
	}
	if formatText != "" {
		f, err := format.UnmarshalText(formatText)
		if err != nil {
			return nil, err
		}
		params.Format = f
	}
	if output != "" {
		params.Output = output
	}
	return params, params.Validate()
}

package export

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/log"
	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
	"github.com/f1viz/f1viz-data-go/pkg/config"
	"github.com/f1viz/f1viz-data-go/pkg/store"
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "export view models as JSON",
	}

	cmd.PersistentFlags().StringVar(&config.OutFile, "out", "",
		"output file (default stdout)")
	cmd.PersistentFlags().BoolVar(&config.Pretty, "pretty", false,
		"indent the JSON output")
	cmd.PersistentFlags().BoolVar(&config.Watch, "watch", false,
		"re-export whenever the dataset directory changes")

	cmd.AddCommand(NewCareerCmd())
	cmd.AddCommand(NewTrajectoryCmd())
	cmd.AddCommand(NewDominanceCmd())
	cmd.AddCommand(NewConversionCmd())
	cmd.AddCommand(NewDNFCmd())
	cmd.AddCommand(NewPodiumCmd())
	cmd.AddCommand(NewFlowCmd())
	cmd.AddCommand(NewReplayCmd())
	cmd.AddCommand(NewContributionsCmd())
	cmd.AddCommand(NewTrackPerformanceCmd())
	cmd.AddCommand(NewMarginsCmd())
	cmd.AddCommand(NewRaceLogCmd())
	cmd.AddCommand(NewOptionsCmd())

	return cmd
}

// shared flag targets of the export subcommands
var (
	startYear     int
	endYear       int
	year          int
	driverID      int
	raceID        int
	constructorID int
	circuitID     int
	topN          int
	positions     []int
	metricArg     string
	policyArg     string
	byCountry     bool
	palettize     bool
)

func window() aggregate.Window {
	return aggregate.Window{Start: startYear, End: endYear}
}

func setupLogger() *log.Logger {
	var logger *log.Logger
	switch {
	case config.LogConfig != "":
		cfg, err := log.LoadConfig(config.LogConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not load log config %s: %v", config.LogConfig, err)
			os.Exit(1)
		}
		logger, err = log.NewWithConfig(cfg, os.Stderr, config.LogFormat,
			log.WithCaller(true), log.AddCallerSkip(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid log config %s: %v", config.LogConfig, err)
			os.Exit(1)
		}
	case config.LogFormat == "json":
		logger = log.New(os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true), log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(os.Stderr,
			parseLogLevel(config.LogLevel, log.DebugLevel),
			log.WithCaller(true), log.AddCallerSkip(1))
	}
	log.ResetDefault(logger)
	return logger
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// runExport loads the dataset, evaluates the view builder and writes the
// result. With --watch it keeps running and re-exports on dataset changes
// until interrupted.
func runExport(cmd *cobra.Command, build func(a *aggregate.Analyzer) (any, error)) error {
	logger := setupLogger()
	ctx := log.AddToContext(cmd.Context(), logger)

	once := func() error {
		s, err := store.Load(ctx, config.DataDir)
		if err != nil {
			return fmt.Errorf("loading dataset from %s: %w", config.DataDir, err)
		}
		view, err := build(aggregate.New(s, aggregate.WithLogger(logger.Named("aggregate"))))
		if err != nil {
			return err
		}
		return writeJSON(view)
	}

	if err := once(); err != nil {
		return err
	}
	if !config.Watch {
		return nil
	}
	return watchLoop(ctx, once)
}

func writeJSON(view any) error {
	indent := 0
	if config.Pretty {
		indent = 2
	}
	data := []byte(oj.JSON(view, indent))
	if config.OutFile == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(config.OutFile, data, 0o644)
}

// watchLoop re-runs the export on every write in the dataset directory.
func watchLoop(ctx context.Context, once func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(config.DataDir); err != nil {
		return err
	}
	logger := log.GetFromContext(ctx).Named("watch")
	logger.Info("watching dataset directory", log.String("dir", config.DataDir))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Info("dataset changed", log.String("file", event.Name))
			if err := once(); err != nil {
				logger.Error("re-export failed", log.ErrorField(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", log.ErrorField(err))
		case v := <-sigChan:
			logger.Debug("got signal", log.Any("signal", v))
			return nil
		}
	}
}

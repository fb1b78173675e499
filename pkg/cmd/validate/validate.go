package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f1viz/f1viz-data-go/log"
	"github.com/f1viz/f1viz-data-go/pkg/config"
	"github.com/f1viz/f1viz-data-go/pkg/store"
)

var strict bool

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "check the dataset for unresolved references",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(cmd)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false,
		"fail on unresolved references instead of just reporting them")

	return cmd
}

func validate(cmd *cobra.Command) error {
	logger := setupLogger()
	ctx := log.AddToContext(cmd.Context(), logger)

	s, err := store.Load(ctx, config.DataDir)
	if err != nil {
		return fmt.Errorf("loading dataset from %s: %w", config.DataDir, err)
	}

	logger.Info("dataset loaded",
		log.Int("seasons", len(s.Seasons())),
		log.Int("races", len(s.AllRaces())),
		log.Int("drivers", len(s.Drivers())),
		log.Int("constructors", len(s.Constructors())),
		log.Int("results", len(s.AllResults())),
		log.Int("qualifying", len(s.AllQualifying())),
		log.Int("standings", len(s.AllStandings())),
		log.Int("lapTimes", len(s.AllLapTimes())),
		log.Int("pitStops", len(s.AllPitStops())))

	issues := 0
	issues += checkResults(s, logger)
	issues += checkRaces(s, logger)
	issues += checkDNFTaxonomy(s, logger)

	if issues == 0 {
		logger.Info("dataset is consistent")
		return nil
	}
	logger.Warn("dataset has unresolved references", log.Int("issues", issues))
	if strict {
		return fmt.Errorf("%d unresolved references", issues)
	}
	return nil
}

// checkResults counts result rows whose foreign keys degrade to sentinels.
func checkResults(s *store.Store, logger *log.Logger) int {
	badDriver, badConstructor, badStatus, badRace := 0, 0, 0, 0
	for _, res := range s.AllResults() {
		if !s.HasDriver(res.DriverID) {
			badDriver++
		}
		if !s.HasConstructor(res.ConstructorID) {
			badConstructor++
		}
		if !s.HasStatus(res.StatusID) {
			badStatus++
		}
		if _, ok := s.Race(res.RaceID); !ok {
			badRace++
		}
	}
	total := badDriver + badConstructor + badStatus + badRace
	if total > 0 {
		logger.Warn("results with unresolved references",
			log.Int("driver", badDriver),
			log.Int("constructor", badConstructor),
			log.Int("status", badStatus),
			log.Int("race", badRace))
	}
	return total
}

func checkRaces(s *store.Store, logger *log.Logger) int {
	bad := 0
	for _, race := range s.AllRaces() {
		if !s.HasCircuit(race.CircuitID) {
			bad++
			logger.Warn("race with unknown circuit",
				log.Int("raceId", race.ID), log.Int("circuitId", race.CircuitID))
		}
	}
	return bad
}

// checkDNFTaxonomy logs how the status table splits into finishes and DNFs so
// classification drift after a dataset update is visible.
func checkDNFTaxonomy(s *store.Store, logger *log.Logger) int {
	finished, dnf := 0, 0
	for _, st := range s.Statuses() {
		if store.IsDNFStatus(st.Status) {
			dnf++
		} else {
			finished++
		}
	}
	logger.Info("status taxonomy",
		log.Int("classifiedFinish", finished),
		log.Int("dnf", dnf))
	return 0
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
		logger, err = log.NewWithConfig(cfg, os.Stderr, config.LogFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid log config %s: %v", config.LogConfig, err)
			os.Exit(1)
		}
	case config.LogFormat == "json":
		logger = log.New(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel))
	default:
		logger = log.DevLogger(os.Stderr, parseLogLevel(config.LogLevel, log.DebugLevel))
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

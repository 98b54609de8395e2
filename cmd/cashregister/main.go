package main

import (
	"cashregister/internal/configuration"
	"cashregister/internal/console"
	"cashregister/internal/database"
	"cashregister/internal/logger"
	"cashregister/internal/menu"
	"encoding/json"
	"flag"
	"github.com/pkg/errors"
	"io"
	"math/rand"
	"os"
	"time"
)

func main() {
	if err := runApp(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func runApp(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (err error) {
	logOutput := stderr
	appLogger := logger.NewLogger(logger.LevelError, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
			err = errors.Errorf("panic: %v", r)
		}
	}()

	flags := flag.NewFlagSet("cashregister", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a TOML configuration file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	config := configuration.Default()
	if *configPath != "" {
		config, err = configuration.GetConfig(*configPath)
		if err != nil {
			appLogger.Error("Error getting configuration from", *configPath+":", err)
			return err
		}
	}

	if config.LogToFile {
		logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogLevel, logOutput)
	defer func() {
		_ = appLogger.Sync()
	}()

	if config.LogLevel >= logger.LevelDebug {
		conf, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			appLogger.Error("Error marshalling Config to JSON:", err)
			return err
		}
		appLogger.Debugf("Config:\n%s", conf)
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	appLogger.Info("Seeding item generator with", seed)

	m := menu.Menu{
		DB: database.Database{
			Items: database.NewInventory(config.InitialCapacity, rand.New(rand.NewSource(seed)), config.ItemLimits),
			Sales: database.NewLedger(config.LedgerCapacity),
		},
		Input:      console.NewReader(stdin),
		Output:     stdout,
		Logger:     appLogger,
		Now:        time.Now,
		LastItemID: config.InitialItemID,
		MaxRetries: config.MenuRetries,
		DateLayout: config.DateLayout,
	}
	m.Run()
	return nil
}

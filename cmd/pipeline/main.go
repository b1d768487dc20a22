package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
)

const usage = `Usage: pipeline [-config config.yaml] <command> [flags]

Commands:
  summarize <audio>   summarize one recording
  watch               process recordings dropped into paths.input
  serve               run the HTTP API
  status              check ffmpeg, speech and language model setup
  info                print the effective configuration
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	envFile := flag.String("env", ".env", "optional .env file loaded before the config")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(exitCode(err))
	}

	logger.Init(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "summarize":
		err = runSummarize(ctx, cfg, args)
	case "watch":
		err = runWatch(ctx, cfg)
	case "serve":
		err = runServe(ctx, cfg)
	case "status":
		err = runStatus(ctx, cfg, os.Stdout)
	case "info":
		err = runInfo(cfg, os.Stdout)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error(ctx, "%s failed: %v", cmd, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrConfiguration):
		return 3
	case errors.Is(err, pipeline.ErrInputValidation):
		return 4
	default:
		return 1
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

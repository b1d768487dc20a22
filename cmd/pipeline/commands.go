package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/httpapi"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-digest/internal/watcher"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
)

func runSummarize(ctx context.Context, cfg *config.Config, args []string) error {
	log := logger.L()
	fs := flag.NewFlagSet("summarize", flag.ContinueOnError)
	title := fs.String("title", "", "meeting title (default: Meeting <date> <time>)")
	noTranscript := fs.Bool("no-transcript", !cfg.Output.SaveTranscript, "do not save the transcript")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("summarize needs exactly one audio file")
	}

	p, err := pipeline.Build(cfg, executor.New(), log)
	if err != nil {
		return err
	}

	result, err := p.Process(ctx, pipeline.Request{
		AudioPath:      fs.Arg(0),
		Title:          *title,
		SaveTranscript: !*noTranscript,
	})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(os.Stdout, result)
	return nil
}

func printResult(w io.Writer, r *pipeline.Result) {
	fmt.Fprintf(w, "\n%s\n\n%s\n", r.Title, r.Summary)
	if len(r.Topics) > 0 {
		fmt.Fprintln(w, "\nKey topics:")
		for _, t := range r.Topics {
			fmt.Fprintf(w, "  - %s\n", t)
		}
	}
	if len(r.Decisions) > 0 {
		fmt.Fprintln(w, "\nDecisions:")
		for _, d := range r.Decisions {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}
	if len(r.ActionItems) > 0 {
		fmt.Fprintln(w, "\nAction items:")
		for _, a := range r.ActionItems {
			fmt.Fprintf(w, "  - %s (owner: %s, deadline: %s)\n", a.Task, a.Owner, a.Deadline)
		}
	}
	if files := r.Metadata.OutputFiles; files != nil {
		fmt.Fprintf(w, "\nSaved: %s, %s\n", files.SummaryJSON, files.SummaryTXT)
	}
}

func runWatch(ctx context.Context, cfg *config.Config) error {
	log := logger.L()
	p, err := pipeline.Build(cfg, executor.New(), log)
	if err != nil {
		return err
	}

	handler := func(ctx context.Context, path string) error {
		_, err := p.Process(ctx, pipeline.Request{AudioPath: path, SaveTranscript: cfg.Output.SaveTranscript})
		return err
	}

	w, err := watcher.New(watcher.Options{
		InputDir:    cfg.Paths.Input,
		Extensions:  cfg.Audio.SupportedFormats,
		SettleDelay: cfg.Watcher.SettleDelay,
	}, watcher.ArchiveAfter(handler, cfg.Paths.Archived, log), log)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Meeting digest is watching %s (output: %s). Press Ctrl+C to stop", cfg.Paths.Input, cfg.Paths.Output)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Watcher stopped")
	return nil
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log := logger.L()
	p, err := pipeline.Build(cfg, executor.New(), log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler: httpapi.NewRouter(p, httpapi.Options{
			TempDir:        cfg.Paths.Temp,
			MaxUploadBytes: cfg.Audio.MaxFileSizeBytes,
			Info:           httpapi.NewInfo(cfg),
		}, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "HTTP server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runStatus reports whether each external dependency is usable.
func runStatus(ctx context.Context, cfg *config.Config, w io.Writer) error {
	exec := executor.New()
	failed := 0
	report := func(name string, err error, detail string) {
		if err != nil {
			failed++
			fmt.Fprintf(w, "  [FAIL] %-14s %v\n", name, err)
			return
		}
		fmt.Fprintf(w, "  [ OK ] %-14s %s\n", name, detail)
	}

	fmt.Fprintln(w, "Meeting digest status")

	ffmpeg, err := exec.LookPath(cfg.FFmpeg.BinaryPath)
	report("ffmpeg", err, ffmpeg)

	switch cfg.Transcription.Backend {
	case config.BackendWhisperCPP:
		bin, err := exec.LookPath(cfg.Transcription.Whisper.BinaryPath)
		report("whisper binary", err, bin)
		_, err = os.Stat(cfg.Transcription.Whisper.ModelPath)
		report("whisper model", err, cfg.Transcription.Whisper.ModelPath)
	case config.BackendOpenAI:
		report("speech-to-text", nil, "openai-compatible "+cfg.Transcription.OpenAI.Model)
	}

	switch cfg.LLM.Backend {
	case config.BackendGemini:
		report("llm", nil, fmt.Sprintf("gemini %s (%d keys)", cfg.LLM.Gemini.Model, len(cfg.LLM.Gemini.APIKeys)))
	case config.BackendOpenAI:
		report("llm", nil, fmt.Sprintf("openai-compatible %s at %s", cfg.LLM.OpenAI.Model, cfg.LLM.OpenAI.BaseURL))
	}

	if failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	return nil
}

// runInfo prints the effective configuration with secrets masked.
func runInfo(cfg *config.Config, w io.Writer) error {
	masked := *cfg
	masked.Transcription.OpenAI.APIKey = mask(masked.Transcription.OpenAI.APIKey)
	masked.LLM.OpenAI.APIKey = mask(masked.LLM.OpenAI.APIKey)
	keys := make([]string, len(cfg.LLM.Gemini.APIKeys))
	for i, k := range cfg.LLM.Gemini.APIKeys {
		keys[i] = mask(k)
	}
	masked.LLM.Gemini.APIKeys = keys

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(masked); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

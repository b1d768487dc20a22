package pipeline

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/output"
	"github.com/nguyentantai21042004/meeting-digest/internal/segment"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-digest/internal/transcriber"
)

const transcriptNotSaved = "[Not saved]"

// Process runs load, transcribe, merge, clean, chunk, summarize and save in order.
// Input validation happens before any stage; any stage failure aborts the run with a *StageError.
func (p *implPipeline) Process(ctx context.Context, req Request) (*Result, error) {
	if err := p.c.Loader.Validate(req.AudioPath); err != nil {
		return nil, err
	}

	if err := p.runs.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.runs.release()

	startTime := p.now()
	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = "Meeting " + startTime.Format("2006-01-02 15:04")
	}

	meta := Metadata{
		RunID:     uuid.NewString(),
		Title:     title,
		Timestamp: startTime,
		Stages:    []StageMetric{},
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting meeting summarization [%s]: %s", meta.RunID, req.AudioPath)
	p.logger.Info(ctx, "========================================")

	// Stage 1: audio loading
	var signal *audio.Signal
	err := p.stage(ctx, &meta, StageAudioLoading, func() (int, error) {
		s, info, err := p.c.Loader.Load(ctx, req.AudioPath)
		if err != nil {
			return 0, err
		}
		signal, meta.Audio = s, info
		return len(s.Samples), nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 2: chunked speech-to-text on the global timeline
	var transcript *transcriber.LongResult
	err = p.stage(ctx, &meta, StageTranscription, func() (int, error) {
		res, err := transcriber.TranscribeLong(ctx, p.c.Transcriber, *signal,
			p.cfg.Audio.ChunkDuration, p.cfg.Audio.Overlap, p.logger)
		if err != nil {
			return 0, err
		}
		transcript = res
		meta.Transcription = TranscriptionStats{
			Language:     res.Language,
			NumSegments:  len(res.Segments),
			RawLength:    utf8.RuneCountInString(res.Text),
			Chunks:       res.Chunks,
			FailedChunks: res.FailedChunks,
		}
		return len(res.Segments), nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 3: repair chunk seams and clean text
	var formatted, cleaned string
	err = p.stage(ctx, &meta, StageCleaning, func() (int, error) {
		merged := segment.Merge(transcript.Segments,
			p.cfg.Transcription.MinSegmentDuration, p.cfg.Transcription.DuplicateThreshold)
		formatted = segment.Format(merged)

		text := segment.JoinText(merged)
		if text == "" {
			text = transcript.Text
		}
		cleaned = p.c.Text.Clean(ctx, text)

		meta.Cleaning = CleaningStats{
			SegmentsAfterMerge: len(merged),
			CleanedLength:      utf8.RuneCountInString(cleaned),
			KeyPhrases:         p.c.Text.KeyPhrases(cleaned),
		}
		return meta.Cleaning.CleanedLength, nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 4: sentence-aligned text chunks
	var chunks []string
	err = p.stage(ctx, &meta, StageChunking, func() (int, error) {
		chunks = p.c.Text.Split(ctx, cleaned, p.cfg.Text.MaxTokensPerChunk)
		meta.Chunking = ChunkingStats{
			NumChunks:      len(chunks),
			MaxChunkTokens: p.cfg.Text.MaxTokensPerChunk,
			UsedChunks:     min(len(chunks), p.cfg.Summary.MaxChunks),
		}
		return len(chunks), nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 5: summarization over the leading chunks
	var summary *summarizer.Summary
	err = p.stage(ctx, &meta, StageSummarization, func() (int, error) {
		input := strings.Join(chunks[:meta.Chunking.UsedChunks], " ")
		s, err := p.c.Summarizer.Summarize(ctx, input)
		if err != nil {
			return 0, err
		}
		summary = s
		meta.Summary = SummaryStats{
			NumTopics:      len(s.Topics),
			NumDecisions:   len(s.Decisions),
			NumActionItems: len(s.ActionItems),
		}
		return len(s.Topics) + len(s.Decisions) + len(s.ActionItems), nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 6: output files
	err = p.stage(ctx, &meta, StageOutput, func() (int, error) {
		var duration float64
		if meta.Audio != nil {
			duration = meta.Audio.DurationMinutes
		}
		files, err := p.c.Writer.Save(ctx, output.Report{
			Title:           title,
			Timestamp:       startTime,
			DurationMinutes: duration,
			Language:        meta.Transcription.Language,
			NumSegments:     meta.Transcription.NumSegments,
			Stages:          append([]StageMetric(nil), meta.Stages...),
			Summary:         summary,
			Transcript:      formatted,
			SaveTranscript:  req.SaveTranscript,
		})
		if err != nil {
			return 0, err
		}
		meta.OutputFiles = files
		return files.Count(), nil
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Title:       title,
		Transcript:  transcriptNotSaved,
		Summary:     summary.Summary,
		Topics:      summary.Topics,
		Decisions:   summary.Decisions,
		ActionItems: summary.ActionItems,
		Metadata:    meta,
	}
	if req.SaveTranscript {
		result.Transcript = formatted
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Pipeline complete [%s] in %s", meta.RunID, p.now().Sub(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "Outputs saved to: %s", p.cfg.Paths.Output)
	p.logger.Info(ctx, "========================================")
	return result, nil
}

// stage times fn and records its output size. A failure is wrapped in a *StageError.
func (p *implPipeline) stage(ctx context.Context, meta *Metadata, name string, fn func() (int, error)) error {
	start := p.now()
	p.logger.Info(ctx, "Stage %s started", name)

	size, err := fn()
	elapsed := p.now().Sub(start)
	if err != nil {
		p.logger.Error(ctx, "Stage %s failed after %s: %v", name, elapsed, err)
		return &StageError{Stage: name, Err: err}
	}

	meta.Stages = append(meta.Stages, StageMetric{
		Name:            name,
		DurationSeconds: elapsed.Seconds(),
		OutputSize:      size,
	})
	p.logger.Info(ctx, "Stage %s completed in %s (size %d)", name, elapsed.Round(time.Millisecond), size)
	return nil
}

package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/output"
)

// Stage names, in execution order.
const (
	StageAudioLoading  = "audio_loading"
	StageTranscription = "transcription"
	StageCleaning      = "cleaning"
	StageChunking      = "chunking"
	StageSummarization = "summarization"
	StageOutput        = "output"
)

// Metadata records what each stage did during one run.
type Metadata struct {
	RunID         string             `json:"run_id"`
	Title         string             `json:"meeting_title"`
	Timestamp     time.Time          `json:"timestamp"`
	Audio         *audio.Info        `json:"audio,omitempty"`
	Transcription TranscriptionStats `json:"transcription"`
	Cleaning      CleaningStats      `json:"cleaning"`
	Chunking      ChunkingStats      `json:"chunking"`
	Summary       SummaryStats       `json:"summary"`
	Stages        []StageMetric      `json:"stages"`
	OutputFiles   *output.Files      `json:"output_files,omitempty"`
}

// StageMetric is the wall-clock duration and output size of one stage.
// Size is counted in the stage's natural unit: samples, segments, characters, chunks or files.
type StageMetric struct {
	Name            string  `json:"name"`
	DurationSeconds float64 `json:"duration_seconds"`
	OutputSize      int     `json:"output_size"`
}

type TranscriptionStats struct {
	Language     string `json:"language"`
	NumSegments  int    `json:"num_segments"`
	RawLength    int    `json:"raw_length"`
	Chunks       int    `json:"chunks"`
	FailedChunks int    `json:"failed_chunks"`
}

type CleaningStats struct {
	SegmentsAfterMerge int      `json:"segments_after_merge"`
	CleanedLength      int      `json:"cleaned_length"`
	KeyPhrases         []string `json:"key_phrases"`
}

type ChunkingStats struct {
	NumChunks      int `json:"num_chunks"`
	MaxChunkTokens int `json:"max_chunk_tokens"`
	UsedChunks     int `json:"used_chunks"`
}

type SummaryStats struct {
	NumTopics      int `json:"num_topics"`
	NumDecisions   int `json:"num_decisions"`
	NumActionItems int `json:"num_action_items"`
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid marks configuration values that can never produce a valid run.
var ErrInvalid = errors.New("invalid configuration")

const (
	BackendWhisperCPP = "whispercpp"
	BackendOpenAI     = "openai"
	BackendGemini     = "gemini"
)

type Config struct {
	Audio         AudioConfig         `yaml:"audio" env-prefix:"AUDIO_"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Transcription TranscriptionConfig `yaml:"transcription" env-prefix:"STT_"`
	LLM           LLMConfig           `yaml:"llm" env-prefix:"LLM_"`
	Text          TextConfig          `yaml:"text"`
	Summary       SummaryConfig       `yaml:"summary"`
	Paths         PathsConfig         `yaml:"paths"`
	Output        OutputConfig        `yaml:"output"`
	Logging       LoggingConfig       `yaml:"logging"`
	Server        ServerConfig        `yaml:"server"`
	Watcher       WatcherConfig       `yaml:"watcher"`

	// prefilled marks a config built from Default, where zero is an explicit value
	// for settings whose zero is meaningful (overlap, duplicate threshold, min segment duration).
	prefilled bool
}

type AudioConfig struct {
	SampleRate       int           `yaml:"sample_rate"`
	ChunkDuration    time.Duration `yaml:"chunk_duration" env:"CHUNK_DURATION"`
	Overlap          time.Duration `yaml:"overlap" env:"OVERLAP"`
	Normalize        bool          `yaml:"normalize"`
	MaxFileSizeBytes int64         `yaml:"max_file_size_bytes"`
	SupportedFormats []string      `yaml:"supported_formats"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path" env:"FFMPEG_PATH"`
}

type TranscriptionConfig struct {
	Backend            string        `yaml:"backend" env:"BACKEND"`
	Language           string        `yaml:"language" env:"LANGUAGE"`
	Task               string        `yaml:"task"`
	MinSegmentDuration float64       `yaml:"min_segment_duration"`
	DuplicateThreshold float64       `yaml:"duplicate_threshold"`
	Whisper            WhisperConfig `yaml:"whisper"`
	OpenAI             OpenAIConfig  `yaml:"openai" env-prefix:"OPENAI_"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path" env:"WHISPER_MODEL_PATH"`
	BinaryPath string `yaml:"binary_path" env:"WHISPER_BINARY_PATH"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
	APIKey  string `yaml:"api_key" env:"API_KEY"`
	Model   string `yaml:"model" env:"MODEL"`
}

type LLMConfig struct {
	Backend     string       `yaml:"backend" env:"BACKEND"`
	Temperature float32      `yaml:"temperature"`
	TopP        float32      `yaml:"top_p"`
	Gemini      GeminiConfig `yaml:"gemini" env-prefix:"GEMINI_"`
	OpenAI      OpenAIConfig `yaml:"openai" env-prefix:"OPENAI_"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model" env:"MODEL"`
	BaseURL string   `yaml:"base_url" env:"BASE_URL"`
	APIKeys []string `yaml:"api_keys" env:"API_KEYS" env-separator:","`
}

type TextConfig struct {
	MaxTokensPerChunk int `yaml:"max_tokens_per_chunk"`
	// FillerWords left unset selects the default set; an explicit empty list disables removal.
	FillerWords []string `yaml:"filler_words"`
}

// SummaryConfig caps of 0 mean no cap once the config comes from Load.
type SummaryConfig struct {
	WindowChars        int    `yaml:"window_chars"`
	MinTranscriptChars int    `yaml:"min_transcript_chars"`
	MaxChunks          int    `yaml:"max_chunks"`
	MaxTopics          int    `yaml:"max_topics"`
	MaxDecisions       int    `yaml:"max_decisions"`
	MaxActionItems     int    `yaml:"max_action_items"`
	Length             string `yaml:"length"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output" env:"OUTPUT_DIR"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type OutputConfig struct {
	SaveTranscript bool `yaml:"save_transcript"`
	Docx           bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" env:"PORT"`
}

type WatcherConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// DefaultFillerWords is the filler set removed from transcripts unless overridden.
var DefaultFillerWords = []string{
	"um", "uh", "er", "ah", "hmm", "you know", "i mean", "like",
	"basically", "actually", "honestly", "literally", "right",
	"okay", "so", "just",
}

// Default returns a config with every default applied. Load decodes on top of it,
// so a value written as zero in the file stays zero.
func Default() Config {
	var c Config
	c.setDefaults()
	c.prefilled = true
	return c
}

// Validate fills defaults and rejects values that cannot run.
func (c *Config) Validate() error {
	c.setDefaults()
	return c.check()
}

func (c *Config) setDefaults() {
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.ChunkDuration == 0 {
		c.Audio.ChunkDuration = 15 * time.Minute
	}
	if c.Audio.Overlap == 0 && !c.prefilled {
		c.Audio.Overlap = 30 * time.Second
	}
	if c.Audio.MaxFileSizeBytes == 0 {
		c.Audio.MaxFileSizeBytes = 5 << 30
	}
	if len(c.Audio.SupportedFormats) == 0 {
		c.Audio.SupportedFormats = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac"}
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}

	if c.Transcription.Backend == "" {
		c.Transcription.Backend = BackendWhisperCPP
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "en"
	}
	if c.Transcription.Task == "" {
		c.Transcription.Task = "transcribe"
	}
	if !c.prefilled {
		if c.Transcription.MinSegmentDuration == 0 {
			c.Transcription.MinSegmentDuration = 1.0
		}
		if c.Transcription.DuplicateThreshold == 0 {
			c.Transcription.DuplicateThreshold = 0.8
		}
	}
	if c.Transcription.Whisper.BinaryPath == "" {
		c.Transcription.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Transcription.Whisper.Threads == 0 {
		c.Transcription.Whisper.Threads = 8
	}
	if c.Transcription.OpenAI.Model == "" {
		c.Transcription.OpenAI.Model = "whisper-1"
	}

	if c.LLM.Backend == "" {
		c.LLM.Backend = BackendOpenAI
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.TopP == 0 {
		c.LLM.TopP = 0.9
	}
	if c.LLM.Gemini.Model == "" {
		c.LLM.Gemini.Model = "gemini-2.5-flash"
	}
	if c.LLM.OpenAI.BaseURL == "" {
		c.LLM.OpenAI.BaseURL = "http://localhost:11434/v1"
	}
	if c.LLM.OpenAI.Model == "" {
		c.LLM.OpenAI.Model = "mistral:7b"
	}

	if c.Text.MaxTokensPerChunk == 0 {
		c.Text.MaxTokensPerChunk = 1500
	}
	if c.Text.FillerWords == nil {
		c.Text.FillerWords = append([]string(nil), DefaultFillerWords...)
	}

	if c.Summary.WindowChars == 0 {
		c.Summary.WindowChars = 2000
	}
	if c.Summary.MinTranscriptChars == 0 {
		c.Summary.MinTranscriptChars = 50
	}
	if c.Summary.MaxChunks == 0 {
		c.Summary.MaxChunks = 3
	}
	if c.Summary.MaxTopics == 0 {
		c.Summary.MaxTopics = 10
	}
	if c.Summary.MaxDecisions == 0 {
		c.Summary.MaxDecisions = 5
	}
	if c.Summary.MaxActionItems == 0 {
		c.Summary.MaxActionItems = 10
	}
	if c.Summary.Length == "" {
		c.Summary.Length = "medium"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Watcher.SettleDelay == 0 {
		c.Watcher.SettleDelay = 500 * time.Millisecond
	}
}

func (c *Config) check() error {
	if c.Audio.SampleRate != 16000 {
		return fmt.Errorf("%w: audio.sample_rate must be 16000, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	if c.Audio.ChunkDuration <= 0 {
		return fmt.Errorf("%w: audio.chunk_duration must be positive", ErrInvalid)
	}
	if c.Audio.Overlap < 0 {
		return fmt.Errorf("%w: audio.overlap must not be negative", ErrInvalid)
	}
	if c.Audio.Overlap >= c.Audio.ChunkDuration {
		return fmt.Errorf("%w: audio.overlap %s must be shorter than audio.chunk_duration %s",
			ErrInvalid, c.Audio.Overlap, c.Audio.ChunkDuration)
	}

	switch c.Transcription.Backend {
	case BackendWhisperCPP:
		if c.Transcription.Whisper.ModelPath == "" {
			return fmt.Errorf("%w: transcription.whisper.model_path is required", ErrInvalid)
		}
	case BackendOpenAI:
	default:
		return fmt.Errorf("%w: unknown transcription.backend %q", ErrInvalid, c.Transcription.Backend)
	}
	if c.Transcription.Task != "transcribe" && c.Transcription.Task != "translate" {
		return fmt.Errorf("%w: transcription.task must be transcribe or translate", ErrInvalid)
	}
	if c.Transcription.DuplicateThreshold < 0 || c.Transcription.DuplicateThreshold > 1 {
		return fmt.Errorf("%w: transcription.duplicate_threshold must be within [0, 1]", ErrInvalid)
	}
	if c.Transcription.MinSegmentDuration < 0 {
		return fmt.Errorf("%w: transcription.min_segment_duration must not be negative", ErrInvalid)
	}

	switch c.LLM.Backend {
	case BackendOpenAI:
	case BackendGemini:
		if len(c.LLM.Gemini.APIKeys) == 0 {
			return fmt.Errorf("%w: llm.gemini.api_keys is required", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown llm.backend %q", ErrInvalid, c.LLM.Backend)
	}

	if c.Text.MaxTokensPerChunk <= 0 {
		return fmt.Errorf("%w: text.max_tokens_per_chunk must be positive", ErrInvalid)
	}
	if err := c.Summary.check(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json", ErrInvalid)
	}

	return nil
}

func (s SummaryConfig) check() error {
	positive := []struct {
		name  string
		value int
	}{
		{"summary.window_chars", s.WindowChars},
		{"summary.max_chunks", s.MaxChunks},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, f.name, f.value)
		}
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"summary.min_transcript_chars", s.MinTranscriptChars},
		{"summary.max_topics", s.MaxTopics},
		{"summary.max_decisions", s.MaxDecisions},
		{"summary.max_action_items", s.MaxActionItems},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, f.name, f.value)
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT

// Package config loads the runtime configuration of the lvframe tools.
//
// Sources are layered: built-in defaults, then an optional YAML file, then
// environment variables prefixed with LVFRAME_ (LVFRAME_READER_SEP,
// LVFRAME_WRITER_PRECISION, ...). The merged result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvframe/textio"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LVFRAME"

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete configuration. Leaf fields use split_words so the
// variable name is derived from the field (IndexCols -> INDEX_COLS) and no
// unprefixed fallback variable is consulted.
type Config struct {
	Reader  ReaderConfig  `yaml:"reader" envconfig:"READER"`
	Writer  WriterConfig  `yaml:"writer" envconfig:"WRITER"`
	History HistoryConfig `yaml:"history" envconfig:"HISTORY"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// ReaderConfig configures textio.Reader.
type ReaderConfig struct {
	Sep       string `yaml:"sep" split_words:"true" validate:"required"`
	Header    int    `yaml:"header" split_words:"true" validate:"min=0"`
	IndexCols int    `yaml:"index_cols" split_words:"true" validate:"min=0"`
	KeepNA    bool   `yaml:"keep_na" split_words:"true"`
	Ignore    []int  `yaml:"ignore" split_words:"true" validate:"dive,min=0"`
}

// WriterConfig configures textio.Writer.
type WriterConfig struct {
	Sep       string `yaml:"sep" split_words:"true" validate:"required"`
	Precision int    `yaml:"precision" split_words:"true" validate:"min=0,max=17"`
	Header    bool   `yaml:"header" split_words:"true"`
	Index     bool   `yaml:"index" split_words:"true"`
}

// HistoryConfig configures the undo history. Capacity 0 means unbounded.
type HistoryConfig struct {
	Capacity int `yaml:"capacity" split_words:"true" validate:"min=0"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=json text"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Reader: ReaderConfig{
			Sep:       textio.DefaultSep,
			Header:    textio.DefaultHeader,
			IndexCols: textio.DefaultIndexCols,
			KeepNA:    textio.DefaultKeepNA,
		},
		Writer: WriterConfig{
			Sep:       textio.DefaultSep,
			Precision: textio.DefaultPrecision,
			Header:    textio.DefaultWriteHeader,
			Index:     textio.DefaultWriteIndex,
		},
		History: HistoryConfig{Capacity: 100},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration.
//
// Implementation:
//   - Stage 1: start from Default.
//   - Stage 2: overlay the YAML file at path (skipped when path is "");
//     unknown keys are rejected.
//   - Stage 3: overlay LVFRAME_* environment variables; unset variables keep
//     the value from the previous stages.
//   - Stage 4: expand separator aliases and validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	cfg.Reader.Sep = expandSep(cfg.Reader.Sep)
	cfg.Writer.Sep = expandSep(cfg.Writer.Sep)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// expandSep maps the spellings usable in YAML and the environment onto the
// separator itself.
func expandSep(s string) string {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return "\t"
	case "comma":
		return ","
	case "semicolon":
		return ";"
	case "space":
		return " "
	default:
		return s
	}
}

// TextReader builds the configured textio.Reader.
func (c *Config) TextReader() textio.Reader {
	r := textio.NewReader().
		Sep(c.Reader.Sep).
		Header(c.Reader.Header).
		IndexCols(c.Reader.IndexCols).
		KeepNA(c.Reader.KeepNA)
	if len(c.Reader.Ignore) > 0 {
		r = r.Ignore(c.Reader.Ignore...)
	}

	return r
}

// TextWriter builds the configured textio.Writer.
func (c *Config) TextWriter() textio.Writer {
	return textio.NewWriter(
		textio.WithSep(c.Writer.Sep),
		textio.WithPrecision(c.Writer.Precision),
		textio.WithHeader(c.Writer.Header),
		textio.WithIndex(c.Writer.Index),
	)
}

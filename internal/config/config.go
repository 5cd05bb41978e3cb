// =============================================================================
// konvertorMzdy - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file. Every setting has a
// default so the tool runs without any configuration file at all; a missing
// file is not an error.
//
// CONFIGURATION SURFACE:
//   - directories (output, archive)
//   - output file naming ({name}, {uuid}, {timestamp} placeholders)
//   - conversion switches (force_delimiter, keep_empty_attributes)
//   - default document attributes, pre-filled the way the payroll team
//     usually books these documents
//   - log level
//
// The canonical column pattern sets are fixed in code and deliberately not
// configurable.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// OutputDir is where generated XML files are written when the caller
	// gives no explicit output path.
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is where processed input files are moved after a
	// successful conversion. Empty disables archival.
	ArchiveDir string `yaml:"archive_dir"`

	// OutputNameFormat names generated files. Placeholders: {name} (input
	// base name without extension), {uuid}, {timestamp}.
	OutputNameFormat string `yaml:"output_name_format"`

	// ForceDelimiter overrides delimiter sniffing when non-empty, e.g. ";".
	ForceDelimiter string `yaml:"force_delimiter"`

	// KeepEmptyAttributes emits empty XML attributes instead of omitting
	// them.
	KeepEmptyAttributes bool `yaml:"keep_empty_attributes"`

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// Document holds default values for the document attributes; CLI flags
	// override them per run.
	Document DocumentDefaults `yaml:"document"`
}

// DocumentDefaults are the pre-filled uctovny_doklad attributes.
type DocumentDefaults struct {
	// Number is the default document number (cislo_ud); usually per run.
	Number string `yaml:"cislo_ud"`

	// Date is the default document date (datum_ud); usually per run.
	Date string `yaml:"datum_ud"`

	// MandateID is the default mandant (mandant_id).
	MandateID string `yaml:"mandant_id"`

	// Kind is the default document kind (druh_ud).
	Kind string `yaml:"druh_ud"`

	// Type is the default document type (typ_ud).
	Type string `yaml:"typ_ud"`

	// Text is the default document text (text_ud).
	Text string `yaml:"text_ud"`
}

// Load reads the configuration from path. A missing file yields the default
// configuration; a present but unparsable file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills every unset option.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{name}_{timestamp}.xml"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	// Pre-filled booking defaults for payroll documents.
	if cfg.Document.MandateID == "" {
		cfg.Document.MandateID = "1"
	}
	if cfg.Document.Kind == "" {
		cfg.Document.Kind = "ID mzdy"
	}
	if cfg.Document.Type == "" {
		cfg.Document.Type = "I"
	}
}

// EnsureDirectories creates the configured directories when they do not
// exist.
func (cfg *Config) EnsureDirectories() error {
	dirs := []string{cfg.OutputDir}
	if cfg.ArchiveDir != "" {
		dirs = append(dirs, cfg.ArchiveDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Delimiter resolves the forced delimiter, handling the spellings users put
// in config files and flags. Returns 0 when sniffing should decide.
func (cfg *Config) Delimiter() rune {
	return ParseDelimiter(cfg.ForceDelimiter)
}

// ParseDelimiter maps a delimiter spelling to its rune. Empty means "sniff".
func ParseDelimiter(s string) rune {
	switch s {
	case "":
		return 0
	case "\\t", "tab", "TAB":
		return '\t'
	case "|", "pipe", "PIPE":
		return '|'
	case ";", "semicolon":
		return ';'
	case ",", "comma":
		return ','
	default:
		return []rune(s)[0]
	}
}

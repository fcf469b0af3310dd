package rope

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// config.go controls boundary-safety and line-counting behavior at
// runtime rather than at build time, so the same binary can serve
// callers with different boundary-safety needs (e.g. a plain line
// editor vs. an input method that must never tear a combining sequence
// apart). CRLF-pair safety is never optional; it is load-bearing for
// LenLines and is checked unconditionally by boundary.go.

// Config controls the boundary-safety and line-counting behavior of a
// Rope. The zero value equals DefaultConfig().
type Config struct {
	// EnforceGraphemeBoundaries, when true, forbids every leaf split
	// (insert, remove, SplitAt) from landing inside a grapheme cluster, on
	// top of the UTF-8 and CRLF guarantees that always hold. This costs an
	// extra segmentation pass per split and is off by default.
	EnforceGraphemeBoundaries bool

	// LineType records a preferred line-break flavor, as loaded by
	// LoadConfig. The Rope does not read it: LenLines, ByteToLine,
	// LineToByte and Line always take their flavor as an argument.
	LineType LineType
}

// DefaultConfig returns the Config new Ropes use when none is supplied:
// grapheme enforcement off, LineType LineLF.
func DefaultConfig() *Config {
	return &Config{
		EnforceGraphemeBoundaries: false,
		LineType:                  LineLF,
	}
}

// yamlConfig mirrors Config's fields for decoding; kept separate so Config
// itself never needs yaml struct tags sprinkled through its public doc
// comments.
type yamlConfig struct {
	EnforceGraphemeBoundaries bool   `yaml:"enforce_grapheme_boundaries"`
	LineType                  string `yaml:"line_type"`
}

// LoadConfig reads a YAML document of the form:
//
//	enforce_grapheme_boundaries: true
//	line_type: unicode
//
// line_type may be "lf", "lf_cr", or "unicode"; it defaults to "lf" when
// absent.
func LoadConfig(r io.Reader) (*Config, error) {
	var yc yamlConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&yc); err != nil {
		if err == io.EOF {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("rope: decoding config: %w", err)
	}

	cfg := &Config{EnforceGraphemeBoundaries: yc.EnforceGraphemeBoundaries}
	switch yc.LineType {
	case "", "lf":
		cfg.LineType = LineLF
	case "lf_cr":
		cfg.LineType = LineLFCR
	case "unicode":
		cfg.LineType = LineUnicode
	default:
		return nil, fmt.Errorf("rope: unknown line_type %q", yc.LineType)
	}
	return cfg, nil
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/quantize"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// MaxDimension bounds Width and Height.
const MaxDimension = 1 << 15

// TailPolicy decides what happens to the pixels left over when the width is
// not a multiple of the lane count.
type TailPolicy int

const (
	// TailStrict rejects such widths in Validate.
	TailStrict TailPolicy = iota // strict

	// TailSkip never computes the remainder; those bytes keep their
	// previous value.
	TailSkip // skip

	// TailPad evaluates the remainder as a full lane group into scratch
	// space and copies back only the valid pixels.
	TailPad // pad
)

// TailPolicies lists every tail policy in declaration order.
func TailPolicies() []TailPolicy {
	return []TailPolicy{TailStrict, TailSkip, TailPad}
}

// ParseTailPolicy parses a policy name as produced by TailPolicy.String.
func ParseTailPolicy(name string) (TailPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range TailPolicies() {
		if p.String() == name {
			return p, nil
		}
	}
	return TailStrict, fmt.Errorf("%w: unknown tail policy %q", ErrInvalidConfig, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p TailPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *TailPolicy) UnmarshalText(text []byte) error {
	v, err := ParseTailPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Config holds everything a Renderer and a benchmark run need.
// The zero value is not valid; start from DefaultConfig.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Frames int `toml:"frames"`

	// Lanes is the lane group width, 4 or 8. Zero picks the width that
	// matches the CPU.
	Lanes int `toml:"lanes"`

	Variant   string            `toml:"variant"`
	Quantizer quantize.Strategy `toml:"quantizer"`
	TableSize int               `toml:"table-size"`
	Tail      TailPolicy        `toml:"tail"`

	// Workers sizes the row pool; zero uses GOMAXPROCS.
	Workers int `toml:"workers"`

	// RowBatch is the number of rows a worker claims at a time.
	RowBatch int `toml:"row-batch"`
}

// DefaultConfig returns the standard benchmark: 100 frames of the classic
// variant at 800x600 with exact quantization.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		Frames:    100,
		Variant:   Classic.Name,
		Quantizer: quantize.Exact,
		TableSize: quantize.DefaultTableSize,
		Tail:      TailStrict,
		RowBatch:  4,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from the
// file keep their defaults; unknown keys are an error. The result is not
// validated, so callers can apply overrides first.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}
	return cfg, nil
}

// EffectiveLanes resolves Lanes, mapping zero to hwy.PreferredLanes.
func (c Config) EffectiveLanes() int {
	if c.Lanes == 0 {
		return hwy.PreferredLanes()
	}
	return c.Lanes
}

// Validate reports every problem with c, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Width <= 0 || c.Width > MaxDimension {
		bad("width %d out of range [1, %d]", c.Width, MaxDimension)
	}
	if c.Height <= 0 || c.Height > MaxDimension {
		bad("height %d out of range [1, %d]", c.Height, MaxDimension)
	}
	if c.Frames <= 0 {
		bad("frames %d, need at least 1", c.Frames)
	}
	if c.Lanes != 0 && c.Lanes != 4 && c.Lanes != 8 {
		bad("lanes %d, want 4, 8 or 0 for auto", c.Lanes)
	}
	if _, err := LookupVariant(c.Variant); err != nil {
		errs = append(errs, err)
	}
	switch c.Quantizer {
	case quantize.Exact, quantize.Approx:
	default:
		bad("quantizer %v", c.Quantizer)
	}
	// Checked for exact runs too: compare builds an approx renderer from the
	// same config.
	if c.TableSize != 0 && c.TableSize < quantize.MinTableSize {
		bad("table size %d, need at least %d", c.TableSize, quantize.MinTableSize)
	}
	switch c.Tail {
	case TailStrict:
		if lanes := c.EffectiveLanes(); c.Width > 0 && c.Width%lanes != 0 {
			bad("width %d is not a multiple of %d lanes (use tail = \"skip\" or \"pad\")", c.Width, lanes)
		}
	case TailSkip, TailPad:
	default:
		bad("tail policy %v", c.Tail)
	}
	if c.Workers < 0 {
		bad("workers %d is negative", c.Workers)
	}
	if c.RowBatch < 0 {
		bad("row batch %d is negative", c.RowBatch)
	}
	return errors.Join(errs...)
}

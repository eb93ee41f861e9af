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

package quantize

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Strategy -linecomment

// Strategy selects how tone arguments become channel levels.
type Strategy int

const (
	// Exact evaluates tanh for every lane.
	Exact Strategy = iota // exact

	// Approx interpolates a precomputed tanh table.
	Approx // approx
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("quantize: unknown strategy")

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Exact, Approx}
}

// ParseStrategy parses a strategy name as produced by Strategy.String.
// Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return Exact, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

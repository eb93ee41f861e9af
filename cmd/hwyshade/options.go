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

package main

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/ajroetker/hwyshade/hwy/contrib/quantize"
	"github.com/ajroetker/hwyshade/internal/shader"
)

// options holds the renderer flags shared by every subcommand.
type options struct {
	configPath string
	width      int
	height     int
	frames     int
	lanes      int
	variant    string
	quantizer  string
	tableSize  int
	tail       string
	workers    int
	rowBatch   int
}

func (o *options) register(fs *pflag.FlagSet) {
	def := shader.DefaultConfig()

	variants := lo.Map(shader.Variants(), func(v shader.Variant, _ int) string { return v.Name })
	strategies := lo.Map(quantize.Strategies(), func(s quantize.Strategy, _ int) string { return s.String() })
	tails := lo.Map(shader.TailPolicies(), func(p shader.TailPolicy, _ int) string { return p.String() })

	fs.StringVarP(&o.configPath, "config", "c", "", "TOML file with renderer settings")
	fs.IntVar(&o.width, "width", def.Width, "image width in pixels")
	fs.IntVar(&o.height, "height", def.Height, "image height in pixels")
	fs.IntVarP(&o.frames, "frames", "n", def.Frames, "frames to benchmark")
	fs.IntVar(&o.lanes, "lanes", def.Lanes, "lane group width: 4, 8 or 0 to match the CPU")
	fs.StringVar(&o.variant, "variant", def.Variant, "kernel variant ("+strings.Join(variants, "|")+")")
	fs.StringVarP(&o.quantizer, "quantizer", "q", def.Quantizer.String(), "quantizer ("+strings.Join(strategies, "|")+")")
	fs.IntVar(&o.tableSize, "table-size", def.TableSize, "approx quantizer table entries")
	fs.StringVar(&o.tail, "tail", def.Tail.String(), "remainder columns when width is not a multiple of lanes ("+strings.Join(tails, "|")+")")
	fs.IntVar(&o.workers, "workers", def.Workers, "row workers, 0 for GOMAXPROCS")
	fs.IntVar(&o.rowBatch, "row-batch", def.RowBatch, "rows claimed per worker grab")
}

// config builds the renderer configuration: defaults, then the config file,
// then any flag set explicitly on the command line.
func (o *options) config(fs *pflag.FlagSet) (shader.Config, error) {
	cfg := shader.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = shader.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}

	setInt := func(name string, dst *int, v int) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	setInt("width", &cfg.Width, o.width)
	setInt("height", &cfg.Height, o.height)
	setInt("frames", &cfg.Frames, o.frames)
	setInt("lanes", &cfg.Lanes, o.lanes)
	setInt("table-size", &cfg.TableSize, o.tableSize)
	setInt("workers", &cfg.Workers, o.workers)
	setInt("row-batch", &cfg.RowBatch, o.rowBatch)

	if fs.Changed("variant") {
		cfg.Variant = o.variant
	}
	if fs.Changed("quantizer") {
		s, err := quantize.ParseStrategy(o.quantizer)
		if err != nil {
			return cfg, err
		}
		cfg.Quantizer = s
	}
	if fs.Changed("tail") {
		p, err := shader.ParseTailPolicy(o.tail)
		if err != nil {
			return cfg, err
		}
		cfg.Tail = p
	}

	return cfg, cfg.Validate()
}

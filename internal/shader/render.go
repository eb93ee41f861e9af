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
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/hwy/contrib/quantize"
	"github.com/ajroetker/hwyshade/hwy/contrib/workerpool"
)

var log = commonlog.GetLogger("hwyshade.shader")

// rowFunc renders framebuffer row y at time t.
type rowFunc func(row []byte, y int, t float32)

// Renderer fills framebuffers with the shader, spreading rows over a
// persistent worker pool. Render calls must not overlap.
type Renderer struct {
	cfg       Config
	variant   Variant
	lanes     int
	quantizer quantize.Quantizer
	pool      *workerpool.Pool
	row       rowFunc
}

// NewRenderer validates cfg, builds the quantizer table if one is needed
// and starts the worker pool. Close releases the pool.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v, err := LookupVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	q, err := quantize.New(cfg.Quantizer, cfg.TableSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	r := &Renderer{
		cfg:       cfg,
		variant:   v,
		lanes:     cfg.EffectiveLanes(),
		quantizer: q,
	}
	switch r.lanes {
	case 4:
		r.row = newRowFunc(NewKernel[hwy.F32x4](cfg.Width, cfg.Height, v, q), cfg.Tail)
	default:
		r.row = newRowFunc(NewKernel[hwy.F32x8](cfg.Width, cfg.Height, v, q), cfg.Tail)
	}
	r.pool = workerpool.New(cfg.Workers)

	groups, rem := GroupsPerRow(cfg.Width, r.lanes)
	log.Debugf("renderer %dx%d variant=%s quantizer=%s lanes=%d groups/row=%d remainder=%d tail=%s workers=%d",
		cfg.Width, cfg.Height, v.Name, cfg.Quantizer, r.lanes, groups, rem, cfg.Tail, r.pool.NumWorkers())
	return r, nil
}

// newRowFunc binds a kernel and a tail policy into a row renderer.
func newRowFunc[G hwy.Group](k *Kernel[G], tail TailPolicy) rowFunc {
	if tail != TailPad {
		return func(row []byte, y int, t float32) {
			hwy.ProcessWithTail[G](k.width, func(x0 int) {
				k.EvalGroup(x0, y, t, row)
			}, nil)
		}
	}
	return func(row []byte, y int, t float32) {
		hwy.ProcessWithTail[G](k.width,
			func(x0 int) {
				k.EvalGroup(x0, y, t, row)
			},
			func(x0, count int) {
				var scratch [hwy.MaxGroupLanes * image.Channels]byte
				k.evalInto(x0, y, t, scratch[:])
				copy(row[x0*image.Channels:], scratch[:count*image.Channels])
			})
	}
}

// GroupsPerRow returns how many full lane groups fit in a row of width
// pixels and how many pixels are left over.
func GroupsPerRow(width, lanes int) (groups, remainder int) {
	return hwy.GroupCount(width, lanes)
}

// Config returns the configuration the renderer was built from.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Variant returns the resolved variant.
func (r *Renderer) Variant() Variant {
	return r.variant
}

// Lanes returns the lane group width in use.
func (r *Renderer) Lanes() int {
	return r.lanes
}

// Quantizer returns the quantizer shared by all rows.
func (r *Renderer) Quantizer() quantize.Quantizer {
	return r.quantizer
}

// Workers returns the size of the row pool.
func (r *Renderer) Workers() int {
	return r.pool.NumWorkers()
}

// NewFramebuffer allocates a framebuffer matching the renderer's resolution.
func (r *Renderer) NewFramebuffer() *image.Framebuffer {
	return image.NewFramebuffer(r.cfg.Width, r.cfg.Height)
}

// Render evaluates every row of fb at time t and returns when all rows are
// done. It panics if fb does not match the configured resolution.
func (r *Renderer) Render(fb *image.Framebuffer, t float32) {
	w, h := r.cfg.Width, r.cfg.Height
	if fb.Width() != w || fb.Height() != h || len(fb.Pix()) != w*h*image.Channels {
		panic(fmt.Sprintf("shader: framebuffer is %dx%d (%d bytes), renderer wants %dx%d (%d bytes)",
			fb.Width(), fb.Height(), len(fb.Pix()), w, h, w*h*image.Channels))
	}

	r.pool.ParallelForAtomicBatched(h, r.cfg.RowBatch, func(start, end int) {
		for y := start; y < end; y++ {
			r.row(fb.Row(y), y, t)
		}
	})
}

// Close stops the worker pool. Render falls back to the calling goroutine
// afterwards.
func (r *Renderer) Close() {
	r.pool.Close()
}

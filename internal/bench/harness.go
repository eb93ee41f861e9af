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

// Package bench times repeated full-frame renders and keeps a history of
// runs.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tliron/commonlog"
	"github.com/zeebo/xxh3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/internal/shader"
)

var log = commonlog.GetLogger("hwyshade.bench")

// FrameStep is the shader time added after every benchmarked frame.
const FrameStep = 1.0

// Result summarizes a timed run. Total is the sum of per-frame render
// times; setup and output are excluded.
type Result struct {
	Frames   int
	Total    time.Duration
	Fastest  time.Duration
	Slowest  time.Duration
	Checksum uint64 // of the last rendered frame
}

// Avg returns the mean frame time.
func (r Result) Avg() time.Duration {
	if r.Frames == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Frames)
}

// FPS returns frames per second derived from the mean frame time.
func (r Result) FPS() float64 {
	avg := r.Avg()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Report writes the one-line summary:
//
//	Took 1.234 s to render 100 frames (Avg: 12.340 ms, FPS: 81.04)
func (r Result) Report(w io.Writer) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "Took %.3f s to render %d frames (Avg: %.3f ms, FPS: %.2f)\n",
		r.Total.Seconds(), r.Frames, float64(r.Avg())/float64(time.Millisecond), r.FPS())
	return err
}

// Checksum hashes the framebuffer contents.
func Checksum(fb *image.Framebuffer) uint64 {
	return xxh3.Hash(fb.Pix())
}

// Run renders frames into fb, starting at time 0 and advancing by FrameStep
// per frame. It stops early, returning the partial result, when ctx is
// cancelled between frames.
func Run(ctx context.Context, r *shader.Renderer, fb *image.Framebuffer, frames int) (Result, error) {
	log.Infof("rendering %d frames of %dx%d (%s framebuffer, %d lanes, %d workers)",
		frames, fb.Width(), fb.Height(), humanize.Bytes(uint64(len(fb.Pix()))), r.Lanes(), r.Workers())

	var res Result
	t := float32(0)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("benchmark stopped after %d frames: %w", res.Frames, err)
		}
		start := time.Now()
		r.Render(fb, t)
		elapsed := time.Since(start)

		res.Total += elapsed
		if res.Frames == 0 || elapsed < res.Fastest {
			res.Fastest = elapsed
		}
		res.Slowest = max(res.Slowest, elapsed)
		res.Frames++
		t += FrameStep
	}
	res.Checksum = Checksum(fb)

	log.Debugf("frames: fastest %s, slowest %s, checksum %016x", res.Fastest, res.Slowest, res.Checksum)
	return res, nil
}

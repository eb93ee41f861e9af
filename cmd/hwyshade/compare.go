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
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/hwy/contrib/quantize"
	"github.com/ajroetker/hwyshade/internal/shader"
)

func newCompareCommand(opts *options) *cobra.Command {
	var (
		at        float32
		tolerance int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Render one frame with both quantizers and report the level differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			exact, approx, err := renderBoth(cfg, at)
			if err != nil {
				return err
			}

			stats, err := image.Diff(exact, approx, tolerance)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exact vs approx at t=%g: max %d levels, mean %.4f, %d of %d pixels over %d\n",
				at, stats.Max, stats.Mean, stats.Over, stats.Pixels, tolerance)
			if stats.Max > tolerance {
				return fmt.Errorf("approx quantizer exceeds %d levels", tolerance)
			}
			return nil
		},
	}

	cmd.Flags().Float32Var(&at, "time", 0, "shader time of the compared frame")
	cmd.Flags().IntVar(&tolerance, "tolerance", 2, "allowed per-channel level difference")
	return cmd
}

// renderBoth renders the frame at time t with the exact and approx
// quantizers concurrently, each on its own renderer and pool.
func renderBoth(cfg shader.Config, t float32) (exact, approx *image.Framebuffer, err error) {
	var g errgroup.Group
	render := func(s quantize.Strategy, dst **image.Framebuffer) {
		g.Go(func() error {
			c := cfg
			c.Quantizer = s
			r, err := shader.NewRenderer(c)
			if err != nil {
				return fmt.Errorf("%s renderer: %w", s, err)
			}
			defer r.Close()

			fb := r.NewFramebuffer()
			r.Render(fb, t)
			*dst = fb
			log.Debugf("rendered %s frame", s)
			return nil
		})
	}
	render(quantize.Exact, &exact)
	render(quantize.Approx, &approx)

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return exact, approx, nil
}

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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/internal/bench"
	"github.com/ajroetker/hwyshade/internal/shader"
)

func newBenchCommand(opts *options) *cobra.Command {
	var (
		output      string
		format      string
		historyPath string
		showHistory int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Render frames, report timing and write the t=0 frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showHistory > 0 {
				if historyPath == "" {
					return fmt.Errorf("--show-history needs --history")
				}
				return printHistory(cmd.Context(), cmd.OutOrStdout(), historyPath, showHistory)
			}

			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			f := image.FormatFromPath(output)
			if format != "" {
				if f, err = image.ParseFormat(format); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runBench(ctx, cmd.OutOrStdout(), cfg, output, f, historyPath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output.ppm", "file for the frame rendered at t=0")
	cmd.Flags().StringVar(&format, "format", "", "output format (ppm|bmp|tiff), default from the file extension")
	cmd.Flags().StringVar(&historyPath, "history", "", "SQLite database to append the run to")
	cmd.Flags().IntVar(&showHistory, "show-history", 0, "print the N most recent runs from --history and exit")
	return cmd
}

func runBench(ctx context.Context, stdout io.Writer, cfg shader.Config, output string, f image.Format, historyPath string) error {
	r, err := shader.NewRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	fb := r.NewFramebuffer()
	startedAt := time.Now()
	res, err := bench.Run(ctx, r, fb, cfg.Frames)
	if err != nil {
		return err
	}
	if err := res.Report(stdout); err != nil {
		return err
	}

	r.Render(fb, 0)
	if err := image.WriteFile(output, fb, f); err != nil {
		return err
	}
	log.Infof("wrote %s (%s, %s), checksum %016x",
		output, f, humanize.Bytes(uint64(len(fb.Pix()))), bench.Checksum(fb))

	if historyPath == "" {
		return nil
	}
	h, err := bench.OpenHistory(historyPath)
	if err != nil {
		return err
	}
	defer h.Close()
	id, err := h.Add(ctx, bench.Record{
		StartedAt: startedAt,
		Dispatch:  hwy.CurrentName(),
		Lanes:     r.Lanes(),
		Config:    cfg,
		Result:    res,
	})
	if err != nil {
		return err
	}
	log.Infof("recorded run %d in %s", id, historyPath)
	return nil
}

func printHistory(ctx context.Context, w io.Writer, path string, n int) error {
	h, err := bench.OpenHistory(path)
	if err != nil {
		return err
	}
	defer h.Close()

	recs, err := h.Recent(ctx, n)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		c := rec.Config
		fmt.Fprintf(w, "#%-4d %-14s %-7s %dx%d %-9s %-6s lanes=%d frames=%d avg=%s fps=%.1f checksum=%016x\n",
			rec.ID, humanize.Time(rec.StartedAt), rec.Dispatch, c.Width, c.Height, c.Variant, c.Quantizer,
			rec.Lanes, rec.Result.Frames, rec.Result.Avg().Round(time.Microsecond), rec.Result.FPS(), rec.Result.Checksum)
	}
	return nil
}

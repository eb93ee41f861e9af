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

// Command hwyshade benchmarks a lane-parallel procedural shader.
//
// Usage:
//
//	hwyshade bench                          # 100 frames at 800x600, writes output.ppm
//	hwyshade bench --lanes 4 --quantizer approx --output frame.tiff
//	hwyshade bench --config bench.toml --history runs.db
//	hwyshade bench --history runs.db --show-history 10
//	hwyshade compare --width 1920 --height 1080
//	hwyshade info
//
// Settings come from DefaultConfig, then the --config TOML file, then flags.
// Logging goes to stderr; -v enables info and -vv debug messages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("hwyshade.cmd")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose int
	opts := &options{}

	root := &cobra.Command{
		Use:           "hwyshade",
		Short:         "Benchmark a lane-parallel procedural shader",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	root.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	opts.register(root.PersistentFlags())

	root.AddCommand(
		newBenchCommand(opts),
		newCompareCommand(opts),
		newInfoCommand(),
	)
	return root
}

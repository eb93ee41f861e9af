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
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyshade/hwy"
	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/internal/shader"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD target and available settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch:        %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "register width:  %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(w, "preferred lanes: %d\n", hwy.PreferredLanes())
			fmt.Fprintf(w, "HWY_NO_SIMD:     %t\n", hwy.NoSimdEnv())
			fmt.Fprintf(w, "workers:         %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(w, "variants:        %s\n", strings.Join(lo.Map(shader.Variants(), func(v shader.Variant, _ int) string {
				return fmt.Sprintf("%s(%d ch, %s, %s, %s)", v.Name, v.Channels, v.Envelope, v.Phase, v.Tone)
			}), " "))
			fmt.Fprintf(w, "formats:         %s\n", strings.Join(lo.Map(image.Formats(), func(f image.Format, _ int) string {
				return string(f)
			}), " "))
			return nil
		},
	}
}

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

package image

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an output file format.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPPM, FormatBMP, FormatTIFF}
}

// ParseFormat parses a format name; "tif" is accepted for TIFF.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case FormatPPM, FormatBMP, FormatTIFF:
		return f, nil
	case "tif":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrFormat, name)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to PPM.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatPPM
}

// Encode writes fb to w in the given format.
func Encode(w io.Writer, fb *Framebuffer, f Format) error {
	switch f {
	case FormatPPM:
		return EncodePPM(w, fb)
	case FormatBMP:
		return bmp.Encode(w, fb.ToRGBA())
	case FormatTIFF:
		return tiff.Encode(w, fb.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: unknown format %q", ErrFormat, string(f))
	}
}

// WriteFile creates path and writes fb to it in the given format.
func WriteFile(path string, fb *Framebuffer, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if err := Encode(w, fb, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

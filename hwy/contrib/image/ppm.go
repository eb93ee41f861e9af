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
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrFormat indicates malformed or unsupported image data.
var ErrFormat = errors.New("image: invalid format")

// maxPPMDimension bounds decoded dimensions to keep allocations sane.
const maxPPMDimension = 1 << 15

// EncodePPM writes fb as a binary P6 PPM with maxval 255.
func EncodePPM(w io.Writer, fb *Framebuffer) error {
	if _, err := fmt.Fprintf(w, "P6 %d %d 255\n", fb.width, fb.height); err != nil {
		return err
	}
	_, err := w.Write(fb.pix)
	return err
}

// DecodePPM reads a binary P6 PPM with maxval 255. Header fields may be
// separated by any whitespace and '#' comments.
func DecodePPM(r io.Reader) (*Framebuffer, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q, want P6", ErrFormat, magic)
	}

	var dims [3]int
	for i := range dims {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 || v > maxPPMDimension {
			return nil, fmt.Errorf("%w: bad header field %q", ErrFormat, tok)
		}
		dims[i] = v
	}
	if dims[2] != 255 {
		return nil, fmt.Errorf("%w: maxval %d, want 255", ErrFormat, dims[2])
	}

	// ppmToken consumed exactly one whitespace byte after maxval.
	fb := NewFramebuffer(dims[0], dims[1])
	if _, err := io.ReadFull(br, fb.pix); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %v", ErrFormat, err)
	}
	return fb, nil
}

// ppmToken skips whitespace and comments, then returns the next token. The
// single whitespace byte terminating the token is consumed.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if len(tok) > 0 && err == io.EOF {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: truncated header", ErrFormat)
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: truncated header", ErrFormat)
			}
		case isPPMSpace(c):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
			if len(tok) > 16 {
				return "", fmt.Errorf("%w: header token too long", ErrFormat)
			}
		}
	}
}

func isPPMSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

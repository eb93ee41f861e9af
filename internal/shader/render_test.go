package shader

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/hwyshade/hwy/contrib/image"
	"github.com/ajroetker/hwyshade/hwy/contrib/quantize"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

func testConfig(width, height, lanes int) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Lanes = width, height, lanes
	cfg.Frames = 1
	return cfg
}

func mustRenderer(t testing.TB, cfg Config) *Renderer {
	t.Helper()
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("NewRenderer(%+v): %v", cfg, err)
	}
	t.Cleanup(r.Close)
	return r
}

func render(t testing.TB, cfg Config, tm float32) *image.Framebuffer {
	t.Helper()
	r := mustRenderer(t, cfg)
	fb := r.NewFramebuffer()
	r.Render(fb, tm)
	return fb
}

func TestGroupsPerRow(t *testing.T) {
	tests := []struct {
		width, lanes     int
		groups, leftover int
	}{
		{800, 8, 100, 0},
		{800, 4, 200, 0},
		{602, 4, 150, 2},
		{602, 8, 75, 2},
		{5, 8, 0, 5},
	}
	for _, tt := range tests {
		g, r := GroupsPerRow(tt.width, tt.lanes)
		if g != tt.groups || r != tt.leftover {
			t.Errorf("GroupsPerRow(%d, %d) = %d, %d, want %d, %d",
				tt.width, tt.lanes, g, r, tt.groups, tt.leftover)
		}
	}
}

func TestNewRendererLanes(t *testing.T) {
	for _, lanes := range []int{4, 8} {
		r := mustRenderer(t, testConfig(64, 8, lanes))
		if r.Lanes() != lanes {
			t.Errorf("Lanes() = %d, want %d", r.Lanes(), lanes)
		}
	}
	auto := mustRenderer(t, testConfig(64, 8, 0))
	if auto.Lanes() != 4 && auto.Lanes() != 8 {
		t.Errorf("auto Lanes() = %d, want 4 or 8", auto.Lanes())
	}
}

func TestNewRendererBuildsTableOnce(t *testing.T) {
	cfg := testConfig(64, 8, 8)
	cfg.Quantizer = quantize.Approx
	cfg.TableSize = 512
	r := mustRenderer(t, cfg)
	q := r.Quantizer()
	if q.Table == nil || q.Table.Len() != 512 {
		t.Fatalf("Quantizer() = %+v, want a 512-entry table", q)
	}
	fb := r.NewFramebuffer()
	r.Render(fb, 0)
	if r.Quantizer().Table != q.Table {
		t.Error("Render replaced the table")
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := testConfig(96, 40, 8)
	a := render(t, cfg, 2.5)
	b := render(t, cfg, 2.5)
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("two renders of the same frame differ")
	}

	c := render(t, cfg, 3.5)
	if bytes.Equal(a.Pix(), c.Pix()) {
		t.Error("renders at different times are identical")
	}
}

func TestRenderLanesAndWorkersAgree(t *testing.T) {
	want := render(t, testConfig(96, 40, 8), 1)
	for _, tc := range []struct{ lanes, workers, batch int }{
		{4, 0, 4}, {8, 1, 1}, {4, 3, 7}, {8, 16, 0},
	} {
		cfg := testConfig(96, 40, tc.lanes)
		cfg.Workers, cfg.RowBatch = tc.workers, tc.batch
		got := render(t, cfg, 1)
		if !bytes.Equal(want.Pix(), got.Pix()) {
			t.Errorf("lanes=%d workers=%d batch=%d differs from lanes=8", tc.lanes, tc.workers, tc.batch)
		}
	}
}

func TestRenderTailSkip(t *testing.T) {
	const sentinel = 0xAB
	cfg := testConfig(602, 6, 4)
	cfg.Tail = TailSkip
	r := mustRenderer(t, cfg)

	groups, leftover := GroupsPerRow(cfg.Width, r.Lanes())
	if groups != 150 || leftover != 2 {
		t.Fatalf("GroupsPerRow = %d, %d, want 150, 2", groups, leftover)
	}

	fb := r.NewFramebuffer()
	fb.Fill(sentinel, sentinel, sentinel)
	r.Render(fb, 0)

	for y := 0; y < cfg.Height; y++ {
		for x := 600; x < 602; x++ {
			if cr, cg, cb := fb.At(x, y); cr != sentinel || cg != sentinel || cb != sentinel {
				t.Errorf("pixel (%d, %d) = %d %d %d, want untouched", x, y, cr, cg, cb)
			}
		}
	}

	// The last computed column is real output.
	for y := 0; y < cfg.Height; y++ {
		want := referencePixel(Classic, cfg.Width, cfg.Height, 599, y, 0)
		cr, cg, cb := fb.At(599, y)
		for c, got := range [3]uint8{cr, cg, cb} {
			if levelDistance(got, want[c]) > 2 {
				t.Errorf("pixel (599, %d) channel %d = %d, want %d", y, c, got, want[c])
			}
		}
	}
}

func TestRenderTailPad(t *testing.T) {
	skip := testConfig(602, 6, 4)
	skip.Tail = TailSkip
	pad := skip
	pad.Tail = TailPad

	skipped := render(t, skip, 0)
	padded := render(t, pad, 0)

	for y := 0; y < pad.Height; y++ {
		if !bytes.Equal(skipped.Row(y)[:600*3], padded.Row(y)[:600*3]) {
			t.Errorf("row %d: full groups differ between skip and pad", y)
		}
		for x := 600; x < 602; x++ {
			want := referencePixel(Classic, pad.Width, pad.Height, x, y, 0)
			cr, cg, cb := padded.At(x, y)
			for c, got := range [3]uint8{cr, cg, cb} {
				if levelDistance(got, want[c]) > 2 {
					t.Errorf("padded pixel (%d, %d) channel %d = %d, want %d", x, y, c, got, want[c])
				}
			}
		}
	}
}

func TestTailStrictRejectsRemainder(t *testing.T) {
	cfg := testConfig(602, 6, 4)
	if _, err := NewRenderer(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewRenderer(602 wide, 4 lanes, strict) error = %v, want ErrInvalidConfig", err)
	}
}

func TestRenderPanicsOnSizeMismatch(t *testing.T) {
	r := mustRenderer(t, testConfig(64, 8, 8))
	defer func() {
		if recover() == nil {
			t.Error("Render with a mismatched framebuffer did not panic")
		}
	}()
	r.Render(image.NewFramebuffer(64, 9), 0)
}

func TestRenderAfterClose(t *testing.T) {
	cfg := testConfig(64, 8, 8)
	want := render(t, cfg, 0)

	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	r.Close()
	fb := r.NewFramebuffer()
	r.Render(fb, 0)
	if !bytes.Equal(want.Pix(), fb.Pix()) {
		t.Error("render after Close differs")
	}
}

func TestApproxWithinTwoLevelsOfExact(t *testing.T) {
	cfg := testConfig(200, 150, 8)
	exact := render(t, cfg, 0)
	cfg.Quantizer = quantize.Approx
	approx := render(t, cfg, 0)

	stats, err := image.Diff(exact, approx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Max > 2 {
		t.Errorf("approx differs from exact by up to %d levels (%d pixels over 2)", stats.Max, stats.Over)
	}
}

// TestRenderMatchesReference renders the standard 800x600 frame at t=0 and
// compares it against a float64 evaluation of the same formula.
func TestRenderMatchesReference(t *testing.T) {
	if testing.Short() {
		t.Skip("full-frame reference comparison")
	}
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			cfg := testConfig(800, 600, 8)
			cfg.Variant = v.Name
			fb := render(t, cfg, 0)

			bad := 0
			for y := 0; y < cfg.Height; y++ {
				for x := 0; x < cfg.Width; x++ {
					want := referencePixel(v, cfg.Width, cfg.Height, x, y, 0)
					cr, cg, cb := fb.At(x, y)
					got := [3]uint8{cr, cg, cb}
					worst := 0
					for c := range got {
						worst = max(worst, levelDistance(got[c], want[c]))
					}
					if worst > 2 {
						bad++
					}
					if x == 400 && y == 300 && worst > 2 {
						t.Errorf("pixel (400, 300) = %v, want %v", got, want)
					}
				}
			}
			total := cfg.Width * cfg.Height
			if limit := total / 1000; bad > limit {
				t.Errorf("%d of %d pixels differ by more than 2 levels, want at most %d", bad, total, limit)
			}
		})
	}
}

// TestGolden compares the classic 800x600 frame at t=0 (exact quantizer,
// 8 lanes) byte for byte with testdata/classic_800x600.ppm, captured on
// amd64 without FMA contraction. Run with -update to recapture it.
func TestGolden(t *testing.T) {
	if testing.Short() {
		t.Skip("full-frame golden comparison")
	}
	path := filepath.Join("testdata", "classic_800x600.ppm")
	fb := render(t, testConfig(800, 600, 8), 0)

	if *update {
		if err := os.MkdirAll("testdata", 0o755); err != nil {
			t.Fatal(err)
		}
		if err := image.WriteFile(path, fb, image.FormatPPM); err != nil {
			t.Fatal(err)
		}
		return
	}
	if !goldenPlatform {
		t.Skipf("%s was captured without fused multiply-add; this platform fuses", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	golden, err := image.DecodePPM(f)
	if err != nil {
		t.Fatal(err)
	}
	stats, err := image.Diff(golden, fb, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.Identical {
		t.Errorf("frame differs from %s: max %d levels, %d pixels", path, stats.Max, stats.Over)
	}
}

func TestCenterPixel(t *testing.T) {
	for _, lanes := range []int{4, 8} {
		fb := render(t, testConfig(800, 600, lanes), 0)
		r, g, b := fb.At(400, 300)
		got := [3]uint8{r, g, b}

		if goldenPlatform {
			if want := [3]uint8{48, 42, 42}; got != want {
				t.Errorf("lanes=%d: pixel (400, 300) = %v, want %v", lanes, got, want)
			}
			continue
		}
		want := referencePixel(Classic, 800, 600, 400, 300, 0)
		for c := range got {
			if levelDistance(got[c], want[c]) > 2 {
				t.Errorf("lanes=%d: pixel (400, 300) = %v, want within 2 of %v", lanes, got, want)
				break
			}
		}
	}
}

func BenchmarkRender(b *testing.B) {
	for _, lanes := range []int{4, 8} {
		for _, q := range quantize.Strategies() {
			cfg := testConfig(800, 600, lanes)
			cfg.Quantizer = q
			r := mustRenderer(b, cfg)
			fb := r.NewFramebuffer()
			name := q.String()
			if lanes == 4 {
				name = "F32x4/" + name
			} else {
				name = "F32x8/" + name
			}
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(fb.Pix())))
				for i := 0; i < b.N; i++ {
					r.Render(fb, float32(i))
				}
			})
		}
	}
}

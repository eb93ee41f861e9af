package bench

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ajroetker/hwyshade/internal/shader"
)

func newRenderer(t *testing.T, width, height int) *shader.Renderer {
	t.Helper()
	cfg := shader.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Lanes, cfg.Frames = width, height, 8, 3
	r, err := shader.NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestRun(t *testing.T) {
	r := newRenderer(t, 64, 32)
	fb := r.NewFramebuffer()

	res, err := Run(context.Background(), r, fb, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 3 {
		t.Errorf("Frames = %d, want 3", res.Frames)
	}
	if res.Total <= 0 || res.Fastest > res.Slowest || res.Slowest > res.Total {
		t.Errorf("inconsistent timings: %+v", res)
	}
	if res.Checksum != Checksum(fb) {
		t.Errorf("Checksum = %x, want checksum of the last frame %x", res.Checksum, Checksum(fb))
	}

	// The last benchmarked frame is t = 2.
	want := r.NewFramebuffer()
	r.Render(want, 2*FrameStep)
	if Checksum(want) != res.Checksum {
		t.Error("last frame was not rendered at t = 2")
	}
}

func TestRunCancelled(t *testing.T) {
	r := newRenderer(t, 64, 32)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, r, r.NewFramebuffer(), 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if res.Frames != 0 {
		t.Errorf("Frames = %d, want 0", res.Frames)
	}
}

func TestResultDerived(t *testing.T) {
	res := Result{Frames: 100, Total: 2 * time.Second}
	if got := res.Avg(); got != 20*time.Millisecond {
		t.Errorf("Avg() = %v, want 20ms", got)
	}
	if got := res.FPS(); got != 50 {
		t.Errorf("FPS() = %v, want 50", got)
	}

	var zero Result
	if zero.Avg() != 0 || zero.FPS() != 0 {
		t.Errorf("zero Result: Avg %v FPS %v, want 0", zero.Avg(), zero.FPS())
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	res := Result{Frames: 100, Total: 1234400 * time.Microsecond}
	if err := res.Report(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Took 1.234 s to render 100 frames (Avg: 12.344 ms, FPS: 81.01)\n"
	if got := buf.String(); got != want {
		t.Errorf("Report = %q, want %q", got, want)
	}

	buf.Reset()
	slow := Result{Frames: 2000, Total: 2500 * time.Second}
	if err := slow.Report(&buf); err != nil {
		t.Fatal(err)
	}
	line := regexp.MustCompile(`^Took [0-9,.]+ s to render [0-9,]+ frames \(Avg: [0-9,.]+ ms, FPS: [0-9,.]+\)\n$`)
	if !line.MatchString(buf.String()) {
		t.Errorf("Report = %q, does not match %v", buf.String(), line)
	}
	if !strings.Contains(buf.String(), "2,000 frames") {
		t.Errorf("Report = %q, want grouped frame count", buf.String())
	}
}

func TestChecksumDetectsChange(t *testing.T) {
	r := newRenderer(t, 16, 8)
	fb := r.NewFramebuffer()
	before := Checksum(fb)
	r.Render(fb, 0)
	if Checksum(fb) == before {
		t.Error("checksum unchanged after rendering")
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spritesplit/internal/bgremove"
	"spritesplit/internal/imageio"
)

// writeSheet saves a 40x12 sheet with three 10x10 sprites in a row.
func writeSheet(t *testing.T, dir string, bg color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, bg)
		}
	}
	for _, x0 := range []int{1, 15, 29} {
		for y := 1; y < 11; y++ {
			for x := x0; x < x0+10; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: 30, G: 90, B: 200, A: 255})
			}
		}
	}
	path := filepath.Join(dir, "sheet.png")
	if err := imageio.Save(path, img, "png"); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesSpritesAndManifest(t *testing.T) {
	dir := t.TempDir()
	sheet := writeSheet(t, dir, color.NRGBA{})
	out := filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{sheet, "-out", out, "1"}, &stdout, &stderr, nil)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	for _, name := range []string{"sprite_00.png", "sprite_01.png", "sprite_02.png", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	first, err := imageio.Load(filepath.Join(out, "sprite_00.png"))
	if err != nil {
		t.Fatal(err)
	}
	if first.Bounds().Dx() != 12 || first.Bounds().Dy() != 12 {
		t.Errorf("sprite size = %v, want 12x12", first.Bounds())
	}
	if !strings.Contains(stdout.String(), "[OK] 3 sprites saved") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunUsageErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	sheet := writeSheet(t, dir, color.NRGBA{})
	out := filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{sheet, "-out", out, "1", "2", "3"}, &stdout, &stderr, nil)
	if code == 0 {
		t.Fatal("exit 0 for three padding values")
	}
	if !strings.Contains(stderr.String(), "USAGE") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output directory created on usage error")
	}
}

func TestRunUnreadableImage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.png")}, &stdout, &stderr, nil)
	if code == 0 || !strings.Contains(stderr.String(), "DECODE") {
		t.Errorf("exit %d, stderr %q", code, stderr.String())
	}
}

func TestRunTransparentImageIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.png")
	imageio.Save(path, image.NewNRGBA(image.Rect(0, 0, 8, 8)), "png")
	out := filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{path, "-out", out}, &stdout, &stderr, nil)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "[OK] 0 sprites") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunRemoveBackground(t *testing.T) {
	dir := t.TempDir()
	sheet := writeSheet(t, dir, color.NRGBA{R: 255, B: 255, A: 255})
	out := filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{sheet, "--remove-background", "-out", out}, &stdout, &stderr, nil)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "[OK] 3 sprites") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunBackgroundRemovalFailure(t *testing.T) {
	dir := t.TempDir()
	sheet := writeSheet(t, dir, color.NRGBA{})
	out := filepath.Join(dir, "frames")
	failing := bgremove.Func(func(context.Context, *image.NRGBA) (*image.NRGBA, error) {
		return nil, errors.New("model unavailable")
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{sheet, "--remove-background", "-out", out}, &stdout, &stderr, failing)
	if code == 0 {
		t.Fatal("exit 0 after background removal failure")
	}
	if !strings.Contains(stderr.String(), "BACKGROUND_REMOVAL") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written after background removal failure")
	}
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	sheet := writeSheet(t, dir, color.NRGBA{})
	out := filepath.Join(dir, "frames")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{sheet, "-dry-run", "-out", out, "0", "0", "0", "0"}, &stdout, &stderr, nil)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "sprite_02.png (29,1,39,11)") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run wrote output")
	}
}

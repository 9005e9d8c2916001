package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	apperrors "spritesplit/internal/errors"
	"spritesplit/internal/imageio"
	"spritesplit/internal/logging"
	"spritesplit/internal/sprite"

	"github.com/disintegration/imaging"
)

// Config holds shared settings for one export run.
type Config struct {
	OutputDir string
	Format    string // "png" or "webp"
	NameWidth int    // zero-padding of the index in file names
	Scale     int    // nearest-neighbour upscale factor, 1 keeps size
	Workers   int
	Log       *logging.Logger
}

// Result holds the outcome of writing one sprite.
type Result struct {
	Index   int
	File    string
	Success bool
	Error   error
}

// FileName returns sprite_<index> with the index zero-padded to width.
func FileName(index, width int, format string) string {
	return fmt.Sprintf("sprite_%0*d%s", width, index, imageio.Ext(format))
}

// Run crops every sprite out of img and writes it to cfg.OutputDir using a
// worker pool. The output directory is created first; if that fails nothing
// is written.
func Run(cfg Config, img *image.NRGBA, sprites []sprite.Sprite) ([]Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, apperrors.NewExportError(cfg.OutputDir, err)
	}

	total := len(sprites)
	results := make([]Result, total)
	if total == 0 {
		return results, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 && cfg.Log != nil {
					rate := float64(p) / time.Since(start).Seconds()
					cfg.Log.Info("exporting", "done", p, "total", total, "rate", fmt.Sprintf("%.1f/s", rate))
				}
			}
		}
	}()

	// Worker pool
	work := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = writeSprite(cfg, img, sprites[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range sprites {
		work <- i
	}
	close(work)

	wg.Wait()
	close(done)

	return results, nil
}

// Crop cuts the sprite's crop rectangle out of img, upscaled by scale.
func Crop(img image.Image, s sprite.Sprite, scale int) *image.NRGBA {
	frame := imaging.Crop(img, s.Crop.Rect())
	if scale > 1 {
		b := frame.Bounds()
		frame = imaging.Resize(frame, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	return frame
}

func writeSprite(cfg Config, img *image.NRGBA, s sprite.Sprite) Result {
	name := FileName(s.Index, cfg.NameWidth, cfg.Format)
	path := filepath.Join(cfg.OutputDir, name)

	if err := imageio.Save(path, Crop(img, s, cfg.Scale), cfg.Format); err != nil {
		return Result{Index: s.Index, File: name, Error: apperrors.NewExportError(path, err)}
	}

	if cfg.Log != nil {
		cfg.Log.Debug("wrote sprite", "index", s.Index, "file", name, "crop", s.Crop)
	}
	return Result{Index: s.Index, File: name, Success: true}
}

// Failed returns the unsuccessful results.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"spritesplit/internal/bgremove"
	"spritesplit/internal/config"
	apperrors "spritesplit/internal/errors"
	"spritesplit/internal/export"
	"spritesplit/internal/imageio"
	"spritesplit/internal/logging"
	"spritesplit/internal/sprite"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes one split and returns the process exit code. A nil remover
// selects the built-in colour-key background removal.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer, remover bgremove.Remover) int {
	args, err := config.ParseArgs("spritesplit", argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log := logging.NewLoggerTo(stderr, "spritesplit")
	log.SetVerbose(args.Verbose)

	cfg, err := loadConfig(args, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	img, err := imageio.Load(args.ImagePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", apperrors.NewDecodeError(args.ImagePath, err))
		return 1
	}
	log.Debug("loaded image", "path", args.ImagePath, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))

	if args.RemoveBackground {
		if remover == nil {
			remover = bgremove.NewColorKey(cfg.BackgroundTolerance)
		}
		start := time.Now()
		img, err = remover.Remove(ctx, img)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", apperrors.NewBackgroundRemovalError(fmt.Sprintf("%T", remover), err))
			return 1
		}
		log.Info("background removed", "elapsed", time.Since(start).Round(time.Millisecond))
	}

	res, err := sprite.Extract(sprite.NewAlphaGrid(img), cfg.Options(args.Padding))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", apperrors.NewConfigError(args.ImagePath, err))
		return 1
	}
	log.Debug("extracted", "sprites", len(res.Sprites), "layout", res.Layout)

	expCfg := export.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		NameWidth: cfg.NameWidth,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Log:       log,
	}
	p := args.Padding

	if args.DryRun {
		for _, s := range res.Sprites {
			fmt.Fprintf(stdout, "%s %v\n", export.FileName(s.Index, cfg.NameWidth, cfg.Format), s.Crop)
		}
		fmt.Fprintf(stdout, "[DRY RUN] %d sprites found, layout %s\n", len(res.Sprites), res.Layout)
		return 0
	}

	results, err := export.Run(expCfg, img, res.Sprites)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	failed := export.Failed(results)
	if len(failed) > 0 {
		fmt.Fprintf(stderr, "\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Fprintf(stderr, "  %s: %v\n", r.File, r.Error)
		}
		return 1
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := export.WriteManifest(manifestPath, export.NewManifest(args.ImagePath, res, p, expCfg)); err != nil {
		log.Warn("manifest write failed", "path", manifestPath, "error", err)
	}

	fmt.Fprintf(stdout, "[OK] %d sprites saved in '%s' (padding: top=%d, right=%d, bottom=%d, left=%d)\n",
		len(res.Sprites), cfg.OutputDir, p.Top, p.Right, p.Bottom, p.Left)
	return 0
}

// loadConfig layers defaults, the config file, the env file and flags.
func loadConfig(args config.Args, log *logging.Logger) (config.Config, error) {
	cfg := config.Default()
	if args.ConfigFile != "" {
		var err error
		cfg, err = config.Load(args.ConfigFile)
		if err != nil {
			return config.Config{}, apperrors.NewConfigError(args.ConfigFile, err)
		}
	}

	loaded, err := config.LoadEnvFile(args.EnvFile)
	if err != nil {
		return config.Config{}, apperrors.NewConfigError(args.EnvFile, err)
	}
	if loaded {
		log.Debug("env file loaded", "path", args.EnvFile)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, apperrors.NewConfigError("environment", err)
	}

	cfg.Resolve(args.Flags, args.ImagePath)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, apperrors.NewConfigError(args.ConfigFile, err)
	}
	return cfg, nil
}

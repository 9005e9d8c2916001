package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	apperrors "spritesplit/internal/errors"
	"spritesplit/internal/sprite"
)

// Args is a parsed command line.
type Args struct {
	ImagePath        string
	Padding          sprite.Padding
	RemoveBackground bool
	ConfigFile       string
	EnvFile          string
	DryRun           bool
	Verbose          bool
	Flags            Flags
}

// ParseArgs parses
//
//	<image> [padding]
//	<image> [top right bottom left]
//	<image> --remove-background [padding...]
//
// Flags may appear anywhere among the positional arguments. Any problem is
// returned as a usage error.
func ParseArgs(name string, args []string, output io.Writer) (Args, error) {
	var a Args
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage:\n")
		fmt.Fprintf(output, "  %s <image> [padding]\n", name)
		fmt.Fprintf(output, "  %s <image> [top right bottom left]\n", name)
		fmt.Fprintf(output, "  %s <image> --remove-background [padding...]\n\n", name)
		fs.PrintDefaults()
	}

	fs.BoolVar(&a.RemoveBackground, "remove-background", false, "Make the background transparent before splitting")
	fs.StringVar(&a.ConfigFile, "config", "", "Path to config.json file")
	fs.StringVar(&a.EnvFile, "env", ".env", "Path to an optional .env file with SPRITESPLIT_* settings")
	fs.BoolVar(&a.DryRun, "dry-run", false, "Report sprites without writing files")
	fs.BoolVar(&a.Verbose, "v", false, "Verbose logging")

	fs.StringVar(&a.Flags.OutputDir, "out", "", "Output directory (default: <image>_auto_rect_output)")
	fs.StringVar(&a.Flags.Format, "format", "", "Output format: png or webp (default: png)")
	fs.IntVar(&a.Flags.AlphaThreshold, "threshold", -1, "Alpha above which a pixel is foreground (default: 30)")
	fs.IntVar(&a.Flags.MinArea, "min-area", -1, "Smallest bounding-box area kept, in pixels (default: 100)")
	fs.IntVar(&a.Flags.NameWidth, "name-width", -1, "Zero-padding width of sprite numbers (default: 2)")
	fs.IntVar(&a.Flags.Bands, "bands", 0, "Label this many row bands concurrently (default: off)")
	fs.IntVar(&a.Flags.Scale, "scale", 0, "Nearest-neighbour upscale factor for written sprites (default: 1)")
	fs.IntVar(&a.Flags.Workers, "workers", 0, "Number of encoder goroutines (default: NumCPU)")
	fs.Float64Var(&a.Flags.BackgroundTolerance, "bg-tolerance", -1, "Colour distance treated as background, 0-100 (default: 12)")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if err == flag.ErrHelp {
				return Args{}, err
			}
			return Args{}, apperrors.NewUsageError("%v", err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	if len(positional) == 0 {
		fs.Usage()
		return Args{}, apperrors.NewUsageError("missing image path")
	}
	a.ImagePath = positional[0]

	p, err := ParsePadding(positional[1:])
	if err != nil {
		return Args{}, err
	}
	a.Padding = p
	return a, nil
}

// ParsePadding accepts no value (zero padding), one value for every side, or
// four values in top, right, bottom, left order.
func ParsePadding(vals []string) (sprite.Padding, error) {
	nums := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return sprite.Padding{}, apperrors.NewUsageError("padding %q is not an integer", v)
		}
		if n < 0 {
			return sprite.Padding{}, apperrors.NewUsageError("padding %d is negative", n)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 0:
		return sprite.Padding{}, nil
	case 1:
		return sprite.UniformPadding(nums[0]), nil
	case 4:
		return sprite.Padding{Top: nums[0], Right: nums[1], Bottom: nums[2], Left: nums[3]}, nil
	default:
		return sprite.Padding{}, apperrors.NewUsageError("give 1 padding value (all sides) or 4 (top right bottom left), got %d", len(nums))
	}
}

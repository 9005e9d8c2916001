package imageio

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

type decodeFunc func(io.Reader) (image.Image, error)

// TGA has no magic number, so decoders are chosen by extension or by the
// signatures in sniffExt, never by image.Decode registration order.
var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".webp": nativewebp.Decode,
	".tga":  tga.Decode,
}

// Load reads an image file and returns it as NRGBA with its origin at (0,0).
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f), filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes r using the decoder for ext. Unknown extensions are
// resolved from the leading bytes, with TGA as the last resort.
func Decode(r io.Reader, ext string) (*image.NRGBA, error) {
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		br := bufio.NewReader(r)
		dec = decoders[sniffExt(br)]
		r = br
	}

	img, err := dec(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("imageio: empty image %dx%d", b.Dx(), b.Dy())
	}
	return ToNRGBA(img), nil
}

func sniffExt(br *bufio.Reader) string {
	head, _ := br.Peek(12)
	switch {
	case bytes.HasPrefix(head, []byte("\x89PNG")):
		return ".png"
	case bytes.HasPrefix(head, []byte{0xff, 0xd8}):
		return ".jpg"
	case bytes.HasPrefix(head, []byte("GIF8")):
		return ".gif"
	case bytes.HasPrefix(head, []byte("BM")):
		return ".bmp"
	case len(head) >= 12 && string(head[:4]) == "RIFF" && string(head[8:12]) == "WEBP":
		return ".webp"
	}
	return ".tga"
}

// ToNRGBA converts any image to NRGBA. Images without an alpha channel come
// out fully opaque.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Formats lists the accepted output formats.
var Formats = []string{"png", "webp"}

// Ext returns the file extension for an output format.
func Ext(format string) string {
	return "." + format
}

// Encode writes img in the given output format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("imageio: unsupported output format %q", format)
	}
}

// Save encodes img to path.
func Save(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("imageio: write %s: %w", path, err)
	}
	return f.Close()
}

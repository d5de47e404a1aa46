// Package imaging decodes uploaded images and produces width-bounded derivatives
// encoded in the source format.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// JPEGQuality is used for every JPEG derivative.
const JPEGQuality = 85

// MaxPixels bounds width*height of any image Decode will rasterize.
const MaxPixels = 89_478_485

var (
	// ErrUnsupportedFormat is returned when a format can be decoded but not encoded (e.g. webp).
	ErrUnsupportedFormat = errors.New("no encoder for image format")
	// ErrImageTooLarge is returned when the header declares more than MaxPixels.
	ErrImageTooLarge = errors.New("image exceeds pixel limit")
)

// Decode reads an image and reports the registered format name ("jpeg", "png", "gif", "bmp", "tiff", "webp").
// Dimensions are read from the header first so oversized images are refused before allocation.
func Decode(data []byte) (image.Image, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// TargetHeight keeps the aspect ratio of a srcW x srcH image scaled to width.
func TargetHeight(srcW, srcH, width int) int {
	if srcW <= 0 {
		return 1
	}
	h := int(math.Round(float64(width) * float64(srcH) / float64(srcW)))
	if h < 1 {
		h = 1
	}
	return h
}

// Resize scales src to width, preserving aspect ratio.
func Resize(src image.Image, width int) image.Image {
	b := src.Bounds()
	h := TargetHeight(b.Dx(), b.Dy(), width)
	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Encode writes img in format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ResizeEncoded resizes and encodes in one step.
func ResizeEncoded(src image.Image, format string, width int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, Resize(src, width), format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

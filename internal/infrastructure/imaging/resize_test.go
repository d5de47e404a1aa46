package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	return img
}

func TestTargetHeight(t *testing.T) {
	require.Equal(t, 225, TargetHeight(4000, 3000, 300))
	require.Equal(t, 600, TargetHeight(4000, 3000, 800))
	require.Equal(t, 1440, TargetHeight(4000, 3000, 1920))
	// 300 * 1 / 1000 rounds to 0 and is clamped
	require.Equal(t, 1, TargetHeight(1000, 1, 300))
	// upscaling keeps the ratio
	require.Equal(t, 1080, TargetHeight(640, 360, 1920))
}

func TestResizeEncodedRoundTripPreservesAspect(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, jpeg.Encode(&src, solid(640, 427), nil))

	img, format, err := Decode(src.Bytes())
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)

	for _, w := range []int{300, 800} {
		out, err := ResizeEncoded(img, format, w)
		require.NoError(t, err)
		cfg, f, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, "jpeg", f)
		require.Equal(t, w, cfg.Width)
		want := float64(w) * 427 / 640
		require.InDelta(t, want, float64(cfg.Height), 1)
	}
}

func TestResizeEncodedKeepsPNG(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, solid(50, 20)))
	img, format, err := Decode(src.Bytes())
	require.NoError(t, err)

	out, err := ResizeEncoded(img, format, 300)
	require.NoError(t, err)
	cfg, f, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "png", f)
	require.Equal(t, 300, cfg.Width)
	require.Equal(t, 120, cfg.Height)
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, solid(2, 2), "webp")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode([]byte("not an image"))
	require.Error(t, err)
}

// grayPNGHeader returns a PNG signature and IHDR chunk declaring w x h 8-bit grayscale, with no pixel data.
func grayPNGHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	chunk := make([]byte, 4+13)
	copy(chunk, "IHDR")
	binary.BigEndian.PutUint32(chunk[4:], w)
	binary.BigEndian.PutUint32(chunk[8:], h)
	chunk[12] = 8
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], 13)
	buf.Write(n[:])
	buf.Write(chunk)
	binary.BigEndian.PutUint32(n[:], crc32.ChecksumIEEE(chunk))
	buf.Write(n[:])
	return buf.Bytes()
}

func TestDecodeRefusesOversizedDimensions(t *testing.T) {
	data := grayPNGHeader(20000, 20000)
	require.Less(t, len(data), 64)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 20000, cfg.Width)

	_, _, err = Decode(data)
	require.ErrorIs(t, err, ErrImageTooLarge)
}

func TestDecodeAcceptsImagesAtTheLimitHeader(t *testing.T) {
	// 9459 x 9459 = 89,472,681 pixels, under MaxPixels; decoding then fails on the missing data, not the limit.
	_, _, err := Decode(grayPNGHeader(9459, 9459))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrImageTooLarge)
}

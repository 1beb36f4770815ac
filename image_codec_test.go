package gosiebsp

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func requireSameImage(t *testing.T, want *image.RGBA, got image.Image) {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())

	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			require.Equal(t, want.RGBAAt(x, y), color.RGBAModel.Convert(got.At(x, y)), "pixel %d,%d", x, y)
		}
	}
}

func TestImageRoundTrip(t *testing.T) {
	img, err := RenderSphere(40, 30, SphereQuality{Radius: 6, Scale: 2}, MaterialPlastic, DefaultLight())
	require.NoError(t, err)

	for _, format := range []ImageFormat{ImageFormatPNG, ImageFormatQOI} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeImage(&buf, img, format))

			decoded, err := DecodeImage(&buf, format)
			require.NoError(t, err)
			requireSameImage(t, img, decoded)
		})
	}
}

func TestImageFormatFromPath(t *testing.T) {
	testCases := []struct {
		path    string
		want    ImageFormat
		wantErr bool
	}{
		{path: "sphere.png", want: ImageFormatPNG},
		{path: "out/Sphere.PNG", want: ImageFormatPNG},
		{path: "sphere.qoi", want: ImageFormatQOI},
		{path: "sphere.jpg", wantErr: true},
		{path: "sphere", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			format, err := ImageFormatFromPath(tc.path)
			if tc.wantErr {
				require.Error(t, err)
				require.Equal(t, ErrTypeUnsupportedFormat, errors.Type(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, format)
		})
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("not an image"), ImageFormatQOI)
	require.Error(t, err)
	require.Equal(t, ErrTypeParse, errors.Type(err))
}

func TestSaveImage(t *testing.T) {
	img, err := RenderSphere(20, 20, SphereQuality{Radius: 4, Scale: 2}, MaterialWood, DefaultLight())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sphere.qoi")
	require.NoError(t, SaveImage(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := DecodeImage(f, ImageFormatQOI)
	require.NoError(t, err)
	requireSameImage(t, img, decoded)

	err = SaveImage(filepath.Join(t.TempDir(), "sphere.bmp"), img)
	require.Equal(t, ErrTypeUnsupportedFormat, errors.Type(err))
}

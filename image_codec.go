package gosiebsp

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/xfmoulet/qoi"
)

type ImageFormat string

const (
	ImageFormatPNG ImageFormat = "png"
	ImageFormatQOI ImageFormat = "qoi"
)

// ImageFormatFromPath picks the format from the file extension.
func ImageFormatFromPath(path string) (ImageFormat, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "png":
		return ImageFormatPNG, nil
	case "qoi":
		return ImageFormatQOI, nil
	default:
		return "", errors.New("unsupported image format").
			WithType(ErrTypeUnsupportedFormat).
			WithTag("path", path).
			WithTag("extension", ext)
	}
}

func EncodeImage(w io.Writer, img image.Image, format ImageFormat) error {
	var err error
	switch format {
	case ImageFormatPNG:
		err = png.Encode(w, img)
	case ImageFormatQOI:
		err = qoi.Encode(w, img)
	default:
		return errors.New("unsupported image format").
			WithType(ErrTypeUnsupportedFormat).
			WithTag("format", string(format))
	}
	if err != nil {
		return errors.New("encoding image failed").
			WithTag("format", string(format)).
			Wrap(err)
	}
	return nil
}

// DecodeImage reads a png or qoi image.
func DecodeImage(r io.Reader, format ImageFormat) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case ImageFormatPNG:
		img, err = png.Decode(r)
	case ImageFormatQOI:
		img, err = qoi.Decode(r)
	default:
		return nil, errors.New("unsupported image format").
			WithType(ErrTypeUnsupportedFormat).
			WithTag("format", string(format))
	}
	if err != nil {
		return nil, errors.New("decoding image failed").
			WithType(ErrTypeParse).
			WithTag("format", string(format)).
			Wrap(err)
	}
	return img, nil
}

// SaveImage writes img to path in the format its extension names.
func SaveImage(path string, img image.Image) error {
	format, err := ImageFormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating image file failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := EncodeImage(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder turns an image source into pixels
type Decoder interface {
	Decode(src ImagePath) (image.Image, error)
}

func isSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif", ".tif", ".tiff":
		return true
	default:
		return false
	}
}

// fileDecoder decodes plain files and archive members
type fileDecoder struct{}

// NewDecoder returns the default Decoder
func NewDecoder() Decoder {
	return fileDecoder{}
}

func (fileDecoder) Decode(src ImagePath) (image.Image, error) {
	if src.InArchive() {
		data, err := readArchiveEntry(src)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", src.Path, err)
		}
		return img, nil
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src.Path, err)
	}
	return img, nil
}

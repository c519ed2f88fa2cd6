// Package reader loads manga page images to obtain page dimensions.
//
// Only the image header is decoded, so loading is cheap even for large
// pages. PNG, JPEG and GIF are supported via the standard library; WebP,
// BMP and TIFF via golang.org/x/image.
package reader

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/yomikata/koma/model"
)

// ErrUnsupportedFormat is returned when a file's extension is not a
// recognized image format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// supportedExtensions lists the page image formats that can be loaded.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// SupportedExtension reports whether the file's extension is a loadable
// image format. The check is case-insensitive.
func SupportedExtension(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// LoadPage reads the dimensions of a page image file.
func LoadPage(path string) (model.Page, error) {
	if !SupportedExtension(path) {
		return model.Page{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Page{}, fmt.Errorf("failed to open page image: %w", err)
	}
	defer f.Close()

	config, _, err := image.DecodeConfig(f)
	if err != nil {
		return model.Page{}, fmt.Errorf("failed to decode page image %s: %w", path, err)
	}

	page := model.Page{
		Width:  float64(config.Width),
		Height: float64(config.Height),
	}
	if !page.IsValid() {
		return model.Page{}, fmt.Errorf("invalid page dimensions %dx%d in %s", config.Width, config.Height, path)
	}

	return page, nil
}

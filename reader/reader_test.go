package reader

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a blank PNG of the given size and returns its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	img := image.NewGray(image.Rect(0, 0, width, height))
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	return path
}

func TestLoadPage(t *testing.T) {
	path := writeTestPNG(t, 1654, 2339)

	page, err := LoadPage(path)
	if err != nil {
		t.Fatalf("LoadPage() error: %v", err)
	}
	if page.Width != 1654 || page.Height != 2339 {
		t.Errorf("LoadPage() = %gx%g, want 1654x2339", page.Width, page.Height)
	}
}

func TestLoadPageUnsupportedExtension(t *testing.T) {
	_, err := LoadPage("page.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadPageMissingFile(t *testing.T) {
	_, err := LoadPage(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadPageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	if _, err := LoadPage(path); err == nil {
		t.Error("Expected an error for a corrupt file")
	}
}

func TestSupportedExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"page.png", true},
		{"page.JPG", true},
		{"page.jpeg", true},
		{"page.webp", true},
		{"page.bmp", true},
		{"page.tiff", true},
		{"page.gif", true},
		{"page.pdf", false},
		{"page", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := SupportedExtension(tt.path); got != tt.expected {
				t.Errorf("SupportedExtension(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

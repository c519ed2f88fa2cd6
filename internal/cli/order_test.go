package cli

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/yomikata/koma/order"
)

func writePageDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}
	return path
}

func TestOrderFile(t *testing.T) {
	doc := `{
		"page": {"width": 110, "height": 100},
		"panels": [
			{"x1": 0, "y1": 0, "x2": 50, "y2": 100},
			{"x1": 60, "y1": 0, "x2": 110, "y2": 100}
		]
	}`
	path := writePageDocument(t, t.TempDir(), "page.json", doc)

	result, err := orderFile(path, order.NewEstimator(), nil)
	if err != nil {
		t.Fatalf("orderFile() error: %v", err)
	}

	if len(result.ReadingOrder) != 2 || result.ReadingOrder[0] != 1 || result.ReadingOrder[1] != 0 {
		t.Errorf("ReadingOrder = %v, want [1 0]", result.ReadingOrder)
	}
	if result.Panels[0].X1 != 60 || result.Panels[0].ReadingOrder != 1 {
		t.Errorf("Expected the right panel first with order 1, got %+v", result.Panels[0])
	}
	if result.Panels[1].ReadingOrder != 2 {
		t.Errorf("Expected the left panel stamped 2, got %+v", result.Panels[1])
	}
}

func TestOrderFileImageDimensions(t *testing.T) {
	dir := t.TempDir()

	// Page size comes from the referenced image file.
	imgPath := filepath.Join(dir, "page.png")
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatalf("Failed to create image: %v", err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 110, 100))); err != nil {
		t.Fatalf("Failed to encode image: %v", err)
	}
	f.Close()

	doc := `{
		"image": "page.png",
		"panels": [
			{"x1": 0, "y1": 0, "x2": 50, "y2": 100},
			{"x1": 60, "y1": 0, "x2": 110, "y2": 100}
		]
	}`
	path := writePageDocument(t, dir, "page.json", doc)

	result, err := orderFile(path, order.NewEstimator(), nil)
	if err != nil {
		t.Fatalf("orderFile() error: %v", err)
	}
	if len(result.ReadingOrder) != 2 || result.ReadingOrder[0] != 1 {
		t.Errorf("ReadingOrder = %v, want [1 0]", result.ReadingOrder)
	}
}

func TestOrderFileDocumentOverride(t *testing.T) {
	// The document's four_koma field wins over the flag default.
	doc := `{
		"page": {"width": 100, "height": 100},
		"four_koma": true,
		"panels": [
			{"x1": 0, "y1": 60, "x2": 100, "y2": 100},
			{"x1": 0, "y1": 0, "x2": 100, "y2": 50}
		]
	}`
	path := writePageDocument(t, t.TempDir(), "page.json", doc)

	result, err := orderFile(path, order.NewEstimator(), nil)
	if err != nil {
		t.Fatalf("orderFile() error: %v", err)
	}
	if result.ReadingOrder[0] != 1 || result.ReadingOrder[1] != 0 {
		t.Errorf("ReadingOrder = %v, want [1 0]", result.ReadingOrder)
	}
}

func TestOrderFileMissingDimensions(t *testing.T) {
	doc := `{"panels": [{"x1": 0, "y1": 0, "x2": 10, "y2": 10}]}`
	path := writePageDocument(t, t.TempDir(), "page.json", doc)

	if _, err := orderFile(path, order.NewEstimator(), nil); err == nil {
		t.Error("Expected an error for a document without dimensions")
	}
}

func TestOrderFileInvalidJSON(t *testing.T) {
	path := writePageDocument(t, t.TempDir(), "page.json", "{not json")

	if _, err := orderFile(path, order.NewEstimator(), nil); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
}

func TestOrderFileInvalidDimensions(t *testing.T) {
	doc := `{"page": {"width": 0, "height": 100}, "panels": []}`
	path := writePageDocument(t, t.TempDir(), "page.json", doc)

	if _, err := orderFile(path, order.NewEstimator(), nil); err == nil {
		t.Error("Expected an error for zero page width")
	}
}

func TestWriteResultFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	batch := batchResult{
		JobID: "test",
		Pages: []pageResult{{File: "page.json", ReadingOrder: []int{0}}},
	}

	if err := writeResult(batch, out); err != nil {
		t.Fatalf("writeResult() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var decoded batchResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.JobID != "test" || len(decoded.Pages) != 1 {
		t.Errorf("Decoded result = %+v", decoded)
	}
}

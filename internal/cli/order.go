package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yomikata/koma/model"
	"github.com/yomikata/koma/order"
	"github.com/yomikata/koma/reader"
	"github.com/yomikata/koma/sequence"
)

// pageDocument is one input page: detected panel boxes plus either explicit
// page dimensions or an image path to resolve them from. Image paths are
// interpreted relative to the document file.
type pageDocument struct {
	Page     *pageSize  `json:"page,omitempty"`
	Image    string     `json:"image,omitempty"`
	Panels   []panelBox `json:"panels"`
	FourKoma *bool      `json:"four_koma,omitempty"`
}

type pageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type panelBox struct {
	X1           float64 `json:"x1"`
	Y1           float64 `json:"y1"`
	X2           float64 `json:"x2"`
	Y2           float64 `json:"y2"`
	ReadingOrder int     `json:"reading_order,omitempty"`
}

// pageResult is the ordered output for one page document.
type pageResult struct {
	File         string     `json:"file"`
	ReadingOrder []int      `json:"reading_order"`
	Panels       []panelBox `json:"panels"`
}

// batchResult wraps all pages of one run under a generated job ID.
type batchResult struct {
	JobID string       `json:"job_id"`
	Pages []pageResult `json:"pages"`
}

func newOrderCmd() *cobra.Command {
	var (
		minGutter  float64
		maxDepth   int
		fourKoma   string
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "order [files...]",
		Short: "Resolve panel reading order for page documents",
		Long: `Order reads one or more page JSON documents, resolves the right-to-left
top-to-bottom reading sequence of their panels, and writes the annotated
result as JSON. Use "-" to read a single document from stdin.

Each document carries the panel bounding boxes and either explicit page
dimensions or the path of the page image to measure:

  {
    "page": {"width": 1654, "height": 2339},
    "panels": [
      {"x1": 850, "y1": 40, "x2": 1610, "y2": 900},
      {"x1": 60, "y1": 40, "x2": 820, "y2": 900}
    ]
  }`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := order.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
				logger.Debug("Loaded config", "path", configPath)
			}
			if cmd.Flags().Changed("min-gutter") {
				cfg.MinGutterSize = minGutter
			}
			if cmd.Flags().Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}

			override, err := parseFourKomaFlag(fourKoma)
			if err != nil {
				return err
			}

			est := order.NewEstimatorWithConfig(cfg)
			batch := batchResult{JobID: uuid.NewString()}

			track := newProgress(logger)
			for _, arg := range args {
				result, err := orderFile(arg, est, override)
				if err != nil {
					return err
				}
				logger.Debug("Ordered page", "file", result.File, "panels", len(result.Panels))
				batch.Pages = append(batch.Pages, result)
			}
			track.done(fmt.Sprintf("Ordered %d page(s)", len(batch.Pages)))

			return writeResult(batch, output)
		},
	}

	cmd.Flags().Float64Var(&minGutter, "min-gutter", order.DefaultConfig().MinGutterSize, "minimum gutter size in pixels")
	cmd.Flags().IntVar(&maxDepth, "max-depth", order.DefaultConfig().MaxDepth, "division recursion depth cap")
	cmd.Flags().StringVar(&fourKoma, "four-koma", "auto", "4-koma handling: auto, on or off")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML threshold config file")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (\"-\" for stdout)")

	return cmd
}

// parseFourKomaFlag maps the --four-koma flag onto the engine's tri-state
// override: nil for auto-detection, otherwise the forced decision.
func parseFourKomaFlag(value string) (*bool, error) {
	switch value {
	case "auto":
		return nil, nil
	case "on":
		v := true
		return &v, nil
	case "off":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("invalid --four-koma value %q (want auto, on or off)", value)
}

// orderFile loads one page document, resolves its reading order and
// returns the annotated result.
func orderFile(path string, est *order.Estimator, override *bool) (pageResult, error) {
	data, name, err := readDocument(path)
	if err != nil {
		return pageResult{}, err
	}

	var doc pageDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return pageResult{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	page, err := resolvePage(doc, filepath.Dir(path))
	if err != nil {
		return pageResult{}, fmt.Errorf("%s: %w", name, err)
	}

	boxes := make([]model.Box, len(doc.Panels))
	panels := make([]model.Panel, len(doc.Panels))
	for i, p := range doc.Panels {
		boxes[i] = model.Box{X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2}
		panels[i] = model.Panel{Index: i, Box: boxes[i]}
	}

	// Document-level four_koma wins over the command flag.
	if doc.FourKoma != nil {
		override = doc.FourKoma
	}

	perm := est.EstimateWithLayout(boxes, page.Width, page.Height, override)
	annotated := sequence.Annotate(panels, perm)

	result := pageResult{
		File:         name,
		ReadingOrder: perm,
		Panels:       make([]panelBox, len(annotated)),
	}
	for i, p := range annotated {
		result.Panels[i] = panelBox{
			X1:           p.Box.X1,
			Y1:           p.Box.Y1,
			X2:           p.Box.X2,
			Y2:           p.Box.Y2,
			ReadingOrder: p.ReadingOrder,
		}
	}

	return result, nil
}

// resolvePage determines page dimensions, preferring explicit dimensions
// over an image path.
func resolvePage(doc pageDocument, baseDir string) (model.Page, error) {
	if doc.Page != nil {
		page := model.Page{Width: doc.Page.Width, Height: doc.Page.Height}
		if !page.IsValid() {
			return model.Page{}, fmt.Errorf("invalid page dimensions %gx%g", page.Width, page.Height)
		}
		return page, nil
	}

	if doc.Image != "" {
		path := doc.Image
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return reader.LoadPage(path)
	}

	return model.Page{}, fmt.Errorf("document has neither page dimensions nor an image path")
}

// readDocument reads a document from a file, or from stdin when path is "-".
func readDocument(path string) (data []byte, name string, err error) {
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		return data, "stdin", err
	}

	data, err = os.ReadFile(path)
	return data, path, err
}

// writeResult marshals the batch result as indented JSON to the output
// target ("-" for stdout).
func writeResult(batch batchResult, output string) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0o644)
}

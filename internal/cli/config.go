package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/yomikata/koma/order"
)

// fileConfig mirrors the TOML threshold file. All fields are optional;
// unset fields keep their defaults.
//
// Example file:
//
//	min_gutter_size = 8.0
//	max_depth = 12
//	four_koma_width_ratio = 0.75
//	four_koma_gap_tolerance = 0.3
type fileConfig struct {
	MinGutterSize        *float64 `toml:"min_gutter_size"`
	MaxDepth             *int     `toml:"max_depth"`
	FourKomaWidthRatio   *float64 `toml:"four_koma_width_ratio"`
	FourKomaGapTolerance *float64 `toml:"four_koma_gap_tolerance"`
}

// loadConfig reads a TOML threshold file and applies it on top of the
// default engine configuration.
func loadConfig(path string) (order.Config, error) {
	cfg := order.DefaultConfig()

	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
	}

	applyFileConfig(&cfg, fc)
	return cfg, nil
}

func applyFileConfig(cfg *order.Config, fc fileConfig) {
	if fc.MinGutterSize != nil {
		cfg.MinGutterSize = *fc.MinGutterSize
	}
	if fc.MaxDepth != nil {
		cfg.MaxDepth = *fc.MaxDepth
	}
	if fc.FourKomaWidthRatio != nil {
		cfg.FourKomaWidthRatio = *fc.FourKomaWidthRatio
	}
	if fc.FourKomaGapTolerance != nil {
		cfg.FourKomaGapTolerance = *fc.FourKomaGapTolerance
	}
}

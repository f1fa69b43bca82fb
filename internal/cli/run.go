package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/d2color"
)

// resultDoc is the encoded output of a run.
type resultDoc struct {
	NDofs   int         `yaml:"n_dofs" json:"n_dofs"`
	NColors int         `yaml:"n_colors" json:"n_colors"`
	Colors  []int32     `yaml:"colors,flow" json:"colors"`
	Seeds   [][]float64 `yaml:"seeds,omitempty,flow" json:"seeds,omitempty"`
}

// Run loads the pattern, colors it and writes the result to out.
func Run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	start := time.Now()
	p, err := LoadPattern(cfg, in)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("load pattern: %v", err)}
	}
	logger.Info("pattern loaded", "dofs", p.Rows(), "nnz", p.NNZ())

	res, err := d2color.ColorAndSeeds(p.RowPtr, p.ColIdx, p.N,
		d2color.WithContext(ctx),
		d2color.WithWorkers(cfg.Workers),
		d2color.WithLogger(logger),
	)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("color pattern: %v", err)}
	}

	doc := resultDoc{NDofs: p.N, NColors: res.NumColors(), Colors: res.Colors}
	if cfg.Seeds {
		doc.Seeds = res.Seeds
	}
	if err := encode(out, cfg.Format, doc); err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("write result: %v", err)}
	}
	logger.Info("coloring written", "colors", doc.NColors, "elapsed", time.Since(start))

	return nil
}

func encode(w io.Writer, format string, doc resultDoc) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

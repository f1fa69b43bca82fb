package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/sparsity"
	"github.com/katalvlaran/lvcolor/stencil"
)

// ErrBadStencil indicates an unparsable -stencil spec.
var ErrBadStencil = errors.New("cli: bad stencil spec")

// patternDoc is the YAML/JSON pattern document. JSON input decodes through
// the same YAML decoder.
type patternDoc struct {
	NDofs  int     `yaml:"n_dofs"`
	RowPtr []int64 `yaml:"row_ptr"`
	ColIdx []int64 `yaml:"col_idx"`
}

// LoadPattern resolves the pattern described by cfg: a generated stencil,
// a Matrix Market file, or a YAML/JSON document (stdin for "-").
func LoadPattern(cfg *Config, stdin io.Reader) (*sparsity.Pattern, error) {
	if cfg.Stencil != "" {
		return ParseStencil(cfg.Stencil)
	}
	if cfg.Input == "-" {
		return decodePattern(stdin)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(cfg.Input)) {
	case ".mtx":
		return sparsity.ReadMatrixMarket(f)
	case ".yaml", ".yml", ".json":
		return decodePattern(f)
	default:
		return nil, fmt.Errorf("unsupported pattern file %q: want .mtx, .yaml, .yml or .json", cfg.Input)
	}
}

func decodePattern(r io.Reader) (*sparsity.Pattern, error) {
	var doc patternDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode pattern: %w", err)
	}

	return sparsity.NewPattern(doc.RowPtr, doc.ColIdx, doc.NDofs)
}

// ParseStencil builds the pattern named by spec:
//
//	diag:N  tridiag:N  banded:N:W  grid:RxC  grid8:RxC  random:N:P:SEED
func ParseStencil(spec string) (*sparsity.Pattern, error) {
	parts := strings.Split(spec, ":")
	bad := func(why string) error {
		return fmt.Errorf("%q: %s: %w", spec, why, ErrBadStencil)
	}
	ints := func(ss ...string) ([]int, error) {
		out := make([]int, len(ss))
		for i, s := range ss {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, bad("not an integer: " + s)
			}
			out[i] = v
		}
		return out, nil
	}

	var ctor stencil.Constructor
	var opts []stencil.Option
	switch {
	case parts[0] == "diag" && len(parts) == 2:
		v, err := ints(parts[1])
		if err != nil {
			return nil, err
		}
		ctor = stencil.Diagonal(v[0])
	case parts[0] == "tridiag" && len(parts) == 2:
		v, err := ints(parts[1])
		if err != nil {
			return nil, err
		}
		ctor = stencil.Tridiagonal(v[0])
	case parts[0] == "banded" && len(parts) == 3:
		v, err := ints(parts[1], parts[2])
		if err != nil {
			return nil, err
		}
		ctor = stencil.Banded(v[0], v[1])
	case (parts[0] == "grid" || parts[0] == "grid8") && len(parts) == 2:
		rc := strings.SplitN(parts[1], "x", 2)
		if len(rc) != 2 {
			return nil, bad("want RxC")
		}
		v, err := ints(rc[0], rc[1])
		if err != nil {
			return nil, err
		}
		conn := stencil.Conn4
		if parts[0] == "grid8" {
			conn = stencil.Conn8
		}
		ctor = stencil.Grid(v[0], v[1], conn)
	case parts[0] == "random" && len(parts) == 4:
		v, err := ints(parts[1], parts[3])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, bad("not a probability: " + parts[2])
		}
		ctor = stencil.RandomSparse(v[0], p)
		opts = append(opts, stencil.WithSeed(int64(v[1])))
	default:
		return nil, bad("unknown kind or wrong arity")
	}

	return stencil.Build(ctor, opts...)
}

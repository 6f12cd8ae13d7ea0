package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

// ErrCatalogDrift is returned when the convolution_kernels table no longer
// matches the compiled preset table.
var ErrCatalogDrift = errors.New("convolution_kernels table does not match preset registry")

// KernelRow is one row of convolution_kernels. Code is kept as the stored
// integer so rows outside the registry still reach DiffKernelRows.
type KernelRow struct {
	Code   int64  `db:"code"`
	Name   string `db:"name"`
	Family string `db:"family"`
}

// Querier is the subset of pgx used to read the reference table. Both
// *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const listKernelPresets = `SELECT code, name, family FROM convolution_kernels ORDER BY code`

// ListKernelPresets returns every row of convolution_kernels ordered by code.
func ListKernelPresets(ctx context.Context, q Querier) ([]KernelRow, error) {
	rows, err := q.Query(ctx, listKernelPresets)
	if err != nil {
		return nil, fmt.Errorf("query convolution_kernels: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[KernelRow])
	if err != nil {
		return nil, fmt.Errorf("scan convolution_kernels: %w", err)
	}
	return out, nil
}

func (db *DatabaseConnection) ListKernelPresets(ctx context.Context) ([]KernelRow, error) {
	return ListKernelPresets(ctx, db.Pool)
}

func (db *DatabaseConnection) VerifyKernelPresets(ctx context.Context) error {
	return VerifyKernelPresets(ctx, db.Pool)
}

// VerifyKernelPresets compares the stored table with the registry.
func VerifyKernelPresets(ctx context.Context, q Querier) error {
	rows, err := ListKernelPresets(ctx, q)
	if err != nil {
		return err
	}
	if problems := DiffKernelRows(rows); len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrCatalogDrift, strings.Join(problems, "; "))
	}
	return nil
}

// DiffKernelRows lists every difference between rows and the registry, in
// code order. An empty result means they agree.
func DiffKernelRows(rows []KernelRow) []string {
	var problems []string
	stored := make(map[int64]KernelRow, len(rows))
	for _, r := range rows {
		if _, dup := stored[r.Code]; dup {
			problems = append(problems, fmt.Sprintf("code %d stored twice", r.Code))
			continue
		}
		stored[r.Code] = r
	}

	for _, p := range kernels.All() {
		code := int64(p.Code())
		r, ok := stored[code]
		if !ok {
			problems = append(problems, fmt.Sprintf("code %d (%s) missing", code, p.Name()))
			continue
		}
		if r.Name != p.Name() {
			problems = append(problems, fmt.Sprintf("code %d stored as %q, want %q", code, r.Name, p.Name()))
		}
		if r.Family != string(p.Family()) {
			problems = append(problems, fmt.Sprintf("code %d family %q, want %q", code, r.Family, p.Family()))
		}
		delete(stored, code)
	}

	for _, r := range rows {
		if _, extra := stored[r.Code]; extra {
			problems = append(problems, fmt.Sprintf("code %d (%s) not in registry", r.Code, r.Name))
			delete(stored, r.Code)
		}
	}
	return problems
}

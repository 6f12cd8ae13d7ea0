package db

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

func registryRows() []KernelRow {
	rows := make([]KernelRow, 0, kernels.Count)
	for _, p := range kernels.All() {
		rows = append(rows, KernelRow{Code: int64(p.Code()), Name: p.Name(), Family: string(p.Family())})
	}
	return rows
}

func TestDiffKernelRows_Match(t *testing.T) {
	require.Empty(t, DiffKernelRows(registryRows()))
}

func TestDiffKernelRows_Drift(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		rows := registryRows()[:kernels.Count-1]
		require.Equal(t, []string{`code 21 (POINT_SPREAD) missing`}, DiffKernelRows(rows))
	})

	t.Run("renamed", func(t *testing.T) {
		rows := registryRows()
		rows[kernels.SobelVertical].Name = "SOBEL_Y"
		require.Equal(t, []string{`code 18 stored as "SOBEL_Y", want "SOBEL_VERTICAL"`}, DiffKernelRows(rows))
	})

	t.Run("wrong family", func(t *testing.T) {
		rows := registryRows()
		rows[kernels.Sharpen].Family = "edge"
		require.Equal(t, []string{`code 19 family "edge", want "sharpening"`}, DiffKernelRows(rows))
	})

	t.Run("duplicate and extra", func(t *testing.T) {
		rows := append(registryRows(),
			KernelRow{Code: 6, Name: "GRADIENT_EAST", Family: "gradient"},
			KernelRow{Code: 22, Name: "EMBOSS", Family: "emboss"},
		)
		require.Equal(t, []string{
			"code 6 stored twice",
			"code 22 (EMBOSS) not in registry",
		}, DiffKernelRows(rows))
	})

	t.Run("empty table", func(t *testing.T) {
		require.Len(t, DiffKernelRows(nil), kernels.Count)
	})
}

var seedRow = regexp.MustCompile(`\((\d+), '([A-Z0-9_]+)', '([a-z_]+)'\)`)

func TestMigration_SeedsRegistry(t *testing.T) {
	src, err := embedMigrations.ReadFile("sql/migrations/00001_create_convolution_kernels.sql")
	require.NoError(t, err)

	var rows []KernelRow
	for _, m := range seedRow.FindAllStringSubmatch(string(src), -1) {
		code, err := strconv.ParseInt(m[1], 10, 64)
		require.NoError(t, err)
		rows = append(rows, KernelRow{Code: code, Name: m[2], Family: m[3]})
	}
	require.Len(t, rows, kernels.Count)
	require.Empty(t, DiffKernelRows(rows))
}

func TestMigrationTarget(t *testing.T) {
	env := func(m map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	v, down, err := migrationTarget(env(nil))
	require.NoError(t, err)
	require.False(t, down)
	require.Positive(t, v)

	v, down, err = migrationTarget(env(map[string]string{"GOOSE_UP_TO": "1"}))
	require.NoError(t, err)
	require.False(t, down)
	require.Equal(t, int64(1), v)

	v, down, err = migrationTarget(env(map[string]string{"GOOSE_DOWN_TO": "0", "GOOSE_UP_TO": "1"}))
	require.NoError(t, err)
	require.True(t, down)
	require.Equal(t, int64(0), v)

	_, _, err = migrationTarget(env(map[string]string{"GOOSE_UP_TO": "latest"}))
	require.Error(t, err)
}

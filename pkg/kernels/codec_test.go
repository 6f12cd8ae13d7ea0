package kernels

import (
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSON_WritesCode(t *testing.T) {
	b, err := json.Marshal(SobelVertical)
	require.NoError(t, err)
	require.Equal(t, "18", string(b))

	b, err = json.Marshal(struct {
		Kernel Preset `json:"kernel"`
	}{PointSpread})
	require.NoError(t, err)
	require.JSONEq(t, `{"kernel":21}`, string(b))

	_, err = json.Marshal(Preset(40))
	require.Error(t, err)
}

func TestJSON_ReadsCodeOrName(t *testing.T) {
	var p Preset
	require.NoError(t, json.Unmarshal([]byte(`18`), &p))
	require.Equal(t, SobelVertical, p)

	require.NoError(t, json.Unmarshal([]byte(`"GRADIENT_EAST"`), &p))
	require.Equal(t, GradientEast, p)

	require.NoError(t, json.Unmarshal([]byte(`"0"`), &p))
	require.Equal(t, LineDetectionHorizontal, p)

	p = Sharpen
	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	require.Equal(t, Sharpen, p)

	require.ErrorIs(t, json.Unmarshal([]byte(`22`), &p), ErrUnknownPreset)
	require.ErrorIs(t, json.Unmarshal([]byte(`"EMBOSS"`), &p), ErrUnknownPreset)
	require.Error(t, json.Unmarshal([]byte(`1.5`), &p))
	require.Error(t, json.Unmarshal([]byte(`{}`), &p))
}

func TestText(t *testing.T) {
	b, err := SobelHorizontal.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "SOBEL_HORIZONTAL", string(b))

	_, err = Preset(-1).MarshalText()
	require.Error(t, err)

	var p Preset
	require.NoError(t, p.UnmarshalText([]byte("laplacian-3x3")))
	require.Equal(t, Laplacian3x3, p)
	require.Error(t, p.UnmarshalText([]byte("nope")))

	// map keys go through the text form
	b, err = json.Marshal(map[Preset]bool{Sharpen: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"SHARPEN":true}`, string(b))
}

func TestYAML(t *testing.T) {
	type doc struct {
		Kernel Preset   `yaml:"kernel"`
		Chain  []Preset `yaml:"chain"`
	}

	out, err := yaml.Marshal(doc{Kernel: Smoothing5x5, Chain: []Preset{GradientNorth, SobelVertical}})
	require.NoError(t, err)
	require.Contains(t, string(out), "kernel: SMOOTHING_5X5\n")
	require.Contains(t, string(out), "- GRADIENT_NORTH\n")
	require.Contains(t, string(out), "- SOBEL_VERTICAL\n")

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("kernel: 21\nchain: [sharpen, SOBEL_HORIZONTAL, 4]\n"), &d))
	require.Equal(t, PointSpread, d.Kernel)
	require.Equal(t, []Preset{Sharpen, SobelHorizontal, GradientNorth}, d.Chain)

	require.Error(t, yaml.Unmarshal([]byte("kernel: EMBOSS\n"), &d))
	require.Error(t, yaml.Unmarshal([]byte("kernel: [1, 2]\n"), &d))

	_, err = yaml.Marshal(doc{Kernel: Preset(30)})
	require.Error(t, err)
}

func TestSQL_ScanAndValue(t *testing.T) {
	var p Preset
	require.NoError(t, p.Scan(int64(18)))
	require.Equal(t, SobelVertical, p)
	require.NoError(t, p.Scan(int32(2)))
	require.Equal(t, LineDetectionLeftDiagonal, p)
	require.NoError(t, p.Scan(int16(3)))
	require.Equal(t, LineDetectionRightDiagonal, p)
	require.NoError(t, p.Scan(7))
	require.Equal(t, GradientSouth, p)
	require.NoError(t, p.Scan("POINT_SPREAD"))
	require.Equal(t, PointSpread, p)
	require.NoError(t, p.Scan([]byte("12")))
	require.Equal(t, Smoothing5x5, p)

	require.Error(t, p.Scan(nil))
	require.Error(t, p.Scan(int64(99)))
	require.Error(t, p.Scan(1.5))

	// Values that would wrap onto a valid code if narrowed to 32 bits.
	p = Sharpen
	require.ErrorIs(t, p.Scan(int64(1<<32+18)), ErrUnknownPreset)
	require.ErrorIs(t, p.Scan(int64(-1<<32)), ErrUnknownPreset)
	require.Equal(t, Sharpen, p)

	v, err := SobelVertical.Value()
	require.NoError(t, err)
	require.Equal(t, int64(18), v)

	_, err = Preset(99).Value()
	require.Error(t, err)
}

func TestPgx_Int64ScannerAndValuer(t *testing.T) {
	var p Preset
	require.NoError(t, p.ScanInt64(pgtype.Int8{Int64: 21, Valid: true}))
	require.Equal(t, PointSpread, p)

	require.Error(t, p.ScanInt64(pgtype.Int8{Valid: false}))
	require.ErrorIs(t, p.ScanInt64(pgtype.Int8{Int64: 22, Valid: true}), ErrUnknownPreset)
	require.ErrorIs(t, p.ScanInt64(pgtype.Int8{Int64: 1<<32 + 5, Valid: true}), ErrUnknownPreset)
	require.Equal(t, PointSpread, p)

	v, err := GradientWest.Int64Value()
	require.NoError(t, err)
	require.Equal(t, pgtype.Int8{Int64: 5, Valid: true}, v)

	_, err = Preset(-2).Int64Value()
	require.Error(t, err)
}

func TestDescriptorJSON(t *testing.T) {
	b, err := json.Marshal(Describe(GradientEast))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"code": 6,
		"name": "GRADIENT_EAST",
		"label": "Gradient East",
		"family": "gradient",
		"uuid": "`+GradientEast.UUID().String()+`"
	}`, string(b))
}

package kernels

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the integer code. Stored documents depend on the number,
// not the name.
func (p Preset) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownPreset, int(p))
	}
	return json.Marshal(int(p))
}

// UnmarshalJSON accepts an integer code or a string handled by Parse.
func (p *Preset) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("Preset.UnmarshalJSON: %w", err)
		}
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}

	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("Preset.UnmarshalJSON: %w", err)
	}
	v, err := FromCode(code)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText writes the canonical name.
func (p Preset) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownPreset, int(p))
	}
	return []byte(names[p]), nil
}

func (p *Preset) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML writes the canonical name so hand-edited files stay readable.
func (p Preset) MarshalYAML() (interface{}, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownPreset, int(p))
	}
	return names[p], nil
}

// UnmarshalYAML accepts a scalar name or integer code.
func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("kernel preset: expected scalar, got yaml kind %d at line %d", value.Kind, value.Line)
	}
	v, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = v
	return nil
}

// Scan implements sql.Scanner. Preset columns are integers and never NULL.
func (p *Preset) Scan(src any) error {
	var v Preset
	var err error
	switch s := src.(type) {
	case nil:
		return fmt.Errorf("cannot scan NULL into Preset")
	case int64:
		v, err = fromInt64(s)
	case int32:
		v, err = fromInt64(int64(s))
	case int16:
		v, err = fromInt64(int64(s))
	case int:
		v, err = FromCode(s)
	case string:
		v, err = Parse(s)
	case []byte:
		v, err = Parse(string(s))
	default:
		return fmt.Errorf("cannot scan type %T into Preset", src)
	}
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Value implements driver.Valuer, writing the integer code.
func (p Preset) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownPreset, int(p))
	}
	return int64(p), nil
}

// ScanInt64 implements the pgtype.Int64Scanner interface for pgx v5.
func (p *Preset) ScanInt64(v pgtype.Int8) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into Preset")
	}
	code, err := fromInt64(v.Int64)
	if err != nil {
		return err
	}
	*p = code
	return nil
}

// fromInt64 range-checks before narrowing so a wide column value cannot wrap
// onto a valid code where int is 32 bits.
func fromInt64(v int64) (Preset, error) {
	if v < MinCode || v > MaxCode {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownPreset, v)
	}
	return Preset(v), nil
}

// Int64Value implements the pgtype.Int64Valuer interface for pgx v5.
func (p Preset) Int64Value() (pgtype.Int8, error) {
	if !p.Valid() {
		return pgtype.Int8{}, fmt.Errorf("%w: code %d", ErrUnknownPreset, int(p))
	}
	return pgtype.Int8{Int64: int64(p), Valid: true}, nil
}

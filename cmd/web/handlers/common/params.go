package common

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

// RequirePresetParam resolves a route parameter holding a preset name or code.
// Unknown presets are a 404, an empty parameter a 400.
func RequirePresetParam(c echo.Context, param string) (kernels.Preset, error) {
	raw := strings.TrimSpace(c.Param(param))
	if raw == "" {
		return 0, ErrBadRequest("missing " + param)
	}
	p, err := kernels.Parse(raw)
	if errors.Is(err, kernels.ErrUnknownPreset) {
		return 0, ErrNotFound(err.Error())
	}
	if err != nil {
		return 0, ErrBadRequest("invalid " + param)
	}
	return p, nil
}

// OptionalFamilyParam reads a family query parameter. ok is false when the
// parameter is absent.
func OptionalFamilyParam(c echo.Context, param string) (f kernels.Family, ok bool, err error) {
	raw := strings.TrimSpace(c.QueryParam(param))
	if raw == "" {
		return "", false, nil
	}
	f, known := kernels.ParseFamily(raw)
	if !known {
		return "", false, ErrBadRequest("unknown " + param + " " + raw)
	}
	return f, true, nil
}

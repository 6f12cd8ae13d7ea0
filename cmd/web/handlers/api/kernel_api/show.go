package kernel_api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/rasterkernels/cmd/web/handlers/common"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

// HandleShow returns one preset, addressed by name or code.
func HandleShow() echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := common.RequirePresetParam(c, "ref")
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, kernels.Describe(p))
	}
}

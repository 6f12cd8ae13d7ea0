// package kernel_api serves the kernel preset registry as JSON.
package kernel_api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/rasterkernels/cmd/web/handlers/common"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

// HandleIndex returns every preset descriptor in code order, optionally
// filtered by ?family=.
func HandleIndex() echo.HandlerFunc {
	return func(c echo.Context) error {
		family, filtered, err := common.OptionalFamilyParam(c, "family")
		if err != nil {
			return err
		}

		out := kernels.Catalog()
		if filtered {
			members := kernels.InFamily(family)
			out = make([]kernels.Descriptor, 0, len(members))
			for _, p := range members {
				out = append(out, kernels.Describe(p))
			}
		}
		return c.JSON(http.StatusOK, out)
	}
}

package balances

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintechlabs/go-wallet-gate/internal/common/http"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

type balancesHandler struct {
	balanceService services.BalanceService
}

// New balances handler will initialize the /balances resources endpoint
func New(app fiber.Router, balanceService services.BalanceService) {
	handler := balancesHandler{balanceService: balanceService}

	accounts := app.Group("/balances")
	accounts.Get("", handler.getList)
	accounts.Get("/:account", handler.get)
}

func (h *balancesHandler) getList(c *fiber.Ctx) error {
	balances, total, err := h.balanceService.GetList(c.UserContext())
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, balances, total)
}

func (h *balancesHandler) get(c *fiber.Ctx) error {
	res, err := h.balanceService.Get(c.UserContext(), c.Params("account"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, res)
}

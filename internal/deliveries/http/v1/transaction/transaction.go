package transaction

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintechlabs/go-wallet-gate/internal/common/http"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

type transactionHandler struct {
	ledgerService services.LedgerService
}

// New transaction handler will initialize the /transactions resources endpoint
func New(app fiber.Router, ledgerService services.LedgerService) {
	handler := transactionHandler{ledgerService: ledgerService}

	transactions := app.Group("/transactions")
	transactions.Get("", handler.getList)
}

func (h *transactionHandler) getList(c *fiber.Ctx) error {
	records, total, err := h.ledgerService.GetList(c.UserContext())
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, records, total)
}

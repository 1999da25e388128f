package wallet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintechlabs/go-wallet-gate/internal/common/http"
	"github.com/fintechlabs/go-wallet-gate/internal/common/validation"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

type walletHandler struct {
	walletAccountService services.WalletAccountService
}

// New wallet handler will initialize the /wallet resources endpoint
func New(app fiber.Router, walletAccountService services.WalletAccountService) {
	handler := walletHandler{walletAccountService: walletAccountService}

	wallet := app.Group("/wallet")
	wallet.Post("/connect", handler.connect)
	wallet.Post("/disconnect", handler.disconnect)
	wallet.Get("/status", handler.status)
}

func (h *walletHandler) connect(c *fiber.Ctx) (err error) {
	req := new(models.ConnectWalletRequest)
	if err = c.BodyParser(req); err != nil {
		return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	info, err := h.walletAccountService.Connect(c.UserContext(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, info)
}

func (h *walletHandler) disconnect(c *fiber.Ctx) error {
	if err := h.walletAccountService.Disconnect(c.UserContext()); err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, fiber.Map{
		"kind":   "walletStatus",
		"status": "disconnected",
	})
}

func (h *walletHandler) status(c *fiber.Ctx) error {
	connected := h.walletAccountService.Status(c.UserContext())

	return http.RestSuccessResponse(c, fiber.StatusOK, fiber.Map{
		"kind":      "walletStatus",
		"connected": connected,
	})
}

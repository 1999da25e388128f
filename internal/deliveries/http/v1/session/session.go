package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"

	"github.com/fintechlabs/go-wallet-gate/internal/common/http"
	"github.com/fintechlabs/go-wallet-gate/internal/common/validation"
	"github.com/fintechlabs/go-wallet-gate/internal/config"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

type sessionHandler struct {
	gateService services.GateService
	cfg         config.Config
}

// defaultTimeoutHandler must stay above the largest simulated settlement
// delay or confirms would be cut off mid-commit.
const defaultTimeoutHandler = 15 * time.Second

// New session handler will initialize the /sessions resources endpoint
func New(cfg config.Config, app fiber.Router, gateService services.GateService) {
	handler := sessionHandler{
		cfg:         cfg,
		gateService: gateService,
	}

	timeoutHandler := defaultTimeoutHandler
	if cfg.GateConfig.HandlerTimeoutSession > 0 {
		timeoutHandler = cfg.GateConfig.HandlerTimeoutSession
	}

	sessions := app.Group("/sessions")
	sessions.Post("", handler.submitIntent)
	sessions.Get("/:sessionId", handler.getSession)
	sessions.Put("/:sessionId/pin", handler.enterPin)
	sessions.Post("/:sessionId/confirm",
		timeout.NewWithContext(handler.confirm, timeoutHandler))
	sessions.Post("/:sessionId/cancel", handler.cancel)
}

func (h *sessionHandler) submitIntent(c *fiber.Ctx) (err error) {
	req := new(models.SubmitIntentRequest)
	if err = c.BodyParser(req); err != nil {
		return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err = validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	session, err := h.gateService.SubmitIntent(c.UserContext(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusCreated, session)
}

func (h *sessionHandler) getSession(c *fiber.Ctx) error {
	session, err := h.gateService.Get(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, session)
}

func (h *sessionHandler) enterPin(c *fiber.Ctx) (err error) {
	req := new(models.EnterPinRequest)
	if err = c.BodyParser(req); err != nil {
		return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
	}

	session, err := h.gateService.EnterPinDigits(c.UserContext(), c.Params("sessionId"), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, session)
}

func (h *sessionHandler) confirm(c *fiber.Ctx) error {
	record, err := h.gateService.Confirm(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, record)
}

func (h *sessionHandler) cancel(c *fiber.Ctx) error {
	session, err := h.gateService.Cancel(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, session)
}

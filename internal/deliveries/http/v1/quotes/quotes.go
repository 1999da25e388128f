package quotes

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/common/http"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
	"github.com/fintechlabs/go-wallet-gate/internal/services"
)

type quotesHandler struct {
	quoteService services.QuoteService
}

// New quotes handler will initialize the /quotes and /rates resources endpoint
func New(app fiber.Router, quoteService services.QuoteService) {
	handler := quotesHandler{quoteService: quoteService}

	quotes := app.Group("/quotes")
	quotes.Get("", handler.getList)
	quotes.Get("/stream", handler.stream)

	rates := app.Group("/rates")
	rates.Get("/preview", handler.previewConversion)
}

func (h *quotesHandler) getList(c *fiber.Ctx) error {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		return http.RestErrorResponse(c, fiber.StatusBadRequest,
			fmt.Errorf("query parameter symbols is required"))
	}

	quotes, total, err := h.quoteService.GetQuotes(c.UserContext(), symbols)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, quotes, total)
}

// stream pushes quote refreshes as server-sent events until the client goes
// away.
func (h *quotesHandler) stream(c *fiber.Ctx) error {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		return http.RestErrorResponse(c, fiber.StatusBadRequest,
			fmt.Errorf("query parameter symbols is required"))
	}

	// The handler context dies with this call, the feed needs its own.
	streamCtx, cancel := context.WithCancel(context.Background())

	sub, err := h.quoteService.Subscribe(streamCtx, symbols)
	if err != nil {
		cancel()
		return http.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer sub.Close()

		for quotes := range sub.Updates() {
			payload, err := json.Marshal(models.QuoteListResponse{
				Kind:      "collection",
				Contents:  quotes,
				TotalRows: len(quotes),
			})
			if err != nil {
				return
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				// Client disconnected.
				return
			}
		}
	}))

	return nil
}

func (h *quotesHandler) previewConversion(c *fiber.Ctx) error {
	amount, err := models.NewDecimal(c.Query("amount"))
	if err != nil {
		return http.HandleServiceError(c, common.ErrInvalidAmount)
	}

	preview, err := h.quoteService.PreviewConversion(
		c.UserContext(), c.Query("from"), c.Query("to"), amount)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, fiber.StatusOK, preview)
}

func splitSymbols(raw string) []string {
	if raw == "" {
		return nil
	}

	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, strings.ToUpper(s))
		}
	}
	return symbols
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/fintechlabs/go-wallet-gate/internal/common"
	"github.com/fintechlabs/go-wallet-gate/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c *fiber.Ctx, code int, in interface{}) error {
	return c.Status(code).JSON(in)
}

func RestSuccessResponseListWithTotalRows(c *fiber.Ctx, data interface{}, totalRows int) error {
	return c.Status(fiber.StatusOK).JSON(RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c *fiber.Ctx, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.Status(statusCode).JSON(res)
}

func RestErrorValidationResponse(c *fiber.Ctx, errs interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
}

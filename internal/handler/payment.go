package handler

import (
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.paymentService.CreatePaymentIntent(ctx, c.Param("orderId"))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.paymentService.ConfirmPayment(ctx, c.Param("orderId")); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "paid",
	})
}

func (h *PaymentHandler) ExecuteRefund(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ExecuteRefundRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.paymentService.ExecuteRefund(ctx, c.Param("orderId"), req.AmountCents)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

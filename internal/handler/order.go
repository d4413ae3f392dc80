package handler

import (
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	accountID, _ := c.Get("user_id").(string)

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	order, err := h.orderService.CreateOrder(ctx, accountID, req.Type, req.Groups)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetOrder(ctx, c.Param("orderId"))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	accountID, _ := c.Get("user_id").(string)

	orders, err := h.orderService.ListOrders(ctx, accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) AssignSubmission(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AssignSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	submission, err := h.orderService.AssignSubmission(ctx, req.GroupID, req.OfferingID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, submission)
}

func (h *OrderHandler) UpdateSubmissionStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateSubmissionStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.orderService.UpdateSubmissionStatus(ctx, c.Param("submissionId"), req.Status); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": req.Status,
	})
}

func (h *OrderHandler) RecordPublishedURL(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RecordPublishedURLRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.orderService.RecordPublishedURL(ctx, c.Param("submissionId"), req.PublishedURL); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"published_url": req.PublishedURL,
	})
}

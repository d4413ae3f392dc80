package handler

import (
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PublisherHandler struct {
	invitationService service.InvitationService
}

func NewPublisherHandler(invitationService service.InvitationService) *PublisherHandler {
	return &PublisherHandler{
		invitationService: invitationService,
	}
}

func (h *PublisherHandler) InvitePublisher(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.InvitePublisherRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	invitation, err := h.invitationService.InvitePublisher(ctx, req.Email, req.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, invitation)
}

func (h *PublisherHandler) AcceptInvitation(c echo.Context) error {
	ctx := c.Request().Context()

	publisher, err := h.invitationService.AcceptInvitation(ctx, c.Param("token"))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, publisher)
}

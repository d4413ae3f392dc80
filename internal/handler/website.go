package handler

import (
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type WebsiteHandler struct {
	catalogService service.CatalogService
}

func NewWebsiteHandler(catalogService service.CatalogService) *WebsiteHandler {
	return &WebsiteHandler{
		catalogService: catalogService,
	}
}

func (h *WebsiteHandler) RegisterWebsite(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterWebsiteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	website, err := h.catalogService.RegisterWebsite(ctx, req.PublisherID, req.Domain, req.DomainRating, req.MonthlyTraffic)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, website)
}

func (h *WebsiteHandler) VetWebsite(c echo.Context) error {
	ctx := c.Request().Context()

	approve := c.QueryParam("decision") != "reject"

	if err := h.catalogService.VetWebsite(ctx, c.Param("websiteId"), approve); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"approved": approve,
	})
}

func (h *WebsiteHandler) ListVettedWebsites(c echo.Context) error {
	ctx := c.Request().Context()

	websites, err := h.catalogService.ListVettedWebsites(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, websites)
}

func (h *WebsiteHandler) CreateOffering(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOfferingRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	offering, err := h.catalogService.CreateOffering(ctx, c.Param("websiteId"), req.Type, req.RetailPriceCents, req.Currency, req.TurnaroundDays)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, offering)
}

func (h *WebsiteHandler) ListOfferings(c echo.Context) error {
	ctx := c.Request().Context()

	offerings, err := h.catalogService.ListOfferings(ctx, c.Param("websiteId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, offerings)
}

func (h *WebsiteHandler) OpenVettedSiteRequest(c echo.Context) error {
	ctx := c.Request().Context()

	accountID, _ := c.Get("user_id").(string)

	var req dto.OpenVettedSiteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	request, err := h.catalogService.OpenVettedSiteRequest(ctx, accountID, req.Niche, req.MinDomainRating, req.MaxPriceCents)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, request)
}

func (h *WebsiteHandler) ListOpenRequests(c echo.Context) error {
	ctx := c.Request().Context()

	requests, err := h.catalogService.ListOpenRequests(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, requests)
}

func (h *WebsiteHandler) FulfillRequest(c echo.Context) error {
	ctx := c.Request().Context()

	notes := c.QueryParam("notes")

	if err := h.catalogService.FulfillRequest(ctx, c.Param("requestId"), notes); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "fulfilled",
	})
}

package handler

import (
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct {
	workflowService service.WorkflowService
}

func NewWorkflowHandler(workflowService service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService: workflowService,
	}
}

func (h *WorkflowHandler) UpsertWorkflow(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpsertWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	workflow, err := h.workflowService.UpsertWorkflow(ctx, req.SubmissionID, req.Status, req.CurrentStepSlug)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, workflow)
}

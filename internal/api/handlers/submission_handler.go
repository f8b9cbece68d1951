package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"github.com/ngobridge/platform-go/pkg/response"
	"github.com/ngobridge/platform-go/pkg/utils"
	"gorm.io/gorm"
)

type SubmissionHandler struct {
	svc *application.SubmissionService
}

func NewSubmissionHandler(svc *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Submit godoc
// @Summary Apply to a funding opportunity
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param input body submission.SubmitInput true "Answers keyed by field label"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Missing required field or opportunity does not accept applications"
// @Failure 404 {object} response.ErrorResponse "Opportunity not found"
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /funding/{id}/applications [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	oppID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	var input submission.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: submissionData is required"})
		return
	}

	sub, err := h.svc.Submit(oppID, uid, input.SubmissionData)
	if err != nil {
		var missing *submission.MissingFieldError
		switch {
		case errors.As(err, &missing),
			errors.Is(err, application.ErrNotIntegrated),
			errors.Is(err, application.ErrProfileRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Funding opportunity not found"})
		case errors.Is(err, application.ErrDuplicateApplication):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Success 200 {array} submission.ApplicantView
// @Router /my-applications [get]
func (h *SubmissionHandler) ListMine(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.svc.ListByApplicant(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListForOpportunity godoc
// @Summary List applications for one of the caller's opportunities
// @Tags funder
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {array} submission.ReviewView
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Opportunity not found"
// @Router /funder/funding/{id}/applications [get]
func (h *SubmissionHandler) ListForOpportunity(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	oppID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	items, err := h.svc.ListByOpportunity(oppID, uid)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Funding opportunity not found"})
		case errors.Is(err, application.ErrNotOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateStatus godoc
// @Summary Move an application through the review lifecycle
// @Tags funder
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.UpdateStatusInput true "Target status"
// @Success 200 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Router /funder/applications/{id}/status [patch]
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	var input submission.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: status is required"})
		return
	}

	sub, err := h.svc.UpdateStatus(subID, uid, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		case errors.Is(err, application.ErrNotOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}

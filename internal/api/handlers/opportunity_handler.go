package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/pkg/response"
	"github.com/ngobridge/platform-go/pkg/utils"
	"gorm.io/gorm"
)

type OpportunityHandler struct {
	svc *application.OpportunityService
}

func NewOpportunityHandler(svc *application.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{svc: svc}
}

func opportunityErrStatus(err error) int {
	var serr *opportunity.SchemaError
	switch {
	case errors.As(err, &serr),
		errors.Is(err, application.ErrFunderNameRequired),
		errors.Is(err, application.ErrInvalidDeadline):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrHasSubmissions):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ListPublic godoc
// @Summary List funding opportunities
// @Tags funding
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param q query string false "Keyword filter"
// @Param tags query string false "Comma-separated tag filter"
// @Success 200 {object} response.PageResponse
// @Router /funding [get]
func (h *OpportunityHandler) ListPublic(c *gin.Context) {
	var q opportunity.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query"})
		return
	}

	items, total, err := h.svc.ListPublic(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	limit, _ := utils.Pagination(q.Page, q.Size)
	page := q.Page
	if page <= 0 {
		page = 1
	}
	c.JSON(http.StatusOK, response.PageResponse{
		TotalItems:  total,
		Items:       items,
		TotalPages:  utils.TotalPages(total, limit),
		CurrentPage: page,
	})
}

// Get godoc
// @Summary Get one funding opportunity
// @Tags funding
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} opportunity.FundingOpportunity
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /funding/{id} [get]
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	o, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Funding opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Create godoc
// @Summary Post a funding opportunity
// @Tags funder
// @Accept json
// @Produce json
// @Param input body opportunity.CreateOpportunityInput true "Opportunity fields"
// @Success 201 {object} opportunity.FundingOpportunity
// @Failure 400 {object} response.ErrorResponse "Invalid input or field schema"
// @Router /funder/funding [post]
func (h *OpportunityHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input opportunity.CreateOpportunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	o, err := h.svc.CreateByFunder(uid, input)
	if err != nil {
		c.JSON(opportunityErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, o)
}

// ListMine godoc
// @Summary List the caller's posted opportunities
// @Tags funder
// @Produce json
// @Success 200 {array} opportunity.FundingOpportunity
// @Router /funder/funding [get]
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.svc.ListByFunder(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMine godoc
// @Summary Get one of the caller's opportunities
// @Tags funder
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} opportunity.FundingOpportunity
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /funder/funding/{id} [get]
func (h *OpportunityHandler) GetMine(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	o, err := h.svc.GetOwned(id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Funding opportunity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Update godoc
// @Summary Update one of the caller's opportunities
// @Tags funder
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param input body opportunity.UpdateOpportunityInput true "Fields to change"
// @Success 200 {object} opportunity.FundingOpportunity
// @Failure 400 {object} response.ErrorResponse "Invalid input or field schema"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /funder/funding/{id} [put]
func (h *OpportunityHandler) Update(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	var input opportunity.UpdateOpportunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	o, err := h.svc.UpdateOwned(id, uid, input)
	if err != nil {
		c.JSON(opportunityErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Delete godoc
// @Summary Delete one of the caller's opportunities
// @Tags funder
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Applications exist"
// @Router /funder/funding/{id} [delete]
func (h *OpportunityHandler) Delete(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	if err := h.svc.DeleteOwned(id, uid); err != nil {
		c.JSON(opportunityErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Funding opportunity deleted"})
}

// --- Admin variants ---

// AdminList godoc
// @Summary List all funding opportunities
// @Tags admin
// @Produce json
// @Success 200 {array} opportunity.FundingOpportunity
// @Router /admin/funding [get]
func (h *OpportunityHandler) AdminList(c *gin.Context) {
	items, err := h.svc.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AdminCreate godoc
// @Summary Post a funding opportunity on behalf of a funder
// @Tags admin
// @Accept json
// @Produce json
// @Param input body opportunity.CreateOpportunityInput true "Opportunity fields (funderName required)"
// @Success 201 {object} opportunity.FundingOpportunity
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /admin/funding [post]
func (h *OpportunityHandler) AdminCreate(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input opportunity.CreateOpportunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	o, err := h.svc.CreateByAdmin(uid, input)
	if err != nil {
		c.JSON(opportunityErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, o)
}

// AdminUpdate godoc
// @Summary Update any funding opportunity
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param input body opportunity.UpdateOpportunityInput true "Fields to change"
// @Success 200 {object} opportunity.FundingOpportunity
// @Router /admin/funding/{id} [put]
func (h *OpportunityHandler) AdminUpdate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	var input opportunity.UpdateOpportunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	o, err := h.svc.UpdateByAdmin(id, input)
	if err != nil {
		c.JSON(opportunityErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// AdminDelete godoc
// @Summary Delete any funding opportunity
// @Tags admin
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse "Applications exist"
// @Router /admin/funding/{id} [delete]
func (h *OpportunityHandler) AdminDelete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	if err := h.svc.DeleteByAdmin(id); err != nil {
		c.JSON(opportunityErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Funding opportunity deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/discount"
	"github.com/ngobridge/platform-go/pkg/response"
	"github.com/ngobridge/platform-go/pkg/utils"
	"gorm.io/gorm"
)

type DiscountHandler struct {
	svc *application.DiscountService
}

func NewDiscountHandler(svc *application.DiscountService) *DiscountHandler {
	return &DiscountHandler{svc: svc}
}

func discountErrStatus(err error) int {
	switch {
	case errors.Is(err, application.ErrProviderNameRequired),
		errors.Is(err, application.ErrInvalidExpiryDate):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ListPublic godoc
// @Summary List discount offers
// @Tags discounts
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param q query string false "Keyword filter"
// @Param category query string false "Category filter"
// @Success 200 {object} response.PageResponse
// @Router /discounts [get]
func (h *DiscountHandler) ListPublic(c *gin.Context) {
	var q discount.ListQuery
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
// @Summary Get one discount offer
// @Tags discounts
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} discount.DiscountOffer
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	d, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Discount offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// Create godoc
// @Summary Post a discount offer
// @Tags provider
// @Accept json
// @Produce json
// @Param input body discount.OfferInput true "Offer fields"
// @Success 201 {object} discount.DiscountOffer
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /provider/discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input discount.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	d, err := h.svc.CreateByProvider(uid, input)
	if err != nil {
		c.JSON(discountErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListMine godoc
// @Summary List the caller's discount offers
// @Tags provider
// @Produce json
// @Success 200 {array} discount.DiscountOffer
// @Router /provider/discounts [get]
func (h *DiscountHandler) ListMine(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.svc.ListByProvider(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Update godoc
// @Summary Update one of the caller's offers
// @Tags provider
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param input body discount.OfferInput true "Offer fields"
// @Success 200 {object} discount.DiscountOffer
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /provider/discounts/{id} [put]
func (h *DiscountHandler) Update(c *gin.Context) {
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

	var input discount.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	d, err := h.svc.UpdateOwned(id, uid, input)
	if err != nil {
		c.JSON(discountErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// Delete godoc
// @Summary Delete one of the caller's offers
// @Tags provider
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /provider/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
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
		c.JSON(discountErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Discount offer deleted"})
}

// --- Admin variants ---

// AdminList godoc
// @Summary List all discount offers
// @Tags admin
// @Produce json
// @Success 200 {array} discount.DiscountOffer
// @Router /admin/discounts [get]
func (h *DiscountHandler) AdminList(c *gin.Context) {
	items, err := h.svc.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AdminCreate godoc
// @Summary Post a discount offer on behalf of a provider
// @Tags admin
// @Accept json
// @Produce json
// @Param input body discount.OfferInput true "Offer fields (providerName required)"
// @Success 201 {object} discount.DiscountOffer
// @Router /admin/discounts [post]
func (h *DiscountHandler) AdminCreate(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input discount.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	d, err := h.svc.CreateByAdmin(uid, input)
	if err != nil {
		c.JSON(discountErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// AdminUpdate godoc
// @Summary Update any discount offer
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param input body discount.OfferInput true "Offer fields"
// @Success 200 {object} discount.DiscountOffer
// @Router /admin/discounts/{id} [put]
func (h *DiscountHandler) AdminUpdate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	var input discount.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	d, err := h.svc.UpdateByAdmin(id, input)
	if err != nil {
		c.JSON(discountErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// AdminDelete godoc
// @Summary Delete any discount offer
// @Tags admin
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} response.MessageResponse
// @Router /admin/discounts/{id} [delete]
func (h *DiscountHandler) AdminDelete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	if err := h.svc.DeleteByAdmin(id); err != nil {
		c.JSON(discountErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Discount offer deleted"})
}

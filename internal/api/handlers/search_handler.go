package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/search"
	"github.com/ngobridge/platform-go/pkg/response"
	"github.com/ngobridge/platform-go/pkg/utils"
	"gorm.io/gorm"
)

type SearchHandler struct {
	svc *application.SavedSearchService
}

func NewSearchHandler(svc *application.SavedSearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Create godoc
// @Summary Save a search
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param input body search.CreateSavedSearchInput true "Search criteria"
// @Success 201 {object} search.SavedSearch
// @Failure 400 {object} response.ErrorResponse "Invalid type or empty criteria"
// @Router /saved-searches [post]
func (h *SearchHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input search.CreateSavedSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: searchType is required"})
		return
	}

	ss, err := h.svc.Create(uid, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidSearchType),
			errors.Is(err, application.ErrSearchCriteriaEmpty):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, ss)
}

// List godoc
// @Summary List the caller's saved searches
// @Tags saved-searches
// @Produce json
// @Success 200 {array} search.SavedSearch
// @Router /saved-searches [get]
func (h *SearchHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete godoc
// @Summary Delete one of the caller's saved searches
// @Tags saved-searches
// @Produce json
// @Param id path int true "Saved search ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /saved-searches/{id} [delete]
func (h *SearchHandler) Delete(c *gin.Context) {
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

	if err := h.svc.Delete(id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Saved search not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Saved search deleted"})
}

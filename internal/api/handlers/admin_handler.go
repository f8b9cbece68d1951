package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/pkg/response"
	"github.com/ngobridge/platform-go/pkg/utils"
	"gorm.io/gorm"
)

type AdminHandler struct {
	svc *application.AdminService
}

func NewAdminHandler(svc *application.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Stats godoc
// @Summary Platform dashboard counters
// @Tags admin
// @Produce json
// @Success 200 {object} application.DashboardStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUnverifiedNgos godoc
// @Summary List NGO accounts waiting for verification
// @Tags admin
// @Produce json
// @Success 200 {array} repository.UnverifiedNgo
// @Router /admin/ngos/unverified [get]
func (h *AdminHandler) ListUnverifiedNgos(c *gin.Context) {
	items, err := h.svc.ListUnverifiedNgos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// VerifyNgo godoc
// @Summary Verify an NGO account
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Not an NGO or already verified"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /admin/ngos/{id}/verify [patch]
func (h *AdminHandler) VerifyNgo(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	u, err := h.svc.VerifyNgo(id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotNgo),
			errors.Is(err, application.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsers godoc
// @Summary List accounts with paging and filters
// @Tags admin
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param email query string false "Email substring filter"
// @Param role query string false "Role filter"
// @Success 200 {object} response.PageResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	items, total, err := h.svc.ListUsers(page, size, c.Query("email"), c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	limit, _ := utils.Pagination(page, size)
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

// UpdateUser godoc
// @Summary Change another account's role or verified flag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.AdminUpdateUserInput true "Fields to change"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid role or self update"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	adminUID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	var input user.AdminUpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	u, err := h.svc.UpdateUser(adminUID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrSelfUpdate),
			errors.Is(err, application.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Self delete"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminUID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}

	if err := h.svc.DeleteUser(adminUID, id); err != nil {
		switch {
		case errors.Is(err, application.ErrSelfUpdate):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}

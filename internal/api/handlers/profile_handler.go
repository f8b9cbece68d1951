package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/pkg/response"
	"github.com/ngobridge/platform-go/pkg/utils"
)

type ProfileHandler struct {
	svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetNgoProfile godoc
// @Summary Get the caller's NGO profile
// @Tags profiles
// @Produce json
// @Success 200 {object} profile.NgoProfile
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Router /profiles/ngo/me [get]
func (h *ProfileHandler) GetNgoProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.GetNgoProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertNgoProfile godoc
// @Summary Create or update the caller's NGO profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param input body profile.NgoProfileInput true "Profile fields"
// @Success 200 {object} profile.NgoProfile
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /profiles/ngo/me [put]
func (h *ProfileHandler) UpsertNgoProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input profile.NgoProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	p, err := h.svc.UpsertNgoProfile(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetFunderProfile godoc
// @Summary Get the caller's funder profile
// @Tags profiles
// @Produce json
// @Success 200 {object} profile.FunderProfile
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Router /profiles/funder/me [get]
func (h *ProfileHandler) GetFunderProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.GetFunderProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertFunderProfile godoc
// @Summary Create or update the caller's funder profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param input body profile.FunderProfileInput true "Profile fields"
// @Success 200 {object} profile.FunderProfile
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /profiles/funder/me [put]
func (h *ProfileHandler) UpsertFunderProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input profile.FunderProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	p, err := h.svc.UpsertFunderProfile(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProviderProfile godoc
// @Summary Get the caller's service provider profile
// @Tags profiles
// @Produce json
// @Success 200 {object} profile.ProviderProfile
// @Failure 404 {object} response.ErrorResponse "Profile not found"
// @Router /profiles/provider/me [get]
func (h *ProfileHandler) GetProviderProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.GetProviderProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertProviderProfile godoc
// @Summary Create or update the caller's service provider profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param input body profile.ProviderProfileInput true "Profile fields"
// @Success 200 {object} profile.ProviderProfile
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /profiles/provider/me [put]
func (h *ProfileHandler) UpsertProviderProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input profile.ProviderProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	p, err := h.svc.UpsertProviderProfile(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

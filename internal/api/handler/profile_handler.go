package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/habilitations/internal/api/dto"
	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ListProfiles handles GET /profiles
//
//	@Summary	List profiles
//	@Tags		profiles
//	@Produce	json
//	@Security	BasicAuth
//	@Success	200	{object}	dto.ProfileListResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := dto.ProfileListResponse{Items: make([]dto.ProfileResponse, len(profiles))}
	for i, p := range profiles {
		response.Items[i] = toProfileResponse(p)
	}

	c.JSON(http.StatusOK, response)
}

// CreateProfile handles POST /profiles
//
//	@Summary	Create a profile
//	@Tags		profiles
//	@Accept		json
//	@Produce	json
//	@Security	BasicAuth
//	@Param		request	body		dto.CreateProfileRequest	true	"Profile"
//	@Success	201		{object}	dto.ProfileResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func toProfileResponse(p domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{ID: p.ID(), Name: p.Name()}
}

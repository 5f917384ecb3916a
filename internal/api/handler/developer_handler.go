package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/habilitations/internal/api/dto"
	"github.com/martijn/habilitations/internal/api/middleware"
	"github.com/martijn/habilitations/internal/api/util"
	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/service"
	"github.com/rs/zerolog/log"
)

// Allowed fields for developer queries
var developerQueryFields = []string{"last_name", "first_name", "email", "profile"}

type DeveloperHandler struct {
	developerService *service.DeveloperService
}

func NewDeveloperHandler(developerService *service.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{developerService: developerService}
}

// ListDevelopers handles GET /developers
//
//	@Summary		List developers
//	@Description	Developers are sorted by last name then first name.
//	@Tags			developers
//	@Produce		json
//	@Security		BasicAuth
//	@Param			query		query		string	false	"Filters, e.g. profile|admin,last_name|contains|do"
//	@Param			page		query		int		false	"Page number"
//	@Param			per_page	query		int		false	"Items per page"
//	@Success		200			{object}	dto.DeveloperListResponse
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		401			{object}	dto.ErrorResponse
//	@Router			/developers [get]
func (h *DeveloperHandler) ListDevelopers(c *gin.Context) {
	filter, err := util.ParseListFilter(c.Query("query"), c.Query("page"), c.Query("per_page"), developerQueryFields)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	developers, err := h.developerService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	matching := make([]*domain.Developer, 0, len(developers))
	for _, d := range developers {
		if matchesFilters(d, filter.Filters) {
			matching = append(matching, d)
		}
	}

	start, end, totalPages := filter.Bounds(len(matching))
	response := dto.DeveloperListResponse{
		Items: make([]dto.DeveloperResponse, 0, end-start),
		Pagination: dto.PaginationInfo{
			Total:      len(matching),
			Page:       filter.Page,
			PerPage:    filter.PerPage,
			TotalPages: totalPages,
		},
	}
	for _, d := range matching[start:end] {
		response.Items = append(response.Items, toDeveloperResponse(d))
	}

	c.JSON(http.StatusOK, response)
}

// GetDeveloper handles GET /developers/:id
//
//	@Summary	Get a developer
//	@Tags		developers
//	@Produce	json
//	@Security	BasicAuth
//	@Param		id	path		int	true	"Developer ID"
//	@Success	200	{object}	dto.DeveloperResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/developers/{id} [get]
func (h *DeveloperHandler) GetDeveloper(c *gin.Context) {
	id, ok := developerID(c)
	if !ok {
		return
	}

	developer, err := h.developerService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDeveloperResponse(developer))
}

// CreateDeveloper handles POST /developers
//
//	@Summary		Create a developer
//	@Description	Without a password the last name becomes the initial password.
//	@Tags			developers
//	@Accept			json
//	@Produce		json
//	@Security		BasicAuth
//	@Param			request	body		dto.CreateDeveloperRequest	true	"Developer"
//	@Success		201		{object}	dto.DeveloperResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/developers [post]
func (h *DeveloperHandler) CreateDeveloper(c *gin.Context) {
	var req dto.CreateDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	developer := &domain.Developer{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Profile:   domain.NewProfile(req.ProfileID, ""),
	}

	created, err := h.developerService.Create(c.Request.Context(), developer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDeveloperResponse(created))
}

// UpdateDeveloper handles PUT /developers/:id
//
//	@Summary	Update a developer
//	@Tags		developers
//	@Accept		json
//	@Produce	json
//	@Security	BasicAuth
//	@Param		id		path		int							true	"Developer ID"
//	@Param		request	body		dto.UpdateDeveloperRequest	true	"Developer"
//	@Success	200		{object}	dto.DeveloperResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/developers/{id} [put]
func (h *DeveloperHandler) UpdateDeveloper(c *gin.Context) {
	id, ok := developerID(c)
	if !ok {
		return
	}

	var req dto.UpdateDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	developer := domain.NewDeveloper(id, req.LastName, req.FirstName, req.Phone, req.Email, domain.NewProfile(req.ProfileID, ""))
	updated, err := h.developerService.Update(c.Request.Context(), developer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDeveloperResponse(updated))
}

// UpdatePassword handles PUT /developers/:id/password
//
//	@Summary	Change a developer password
//	@Tags		developers
//	@Accept		json
//	@Security	BasicAuth
//	@Param		id		path	int							true	"Developer ID"
//	@Param		request	body	dto.UpdatePasswordRequest	true	"New password"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/developers/{id}/password [put]
func (h *DeveloperHandler) UpdatePassword(c *gin.Context) {
	id, ok := developerID(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.developerService.ChangePassword(c.Request.Context(), id, req.Password); err != nil {
		writeError(c, err)
		return
	}

	log.Info().Int("id", id).Str("by", actor(c)).Msg("Password changed through the API")

	c.Status(http.StatusNoContent)
}

// DeleteDeveloper handles DELETE /developers/:id
//
//	@Summary	Delete a developer
//	@Tags		developers
//	@Security	BasicAuth
//	@Param		id	path	int	true	"Developer ID"
//	@Success	204
//	@Router		/developers/{id} [delete]
func (h *DeveloperHandler) DeleteDeveloper(c *gin.Context) {
	id, ok := developerID(c)
	if !ok {
		return
	}

	if err := h.developerService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	log.Info().Int("id", id).Str("by", actor(c)).Msg("Developer deleted through the API")

	c.Status(http.StatusNoContent)
}

func developerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		badRequest(c, fmt.Sprintf("invalid developer id: %s", c.Param("id")))
		return 0, false
	}
	return id, true
}

// actor names the authenticated administrator for audit logs
func actor(c *gin.Context) string {
	identity, ok := middleware.GetAdminIdentity(c)
	if !ok {
		return "anonymous"
	}
	return identity.LastName + "/" + identity.FirstName
}

func matchesFilters(d *domain.Developer, filters []util.QueryFilter) bool {
	for _, f := range filters {
		var value string
		switch f.Field {
		case "last_name":
			value = d.LastName
		case "first_name":
			value = d.FirstName
		case "email":
			value = d.Email
		case "profile":
			value = d.Profile.Name()
		}
		if !f.Match(value) {
			return false
		}
	}
	return true
}

func toDeveloperResponse(d *domain.Developer) dto.DeveloperResponse {
	return dto.DeveloperResponse{
		ID:        d.ID,
		LastName:  d.LastName,
		FirstName: d.FirstName,
		Phone:     d.Phone,
		Email:     d.Email,
		Profile:   toProfileResponse(d.Profile),
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/habilitations/internal/api/dto"
	"github.com/martijn/habilitations/internal/core/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Check handles POST /auth/check
//
//	@Summary	Check administrator credentials
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AuthCheckRequest	true	"Credentials"
//	@Success	200		{object}	dto.AuthCheckResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/auth/check [post]
func (h *AuthHandler) Check(c *gin.Context) {
	var req dto.AuthCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ok, err := h.authService.Authenticate(c.Request.Context(), req.LastName, req.FirstName, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthCheckResponse{Authenticated: ok})
}

package handlers

import (
	"net/http"

	"crudboard_backend/internal/services"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService services.AuthService
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authService: authService,
	}
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates an unverified account and emails a verification link
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignupRequest  true  "Registration data"
// @Success      201      {object}  map[string]string
// @Failure      400      {object}  apperrors.ErrorResponse
// @Failure      403      {object}  apperrors.ErrorResponse
// @Failure      409      {object}  apperrors.ErrorResponse
// @Router       /api/users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered. Verify your email.",
	})
}

// VerifyEmail godoc
// @Summary      Verify a user's email
// @Tags         users
// @Produce      json
// @Param        token  query     string  true  "Email verification token"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  apperrors.ErrorResponse
// @Failure      404    {object}  apperrors.ErrorResponse
// @Router       /api/users/verify [get]
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: token"))
		return
	}

	response, err := h.authService.VerifyEmail(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": response.Message})
}

// AdminCreateUser godoc
// @Summary      Create a new user (admin only)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.AdminCreateUserRequest  true  "User data"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  apperrors.ErrorResponse
// @Failure      403      {object}  apperrors.ErrorResponse
// @Router       /api/auth/admin/create-user [post]
func (h *UserHandler) AdminCreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.AdminCreateUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User created",
		"user":    user,
	})
}

// AdminGetUser godoc
// @Summary      Get a user by ID (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  dto.UserDTO
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /api/auth/admin/users/{id} [get]
func (h *UserHandler) AdminGetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// AdminDeleteUser godoc
// @Summary      Delete a user (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /api/auth/admin/users/{id} [delete]
func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// AdminListUsers godoc
// @Summary      List users (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserDTO
// @Failure      403  {object}  apperrors.ErrorResponse
// @Router       /api/auth/admin/users [get]
func (h *UserHandler) AdminListUsers(c *gin.Context) {
	limit, offset := ParsePagination(c)

	users, err := h.userService.ListUsers(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

package controller

import (
	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/middleware"
	"github.com/ecofinds/marketplace-service/internal/service"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	uc := UserController{
		service: service,
	}
	e.POST("/register", uc.Register)
	e.POST("/login", uc.Login)
	e.POST("/refresh", uc.Refresh)
	e.POST("/logout", uc.Logout, isLoggedIn)
	e.GET("/me", uc.GetMe, isLoggedIn)
	e.PUT("/profile", uc.UpdateProfile, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) Refresh(e echo.Context) error {
	token := middleware.ExtractBearerToken(e)
	if token == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthorized, nil)
	}

	resp, err := c.service.Refresh(e.Request().Context(), token)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

// Logout only acknowledges; token invalidation happens client-side.
func (c *UserController) Logout(e echo.Context) error {
	return response.WriteSuccessResponse(e, "Logout successful. Please clear your token client-side.", nil)
}

func (c *UserController) GetMe(e echo.Context) error {
	resp, err := c.service.GetCurrentUser(e.Request().Context(), middleware.ExtractUserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	payload := dto.UpdateProfileRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.UpdateProfile(e.Request().Context(), middleware.ExtractUserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

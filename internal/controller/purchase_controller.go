package controller

import (
	"github.com/ecofinds/marketplace-service/internal/middleware"
	"github.com/ecofinds/marketplace-service/internal/service"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type PurchaseController struct {
	service service.PurchaseService
}

func CreatePurchaseController(e *echo.Group, service service.PurchaseService, isLoggedIn echo.MiddlewareFunc) {
	pc := PurchaseController{
		service: service,
	}
	e.POST("/cart/checkout", pc.Checkout, isLoggedIn)
	e.GET("/purchases", pc.GetHistory, isLoggedIn)
}

func (c *PurchaseController) Checkout(e echo.Context) error {
	resp, err := c.service.Checkout(e.Request().Context(), middleware.ExtractUserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Checkout successful", resp)
}

func (c *PurchaseController) GetHistory(e echo.Context) error {
	resp, err := c.service.GetHistory(e.Request().Context(), middleware.ExtractUserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

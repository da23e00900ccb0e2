package controller

import (
	"strconv"

	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/middleware"
	"github.com/ecofinds/marketplace-service/internal/service"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService, isLoggedIn echo.MiddlewareFunc) {
	cc := CartController{
		service: service,
	}
	e.GET("/cart", cc.GetCart, isLoggedIn)
	e.POST("/cart", cc.AddItem, isLoggedIn)
	e.PUT("/cart/item/:productId", cc.UpdateItem, isLoggedIn)
	e.DELETE("/cart/item/:productId", cc.RemoveItem, isLoggedIn)
}

func (c *CartController) GetCart(e echo.Context) error {
	resp, err := c.service.GetCart(e.Request().Context(), middleware.ExtractUserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddItem(e echo.Context) error {
	payload := dto.AddCartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddItem").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, created, err := c.service.AddItem(e.Request().Context(), middleware.ExtractUserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if created {
		return response.WriteCreatedResponse(e, "Item added to cart", resp)
	}

	return response.WriteSuccessResponse(e, "Cart item quantity updated", resp)
}

func (c *CartController) UpdateItem(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("productId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrCartItemNotFound, nil)
	}

	payload := dto.UpdateCartItemRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateItem").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, removed, err := c.service.UpdateItem(e.Request().Context(), middleware.ExtractUserID(e), productID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	msg := "Cart item quantity updated"
	if removed {
		msg = "Item removed from cart as quantity was less than 1"
	}

	return response.WriteSuccessResponse(e, msg, resp)
}

func (c *CartController) RemoveItem(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("productId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrCartItemNotFound, nil)
	}

	resp, err := c.service.RemoveItem(e.Request().Context(), middleware.ExtractUserID(e), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product removed from cart", resp)
}

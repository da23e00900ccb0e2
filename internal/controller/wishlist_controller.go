package controller

import (
	"strconv"

	"github.com/ecofinds/marketplace-service/internal/middleware"
	"github.com/ecofinds/marketplace-service/internal/service"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type WishlistController struct {
	service service.WishlistService
}

func CreateWishlistController(e *echo.Group, service service.WishlistService, isLoggedIn echo.MiddlewareFunc) {
	wc := WishlistController{
		service: service,
	}
	e.GET("/wishlist", wc.GetWishlist, isLoggedIn)
	e.POST("/wishlist/:productId", wc.AddToWishlist, isLoggedIn)
	e.DELETE("/wishlist/:productId", wc.RemoveFromWishlist, isLoggedIn)
}

func (c *WishlistController) GetWishlist(e echo.Context) error {
	resp, err := c.service.GetWishlist(e.Request().Context(), middleware.ExtractUserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *WishlistController) AddToWishlist(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("productId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrProductNotFound, nil)
	}

	if err := c.service.AddToWishlist(e.Request().Context(), middleware.ExtractUserID(e), productID); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product added to wishlist", nil)
}

func (c *WishlistController) RemoveFromWishlist(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("productId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrProductNotFound, nil)
	}

	if err := c.service.RemoveFromWishlist(e.Request().Context(), middleware.ExtractUserID(e), productID); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product removed from wishlist", nil)
}

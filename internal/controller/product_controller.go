package controller

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/middleware"
	"github.com/ecofinds/marketplace-service/internal/service"
	pkgdto "github.com/ecofinds/marketplace-service/pkg/dto"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	pc := ProductController{
		service: service,
	}
	e.GET("/products", pc.GetProducts)
	e.GET("/products/:id", pc.GetProductByID)
	e.POST("/products", pc.AddProduct, isLoggedIn)
	e.PUT("/products/:id", pc.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", pc.DeleteProduct, isLoggedIn)
	e.GET("/my-listings", pc.GetMyListings, isLoggedIn)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrProductNotFound, nil)
	}

	resp, err := c.service.GetProductByID(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	if !isMultipart(e) {
		return response.WriteErrorResponse(e, errs.ErrUnsupportedMedia, nil)
	}

	form, err := e.MultipartForm()
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	priceStr := strings.TrimSpace(e.FormValue("price"))
	if priceStr == "" {
		return response.WriteErrorResponse(e, errs.ErrMissingFields, nil)
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrInvalidPrice, nil)
	}

	payload := dto.CreateProductRequest{
		Title:       e.FormValue("title"),
		Description: e.FormValue("description"),
		Category:    e.FormValue("category"),
		Price:       price,
		Images:      form.File["images"],
	}

	resp, err := c.service.AddProduct(e.Request().Context(), middleware.ExtractUserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrProductNotFound, nil)
	}

	if !isMultipart(e) {
		return response.WriteErrorResponse(e, errs.ErrUnsupportedMedia, nil)
	}

	form, err := e.MultipartForm()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.UpdateProductRequest{
		Title:       formValuePtr(form.Value, "title"),
		Description: formValuePtr(form.Value, "description"),
		Category:    formValuePtr(form.Value, "category"),
		NewImages:   form.File["images"],
	}

	if priceStr := formValuePtr(form.Value, "price"); priceStr != nil {
		price, err := strconv.ParseFloat(strings.TrimSpace(*priceStr), 64)
		if err != nil {
			return response.WriteErrorResponse(e, errs.ErrInvalidPrice, nil)
		}
		payload.Price = &price
	}

	// existingImages is a JSON array of image URLs/filenames the client
	// wants to keep; an unparseable value keeps nothing, mirroring a
	// client that sent none.
	if existing := formValuePtr(form.Value, "existingImages"); existing != nil {
		if err := json.Unmarshal([]byte(*existing), &payload.ExistingImages); err != nil {
			log.Warn().Err(err).Str("component", "UpdateProduct").Msg("could not parse existingImages")
		}
	}

	resp, err := c.service.UpdateProduct(e.Request().Context(), middleware.ExtractUserID(e), productID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	productID, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrProductNotFound, nil)
	}

	err = c.service.DeleteProduct(e.Request().Context(), middleware.ExtractUserID(e), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", nil)
}

func (c *ProductController) GetMyListings(e echo.Context) error {
	resp, err := c.service.GetProductsBySeller(e.Request().Context(), middleware.ExtractUserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", echo.Map{"products": resp})
}

func isMultipart(e echo.Context) bool {
	return strings.HasPrefix(e.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func formValuePtr(values map[string][]string, key string) *string {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return nil
	}
	return &v[0]
}

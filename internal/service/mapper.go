package service

import (
	"fmt"
	"strings"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/dto"
)

// imageURLBuilder turns stored filenames into the absolute URLs responses
// carry. Anything that already looks like a full URL passes through untouched.
type imageURLBuilder struct {
	prefix string
}

func newImageURLBuilder(conf config.UploadConfig) imageURLBuilder {
	return imageURLBuilder{
		prefix: strings.TrimSuffix(conf.BaseURL, "/") + "/" + strings.Trim(conf.PublicPath, "/"),
	}
}

func (b imageURLBuilder) URL(filename string) string {
	if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
		return filename
	}
	return fmt.Sprintf("%s/%s", b.prefix, filename)
}

func (b imageURLBuilder) URLs(filenames []string) []string {
	urls := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		urls = append(urls, b.URL(filename))
	}
	return urls
}

func toUserResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

func toProductResponse(product domain.Product, urls imageURLBuilder) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		SellerID:    product.SellerID,
		Images:      urls.URLs(product.Images),
		CreatedAt:   product.CreatedAt,
	}
}

func toCartItemResponse(item domain.CartItemDetail, urls imageURLBuilder) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Title:     item.ProductTitle,
		Price:     item.ProductPrice,
		Category:  item.ProductCategory,
		Images:    urls.URLs(item.ProductImages),
		SellerID:  item.SellerID,
	}
}

func toCartItemResponses(items []domain.CartItemDetail, urls imageURLBuilder) []dto.CartItemResponse {
	resp := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCartItemResponse(item, urls))
	}
	return resp
}

func toPurchaseResponse(purchase domain.Purchase, items []domain.PurchaseItem, urls imageURLBuilder) dto.PurchaseResponse {
	resp := dto.PurchaseResponse{
		ID:          purchase.ID,
		OrderNumber: purchase.OrderNumber,
		TotalAmount: purchase.TotalAmount,
		CreatedAt:   purchase.CreatedAt,
		Items:       make([]dto.PurchaseItemResponse, 0, len(items)),
	}

	for _, item := range items {
		var image *string
		if item.ProductImage != nil {
			url := urls.URL(*item.ProductImage)
			image = &url
		}
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ProductID:       item.ProductID,
			ProductTitle:    item.ProductTitle,
			ProductImage:    image,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return resp
}

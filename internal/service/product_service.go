package service

import (
	"context"
	"math"
	"mime/multipart"
	"path"
	"strings"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/repository"
	pkgdto "github.com/ecofinds/marketplace-service/pkg/dto"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const defaultPerPage = 8

type ProductServiceImpl struct {
	repo    repository.ProductRepository
	storage ImageStorage
	config  config.Config
	urls    imageURLBuilder
}

func CreateProductService(repo repository.ProductRepository, storage ImageStorage, config config.Config) ProductService {
	return &ProductServiceImpl{
		repo:    repo,
		storage: storage,
		config:  config,
		urls:    newImageURLBuilder(config.UploadConfig),
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, sellerID int64, payload dto.CreateProductRequest) (resp dto.ProductResponse, err error) {
	title := strings.TrimSpace(payload.Title)
	description := strings.TrimSpace(payload.Description)
	category := strings.TrimSpace(payload.Category)
	if title == "" || description == "" || category == "" {
		return resp, errs.ErrMissingFields
	}

	if payload.Price <= 0 {
		return resp, errs.ErrInvalidPrice
	}

	images := s.saveImages(payload.Images)

	productEnt := domain.Product{
		Title:       title,
		Description: description,
		Category:    category,
		Price:       payload.Price,
		SellerID:    sellerID,
		Images:      images,
	}

	id, err := s.repo.AddProduct(ctx, productEnt)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product, s.urls), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, userID int64, productID int64, payload dto.UpdateProductRequest) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}
	if product.ID == 0 {
		return resp, errs.ErrProductNotFound
	}
	if product.SellerID != userID {
		return resp, errs.ErrNotSeller
	}

	if payload.Title != nil {
		product.Title = strings.TrimSpace(*payload.Title)
	}
	if payload.Description != nil {
		product.Description = strings.TrimSpace(*payload.Description)
	}
	if payload.Category != nil {
		product.Category = strings.TrimSpace(*payload.Category)
	}
	if payload.Price != nil {
		if *payload.Price <= 0 {
			return resp, errs.ErrInvalidPrice
		}
		product.Price = *payload.Price
	}

	// Final image set = retained existing filenames plus fresh uploads. Only
	// filenames that actually belong to this product can be retained.
	current := make(map[string]struct{}, len(product.Images))
	for _, filename := range product.Images {
		current[filename] = struct{}{}
	}

	var final []string
	for _, ref := range payload.ExistingImages {
		filename := extractFilename(ref)
		if filename == "" {
			continue
		}
		if _, ok := current[filename]; ok {
			final = append(final, filename)
		}
	}

	final = append(final, s.saveImages(payload.NewImages)...)

	kept := make(map[string]struct{}, len(final))
	for _, filename := range final {
		kept[filename] = struct{}{}
	}

	// Stale files are removed best-effort; a leaked file is not worth
	// failing the update over.
	for _, filename := range product.Images {
		if _, ok := kept[filename]; ok {
			continue
		}
		if err := s.storage.Remove(filename); err != nil {
			log.Error().Err(err).Str("component", "UpdateProduct").Str("filename", filename).Msg("failed to delete stale image file")
		}
	}

	product.Images = final

	if err = s.repo.UpdateProduct(ctx, product); err != nil {
		return resp, errs.ErrInternalServer
	}

	return toProductResponse(product, s.urls), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, userID int64, productID int64) (err error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}
	if product.ID == 0 {
		return errs.ErrProductNotFound
	}
	if product.SellerID != userID {
		return errs.ErrNotSeller
	}

	for _, filename := range product.Images {
		if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
			continue
		}
		if err := s.storage.Remove(filename); err != nil {
			log.Error().Err(err).Str("component", "DeleteProduct").Str("filename", filename).Msg("failed to delete image file")
		}
	}

	if err = s.repo.DeleteProduct(ctx, productID); err != nil {
		return errs.ErrInternalServer
	}

	return nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductListResponse, err error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if strings.EqualFold(filter.Category, "all") {
		filter.Category = ""
	}

	products, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	count, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	totalPages := int(math.Ceil(float64(count) / float64(filter.PerPage)))

	resp.Products = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp.Products = append(resp.Products, toProductResponse(product, s.urls))
	}
	resp.TotalProducts = count
	resp.CurrentPage = filter.Page
	resp.TotalPages = totalPages
	resp.HasNext = filter.Page < totalPages
	resp.HasPrev = filter.Page > 1

	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, productID int64) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}
	if product.ID == 0 {
		return resp, errs.ErrProductNotFound
	}

	return toProductResponse(product, s.urls), nil
}

func (s *ProductServiceImpl) GetProductsBySeller(ctx context.Context, sellerID int64) (resp []dto.ProductResponse, err error) {
	products, err := s.repo.GetProductsBySellerID(ctx, sellerID)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product, s.urls))
	}

	return resp, nil
}

// saveImages stores each upload, skipping files the storage rejects. A bad
// file among good ones degrades to fewer images rather than a failed request.
func (s *ProductServiceImpl) saveImages(files []*multipart.FileHeader) []string {
	var saved []string
	for _, file := range files {
		filename, err := s.storage.Save(file)
		if err != nil {
			log.Warn().Err(err).Str("component", "saveImages").Str("filename", file.Filename).Msg("skipping upload")
			continue
		}
		saved = append(saved, filename)
	}
	return saved
}

// extractFilename reduces a retained-image reference (absolute URL or bare
// filename) to the stored filename. External URLs reduce to their basename
// too, which simply fails the ownership check upstream.
func extractFilename(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	return path.Base(ref)
}

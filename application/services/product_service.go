package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	"storefront-backend/domain/events"
	"storefront-backend/pkg/common"
)

// latestProductCount is how many products the storefront landing page shows.
const latestProductCount = 5

// NewProduct is the input for creating a catalog item.
type NewProduct struct {
	Name     string
	Photo    string
	Price    float64
	Stock    int64
	Category string
}

// ProductUpdate carries the fields of a partial product update; nil fields
// are left untouched.
type ProductUpdate struct {
	Name     *string
	Photo    *string
	Price    *float64
	Stock    *int64
	Category *string
}

// ProductService owns the product read and write paths. Reads shared by
// every storefront visitor (latest, categories, admin list, details) are
// cached; the filtered public search is not, since its key space grows with
// every filter combination.
type ProductService struct {
	products    ports.ProductRepository
	cache       ports.Cache
	invalidator *Invalidator
	logger      *zap.Logger
}

// NewProductService creates a product service.
func NewProductService(
	products ports.ProductRepository,
	cache ports.Cache,
	invalidator *Invalidator,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products:    products,
		cache:       cache,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Latest returns the most recently created products, newest first.
func (s *ProductService) Latest(ctx context.Context) ([]domain.Product, error) {
	var cached []domain.Product
	if readCached(ctx, s.cache, keyLatestProducts, &cached) {
		return cached, nil
	}

	products, err := s.products.Latest(ctx, latestProductCount)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, keyLatestProducts, products)
	return products, nil
}

// Categories returns the distinct product categories.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	var cached []string
	if readCached(ctx, s.cache, keyCategories, &cached) {
		return cached, nil
	}

	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, keyCategories, categories)
	return categories, nil
}

// All returns the full catalog for the admin listing.
func (s *ProductService) All(ctx context.Context) ([]domain.Product, error) {
	var cached []domain.Product
	if readCached(ctx, s.cache, keyAllProducts, &cached) {
		return cached, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, keyAllProducts, products)
	return products, nil
}

// ByID returns a single product. Missing products are not cached.
func (s *ProductService) ByID(ctx context.Context, id string) (*domain.Product, error) {
	var cached domain.Product
	if readCached(ctx, s.cache, productKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.products.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, productKey(id), product)
	return product, nil
}

// Search runs the filtered public listing and reports the total page count.
// The match listing and the match count are independent store queries and
// run concurrently.
func (s *ProductService) Search(ctx context.Context, query ports.ProductQuery, pageSize int) ([]domain.Product, int, error) {
	var (
		products []domain.Product
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.products.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		countQuery := query
		countQuery.Skip = 0
		countQuery.Limit = 0

		var err error
		total, err = s.products.CountMatching(gctx, countQuery)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return products, common.TotalPages(total, pageSize), nil
}

// Create adds a product and purges the listing caches.
func (s *ProductService) Create(ctx context.Context, input NewProduct) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Photo:     input.Photo,
		Price:     input.Price,
		Stock:     input.Stock,
		Category:  strings.ToLower(input.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, events.Invalidation{
		Product: true,
		Admin:   true,
	}); err != nil {
		return nil, err
	}

	return product, nil
}

// Update applies a partial update and purges the listing caches plus the
// product's own detail entry.
func (s *ProductService) Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error) {
	product, err := s.products.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Photo != nil {
		product.Photo = *update.Photo
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Category != nil {
		product.Category = strings.ToLower(*update.Category)
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, events.Invalidation{
		Product:    true,
		Admin:      true,
		ProductIDs: []string{product.ID},
	}); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product and purges its cache entries.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.products.ByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, product.ID); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, events.Invalidation{
		Product:    true,
		Admin:      true,
		ProductIDs: []string{product.ID},
	})
}

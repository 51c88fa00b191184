package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"watchstore/internal/models"
	"watchstore/internal/repositories"

	"github.com/google/uuid"
)

const defaultBestSellerLimit = 4

// ProductService handles business logic related to products.
type ProductService struct {
	repo    repositories.ProductRepository
	ranking repositories.BestSellerRanking
	images  ImageStorage
}

// NewProductService creates a new ProductService. ranking and images may be nil.
func NewProductService(repo repositories.ProductRepository, ranking repositories.BestSellerRanking, images ImageStorage) *ProductService {
	return &ProductService{
		repo:    repo,
		ranking: ranking,
		images:  images,
	}
}

// GetAllProducts retrieves the catalog.
func (s *ProductService) GetAllProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(ctx, filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.repo.Create(ctx, product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	return s.repo.Update(ctx, product)
}

// DeleteProduct deletes a product by its ID. Orders keep their own copy of the product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// BestSellers returns up to limit products ranked by units bought. Products nobody has
// bought yet fill the remaining slots, most expensive first.
func (s *ProductService) BestSellers(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultBestSellerLimit
	}

	result := make([]models.Product, 0, limit)
	seen := make(map[string]bool, limit)

	if s.ranking != nil {
		ids, err := s.ranking.Top(ctx, limit)
		if err != nil {
			log.Printf("Warning: best seller ranking unavailable, falling back to price: %v", err)
		} else if len(ids) > 0 {
			ranked, err := s.repo.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[string]models.Product, len(ranked))
			for _, p := range ranked {
				byID[p.ID] = p
			}
			for _, id := range ids {
				if p, ok := byID[id]; ok {
					result = append(result, p)
					seen[id] = true
				}
			}
		}
	}

	if len(result) >= limit {
		return result, nil
	}

	// Fetch enough to skip the ones already ranked.
	fill, err := s.repo.ListByPriceDesc(ctx, limit+len(result))
	if err != nil {
		return nil, err
	}
	for _, p := range fill {
		if len(result) == limit {
			break
		}
		if !seen[p.ID] {
			result = append(result, p)
		}
	}
	return result, nil
}

// SetProductImage stores an uploaded image and points the product at its public URL.
func (s *ProductService) SetProductImage(ctx context.Context, id, filename string, r io.Reader) (*models.Product, error) {
	if s.images == nil {
		return nil, fmt.Errorf("image storage is not configured")
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("products/%s/%s%s", product.ID, uuid.New().String(), filepath.Ext(filename))
	url, err := s.images.Upload(ctx, name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image for product %s: %w", id, err)
	}

	product.Image = url
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_GetAllProducts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	filter := models.ProductFilter{Brand: "Omega"}
	expectedProducts := []models.Product{
		{ID: "1", Brand: "Omega", Model: "Speedmaster", Price: 6800},
		{ID: "2", Brand: "Omega", Model: "Seamaster", Price: 5200},
	}
	mockRepo.On("GetAll", ctx, filter).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	expectedProduct := &models.Product{ID: "1", Brand: "Rolex", Model: "Explorer", Price: 7200}

	mockRepo.On("GetByID", ctx, "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", ctx, "99").Return(nil, fmt.Errorf("product with ID 99: %w", services.ErrNotFound)).Once()
	product, err = service.GetProductByID(ctx, "99")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)

	newProduct := &models.Product{Brand: "Tudor", Model: "Pelagos", Price: 4700}
	mockRepo.On("Create", ctx, newProduct).Return(nil).Once()
	assert.NoError(t, service.CreateProduct(ctx, newProduct))

	mockRepo.On("Create", ctx, newProduct).Return(fmt.Errorf("database error")).Once()
	err := service.CreateProduct(ctx, newProduct)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.On("Update", ctx, newProduct).Return(nil).Once()
	assert.NoError(t, service.UpdateProduct(ctx, newProduct))

	mockRepo.On("Delete", ctx, "99").Return(fmt.Errorf("product with ID 99 for deletion: %w", services.ErrNotFound)).Once()
	assert.ErrorIs(t, service.DeleteProduct(ctx, "99"), services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_BestSellers(t *testing.T) {
	ctx := context.Background()

	daytona := models.Product{ID: "daytona", Brand: "Rolex", Model: "Daytona", Price: 14500}
	nautilus := models.Product{ID: "nautilus", Brand: "Patek Philippe", Model: "Nautilus", Price: 35000}
	speedy := models.Product{ID: "speedy", Brand: "Omega", Model: "Speedmaster", Price: 6800}
	blackBay := models.Product{ID: "blackbay", Brand: "Tudor", Model: "Black Bay", Price: 3900}

	t.Run("ranking first then price", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		ranking := new(MockRanking)
		service := services.NewProductService(mockRepo, ranking, nil)

		ranking.On("Top", ctx, 3).Return([]string{"blackbay", "deleted", "speedy"}, nil).Once()
		mockRepo.On("GetByIDs", ctx, []string{"blackbay", "deleted", "speedy"}).Return([]models.Product{speedy, blackBay}, nil).Once()
		mockRepo.On("ListByPriceDesc", ctx, 5).Return([]models.Product{nautilus, daytona, speedy, blackBay}, nil).Once()

		got, err := service.BestSellers(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, []models.Product{blackBay, speedy, nautilus}, got)
		mockRepo.AssertExpectations(t)
		ranking.AssertExpectations(t)
	})

	t.Run("ranking unavailable falls back to price", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		ranking := new(MockRanking)
		service := services.NewProductService(mockRepo, ranking, nil)

		ranking.On("Top", ctx, 4).Return(nil, fmt.Errorf("redis down")).Once()
		mockRepo.On("ListByPriceDesc", ctx, 4).Return([]models.Product{nautilus, daytona, speedy, blackBay}, nil).Once()

		got, err := service.BestSellers(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, []models.Product{nautilus, daytona, speedy, blackBay}, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no ranking configured", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil, nil)

		mockRepo.On("ListByPriceDesc", ctx, 2).Return([]models.Product{nautilus, daytona}, nil).Once()

		got, err := service.BestSellers(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, []models.Product{nautilus, daytona}, got)
	})
}

func TestProductService_SetProductImage(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	images := new(MockImageStorage)
	service := services.NewProductService(mockRepo, nil, images)

	product := &models.Product{ID: "p1", Brand: "Cartier", Model: "Santos", Price: 7000}
	body := strings.NewReader("jpeg bytes")

	mockRepo.On("GetByID", ctx, "p1").Return(product, nil).Once()
	images.On("Upload", ctx, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "products/p1/") && strings.HasSuffix(name, ".jpg")
	}), body).Return("http://localhost:8080/uploads/products/p1/x.jpg", nil).Once()
	mockRepo.On("Update", ctx, product).Return(nil).Once()

	updated, err := service.SetProductImage(ctx, "p1", "santos.jpg", body)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/products/p1/x.jpg", updated.Image)
	mockRepo.AssertExpectations(t)
	images.AssertExpectations(t)

	_, err = services.NewProductService(mockRepo, nil, nil).SetProductImage(ctx, "p1", "santos.jpg", body)
	assert.Error(t, err)
}

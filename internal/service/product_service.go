package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-service/internal/entity"
	"shop-service/internal/events"
)

type ProductService struct {
	productRepo ProductRepository
	cache       Cache
	cacheTTL    time.Duration
	publisher   Publisher
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo ProductRepository, cache Cache, cacheTTL time.Duration, publisher Publisher) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		publisher:   publisher,
	}
}

func productKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

// GetProductByID reads through the cache. Cache failures fall back to the database.
func (p *ProductService) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	key := productKey(id)
	cached, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting product %d from cache", id)
	}

	if ok {
		var product entity.Product
		err := json.Unmarshal([]byte(cached), &product)
		if err == nil {
			return &product, nil
		}
		logger.Error().Err(err).Msgf("Error unmarshalling product %d", id)
	}

	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		}
		return nil, err
	}

	p.writeCache(ctx, product)
	return product, nil
}

func (p *ProductService) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := p.productRepo.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting products")
		return nil, err
	}
	return products, nil
}

func (p *ProductService) CreateProduct(ctx context.Context, req entity.ProductRequest) (*entity.Product, error) {
	product, err := p.productRepo.CreateProduct(ctx, entity.NewProduct(req))
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	publish(ctx, p.publisher, "product", events.ActionCreated, product.ID, product)
	return product, nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, id int, req entity.ProductRequest) (*entity.Product, error) {
	product := entity.NewProduct(req)
	product.ID = id

	updated, err := p.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating product %d", id)
		}
		return nil, err
	}

	p.evict(ctx, id)
	publish(ctx, p.publisher, "product", events.ActionUpdated, updated.ID, updated)
	return updated, nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id int) (*entity.Product, error) {
	deleted, err := p.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting product %d", id)
		}
		return nil, err
	}

	p.evict(ctx, id)
	publish(ctx, p.publisher, "product", events.ActionDeleted, deleted.ID, deleted)
	return deleted, nil
}

// PreWarmCache loads every product into the cache.
func (p *ProductService) PreWarmCache(ctx context.Context) error {
	products, err := p.productRepo.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting products")
		return err
	}

	for _, product := range products {
		p.writeCache(ctx, product)
	}
	return nil
}

func (p *ProductService) writeCache(ctx context.Context, product *entity.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling product %d", product.ID)
		return
	}
	if err := p.cache.Set(ctx, productKey(product.ID), string(data), p.cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting product %d in cache", product.ID)
	}
}

func (p *ProductService) evict(ctx context.Context, id int) {
	if err := p.cache.Del(ctx, productKey(id)); err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %d from cache", id)
	}
}

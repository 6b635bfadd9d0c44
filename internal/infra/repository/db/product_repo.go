package db

import (
	"context"

	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
)

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	FindExistingProductIDs(ctx context.Context, productIDs []uint) ([]uint, error)
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 根據名稱查詢商品, 不分大小寫
func (s *ProductRepo) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品
func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

// 回傳productIDs中實際存在的商品ID, 用於存在性檢查
func (s *ProductRepo) FindExistingProductIDs(ctx context.Context, productIDs []uint) ([]uint, error) {
	var existing []uint
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id IN ?", productIDs).
		Pluck("id", &existing).Error
	return existing, err
}

var _ IProductRepository = (*ProductRepo)(nil)

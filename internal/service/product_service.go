package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/purchaseorder/internal/errs"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IProductService interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*model.Product, error)
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) IProductService {
	return &ProductService{productRepo: productRepo}
}

func (p *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return p.productRepo.GetAllProducts(ctx)
}

func (p *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct 創建商品
// 名稱trim後2~100字元, 不分大小寫不可重複; 價格 (0, 999999.99]
// 商品創建後不可修改也不可刪除
func (p *ProductService) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*model.Product, error) {
	name, err := validateProductName(name)
	if err != nil {
		return nil, err
	}
	if err := validateProductPrice(price); err != nil {
		return nil, err
	}

	// 檢查名稱是否已存在
	existing, err := p.productRepo.GetProductByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewValidationError(fmt.Sprintf("Ya existe un producto con el nombre '%s'", name))
	}

	product := &model.Product{
		Name:  name,
		Price: price,
	}
	if err := p.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

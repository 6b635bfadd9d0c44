package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/RoyceAzure/lab/purchaseorder/internal/errs"
	"github.com/shopspring/decimal"
)

// 每張訂單商品數量上限
const maxOrderProducts = 50

var maxProductPrice = decimal.RequireFromString("999999.99")

// 驗證客戶名稱, 回傳trim後的結果
func validateCustomer(customer string) (string, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return "", errs.NewValidationError("El cliente es requerido")
	}
	if utf8.RuneCountInString(customer) < 2 {
		return "", errs.NewValidationError("El nombre del cliente debe tener al menos 2 caracteres")
	}
	if utf8.RuneCountInString(customer) > 100 {
		return "", errs.NewValidationError("El nombre del cliente no puede exceder 100 caracteres")
	}
	return customer, nil
}

// 驗證商品名稱, 回傳trim後的結果
func validateProductName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValidationError("El nombre del producto no puede estar vacío")
	}
	if utf8.RuneCountInString(name) < 2 {
		return "", errs.NewValidationError("El nombre del producto debe tener al menos 2 caracteres")
	}
	if utf8.RuneCountInString(name) > 100 {
		return "", errs.NewValidationError("El nombre no puede exceder 100 caracteres")
	}
	return name, nil
}

func validateProductPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValidationError("El precio debe ser mayor a 0")
	}
	if price.GreaterThan(maxProductPrice) {
		return errs.NewValidationError("El precio no puede exceder $999,999.99")
	}
	return nil
}

// 找出重複出現的商品ID
func findDuplicateProductIDs(productIDs []uint) []uint {
	seen := make(map[uint]int, len(productIDs))
	duplicates := make([]uint, 0)
	for _, id := range productIDs {
		seen[id]++
		if seen[id] == 2 {
			duplicates = append(duplicates, id)
		}
	}
	return duplicates
}

func joinProductIDs(productIDs []uint) string {
	parts := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ", ")
}

// 驗證訂單商品清單: 非空, 無重複, 數量上限, 商品皆存在
// 任一違規回傳ValidationError, 重複/不存在時附上違規ID
func (o *OrderService) validateOrderProducts(ctx context.Context, productIDs []uint) error {
	if len(productIDs) == 0 {
		return errs.NewValidationError("Debe incluir al menos un producto en la orden")
	}

	if duplicates := findDuplicateProductIDs(productIDs); len(duplicates) > 0 {
		return errs.NewValidationError(
			fmt.Sprintf("Los siguientes productos están duplicados en la orden: %s", joinProductIDs(duplicates)),
			duplicates...,
		)
	}

	if len(productIDs) > maxOrderProducts {
		return errs.NewValidationError("No se pueden incluir más de 50 productos por orden")
	}

	existing, err := o.productRepo.FindExistingProductIDs(ctx, productIDs)
	if err != nil {
		return err
	}
	existingSet := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}
	missing := make([]uint, 0)
	for _, id := range productIDs {
		if _, ok := existingSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return errs.NewValidationError(
			fmt.Sprintf("Los siguientes productos no existen: %s", joinProductIDs(missing)),
			missing...,
		)
	}

	return nil
}

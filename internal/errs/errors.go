package errs

import "errors"

var (
	ErrOrderNotFound   = errors.New("order is not exist")
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError 業務驗證錯誤
// ProductIDs 記錄違規的商品ID (重複或不存在), 沒有則為空
type ValidationError struct {
	Message    string
	ProductIDs []uint
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, productIDs ...uint) *ValidationError {
	return &ValidationError{
		Message:    message,
		ProductIDs: productIDs,
	}
}

// 判斷err是否為驗證錯誤
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

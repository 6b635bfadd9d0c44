package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/purchaseorder/internal/api/dto"
	"github.com/RoyceAzure/lab/purchaseorder/internal/service"
	"github.com/RoyceAzure/lab/purchaseorder/pkg/api"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary list all products
// @Tags productos
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /productos [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	productDTOs := make([]dto.ProductDTO, 0, len(products))
	for _, product := range products {
		productDTOs = append(productDTOs, convertProductToDTO(product))
	}

	api.SuccessJSON(w, http.StatusOK, productDTOs, "Productos obtenidos exitosamente")
}

// @Summary create a new product
// @Tags productos
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "new product data"
// @Success 201 {object} api.Response{data=dto.ProductDTO} "created"
// @Failure 400 {object} api.Response "validation failure"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /productos [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "Datos de entrada inválidos")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), createDTO.Name, createDTO.Price)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, convertProductToDTO(*product), "Producto creado exitosamente")
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/purchaseorder/internal/api/dto"
	"github.com/RoyceAzure/lab/purchaseorder/internal/service"
	"github.com/RoyceAzure/lab/purchaseorder/pkg/api"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// 解析路由參數{id}, 非正整數回傳0與false
func parseIDParam(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// @Summary list all purchase orders
// @Tags ordenes
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.OrderDTO} "success"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /ordenes [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	orderDTOs := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		orderDTOs = append(orderDTOs, convertOrderToDTO(order))
	}

	api.SuccessJSON(w, http.StatusOK, orderDTOs, "Órdenes obtenidas exitosamente")
}

// @Summary get a purchase order by id
// @Tags ordenes
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 404 {object} api.Response "not found"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /ordenes/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "ID de orden inválido")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertOrderToDTO(*order), "Orden obtenida exitosamente")
}

// @Summary create a purchase order
// @Tags ordenes
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "new order data"
// @Success 201 {object} api.Response{data=dto.OrderDTO} "created"
// @Failure 400 {object} api.Response "validation failure"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /ordenes [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "Datos de entrada inválidos")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), createDTO.Customer, productIDsFromItems(createDTO.Items))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, convertOrderToDTO(*order), "Orden creada exitosamente")
}

// @Summary update a purchase order
// @Tags ordenes
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param order body dto.UpdateOrderDTO true "order data, ordenProductos omitted keeps current items"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 400 {object} api.Response "validation failure"
// @Failure 404 {object} api.Response "not found"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /ordenes/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "ID de orden inválido")
		return
	}

	var updateDTO dto.UpdateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "Datos de entrada inválidos")
		return
	}

	// Items為nil代表不更新訂單項目, 要跟空清單區分開
	var productIDs []uint
	if updateDTO.Items != nil {
		productIDs = productIDsFromItems(updateDTO.Items)
	}

	order, err := h.orderService.UpdateOrder(r.Context(), id, updateDTO.Customer, productIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, convertOrderToDTO(*order), "Orden actualizada exitosamente")
}

// @Summary delete a purchase order
// @Tags ordenes
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} api.Response "success"
// @Failure 404 {object} api.Response "not found"
// @Failure 500 {object} api.Response "Internal server error"
// @Router /ordenes/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "ID de orden inválido")
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, nil, "Orden eliminada exitosamente")
}

func productIDsFromItems(items []dto.CreateOrderItemDTO) []uint {
	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	return productIDs
}

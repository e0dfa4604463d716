package rest

import (
	"net/http"

	"ecowear-be/internal/order"
)

type OrderHandler struct {
	service order.Service
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type createOrderRequest struct {
	Items       []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64            `json:"total_amount" validate:"gte=0"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req createOrderRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	items := make([]order.NewOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.NewOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	created, err := h.service.Create(r.Context(), caller, items, req.TotalAmount)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, Response{Data: created})
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	orders, err := h.service.ListMine(r.Context(), caller)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: orders})
}

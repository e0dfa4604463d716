package rest

import (
	"net/http"

	"ecowear-be/internal/product"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	service product.Service
}

func NewProductHandler(service product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	Price             float64  `json:"price" validate:"gte=0"`
	Category          string   `json:"category" validate:"required"`
	Image             string   `json:"image" validate:"required"`
	Materials         string   `json:"materials" validate:"required"`
	EcoCertifications []string `json:"eco_certifications"`
	CarbonFootprint   float64  `json:"carbon_footprint" validate:"gte=0"`
	ProductionProcess *string  `json:"production_process"`
	Stock             int      `json:"stock" validate:"gte=0"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: products})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: p})
}

func (h *ProductHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	products, err := h.service.ListMine(r.Context(), caller)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: products})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req createProductRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), caller, product.NewProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Category:          req.Category,
		Image:             req.Image,
		Materials:         req.Materials,
		EcoCertifications: req.EcoCertifications,
		CarbonFootprint:   req.CarbonFootprint,
		ProductionProcess: req.ProductionProcess,
		Stock:             req.Stock,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, Response{Data: created})
}

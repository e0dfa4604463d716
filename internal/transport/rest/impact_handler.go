package rest

import (
	"net/http"

	"ecowear-be/internal/impact"
)

type ImpactHandler struct {
	service impact.Service
}

func NewImpactHandler(service impact.Service) *ImpactHandler {
	return &ImpactHandler{service: service}
}

func (h *ImpactHandler) Platform(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.PlatformStats(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: stats})
}

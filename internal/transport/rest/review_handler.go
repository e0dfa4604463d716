package rest

import (
	"net/http"

	"ecowear-be/internal/review"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(service review.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	Rating               int    `json:"rating" validate:"required,gte=1,lte=5"`
	SustainabilityRating int    `json:"sustainability_rating" validate:"required,gte=1,lte=5"`
	Comment              string `json:"comment" validate:"required"`
}

type replyRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// likesResponse is returned from a like toggle: the full like-set after
// the flip, so clients can render state without a follow-up fetch.
type likesResponse struct {
	Likes []int `json:"likes"`
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	reviews, err := h.service.List(r.Context(), productID)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: reviews})
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req createReviewRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), chi.URLParam(r, "id"), caller, review.NewReviewInput{
		Rating:               req.Rating,
		SustainabilityRating: req.SustainabilityRating,
		Comment:              req.Comment,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, Response{Data: created})
}

func (h *ReviewHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	likes, err := h.service.ToggleLike(r.Context(), chi.URLParam(r, "id"), caller)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: likesResponse{Likes: likes}})
}

func (h *ReviewHandler) Reply(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req replyRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	replies, err := h.service.Reply(r.Context(), chi.URLParam(r, "id"), caller, req.Comment)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, Response{Data: replies})
}

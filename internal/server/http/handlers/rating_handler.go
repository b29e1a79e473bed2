package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeratings/internal/server/http/dto"
)

// RatingHandler accepts rating submissions.
type RatingHandler struct {
	facade RatingFacade
}

// NewRatingHandler creates RatingHandler instance.
func NewRatingHandler(facade RatingFacade) *RatingHandler {
	return &RatingHandler{facade: facade}
}

// Submit handles POST /api/ratings. A first rating answers 201, an overwrite 200.
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}
	if req.StoreID <= 0 {
		badRequest(c, "storeId is required")
		return
	}

	rating, created, err := h.facade.SubmitRating(c.Request.Context(), CurrentPrincipal(c), req.StoreID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewRatingResponse(rating))
}

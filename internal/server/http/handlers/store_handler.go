package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/server/http/dto"
)

// StoreHandler serves store registration, listing and per-store views.
type StoreHandler struct {
	stores  StoreFacade
	ratings RatingFacade
}

// NewStoreHandler creates StoreHandler instance.
func NewStoreHandler(stores StoreFacade, ratings RatingFacade) *StoreHandler {
	return &StoreHandler{stores: stores, ratings: ratings}
}

// List handles GET /api/stores.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.stores.Stores(c.Request.Context(), CurrentPrincipal(c), model.StoreFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort"),
		Desc:   descending(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreList(stores))
}

// Create handles POST /api/stores.
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	store, err := h.stores.RegisterStore(c.Request.Context(), CurrentPrincipal(c), model.NewStore{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStoreResponse(store))
}

// Stats handles GET /api/stores/:id/stats.
func (h *StoreHandler) Stats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid store id")
		return
	}
	stats, err := h.stores.StoreStats(c.Request.Context(), CurrentPrincipal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreStatsResponse(stats))
}

// MyRating handles GET /api/stores/:id/rating.
func (h *StoreHandler) MyRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid store id")
		return
	}
	rating, err := h.ratings.MyRating(c.Request.Context(), CurrentPrincipal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRatingResponse(rating))
}

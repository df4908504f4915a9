package handlers

import (
	"net/http"

	"book-recommendation-api/helper"
	"book-recommendation-api/middleware"
	"book-recommendation-api/models"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService services.RatingService
	Helper        *helper.HTTPHelper
}

func NewRatingHandler(ratingService services.RatingService, h *helper.HTTPHelper) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, Helper: h}
}

func (h *RatingHandler) AddRating(c *gin.Context) {
	var query models.RatingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	var req models.RatingRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	value, err := models.ParseRatingValue(req.Value)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	if err := h.ratingService.SubmitRating(c.Request.Context(), middleware.UserID(c), query.BookID, value); err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "rating saved", nil)
}

func (h *RatingHandler) GetRating(c *gin.Context) {
	var query models.RatingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	rating, err := h.ratingService.GetRating(c.Request.Context(), middleware.UserID(c), query.BookID)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, models.RatingValueResponse{Value: rating.Value})
}

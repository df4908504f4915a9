package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"book-recommendation-api/helper"
	"book-recommendation-api/models"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
)

const topPrefix = "top-"

type RecommendationHandler struct {
	recommendationService services.RecommendationService
	Helper                *helper.HTTPHelper
}

func NewRecommendationHandler(recommendationService services.RecommendationService, h *helper.HTTPHelper) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService, Helper: h}
}

// GetTopRated serves /recommend/top-{n}.
func (h *RecommendationHandler) GetTopRated(c *gin.Context) {
	n, err := parseTopSelector(c.Param("selector"))
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	ranked, err := h.recommendationService.TopRated(c.Request.Context(), n)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, ranked)
}

func parseTopSelector(selector string) (int, error) {
	raw, ok := strings.CutPrefix(selector, topPrefix)
	if !ok {
		return 0, models.ErrorValidation{Field: "n", Message: "expected top-{n}"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, models.ErrorValidation{Field: "n", Message: "n must be a non-negative integer"}
	}
	return n, nil
}

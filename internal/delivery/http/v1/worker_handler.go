package v1

import (
	"net/http"
	"strconv"

	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	discoveryUC domain.DiscoveryUsecase
	reviewUC    domain.ReviewUsecase
}

func NewWorkerHandler(public *gin.RouterGroup, discoveryUC domain.DiscoveryUsecase, reviewUC domain.ReviewUsecase) {
	handler := &WorkerHandler{discoveryUC: discoveryUC, reviewUC: reviewUC}

	// Discovery is public - browsing workers requires no account
	workers := public.Group("/workers")
	{
		workers.GET("", handler.Search)
		workers.GET("/filters", handler.FilterOptions)
		workers.GET("/:id", handler.GetDetails)
		workers.GET("/:id/reviews", handler.ListReviews)
	}
}

// Search runs the discovery engine over the worker listing. Omitted query
// params fall back to the clear-filters defaults.
func (h *WorkerHandler) Search(c *gin.Context) {
	query := domain.DefaultFilterQuery()
	query.Search = c.DefaultQuery("search", query.Search)
	query.Profession = c.DefaultQuery("profession", query.Profession)
	query.Location = c.DefaultQuery("location", query.Location)
	query.SortBy = c.DefaultQuery("sort_by", query.SortBy)

	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 {
			c.Error(apperror.BadRequest("min_rating must be a non-negative number"))
			return
		}
		query.MinRating = minRating
	}

	results := h.discoveryUC.Search(query)
	response.Success(c, http.StatusOK, "Workers", gin.H{
		"workers": results,
		"total":   len(results),
	})
}

// FilterOptions returns the selector values for the search filters.
func (h *WorkerHandler) FilterOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Filter options", gin.H{
		"professions": h.discoveryUC.Professions(),
		"locations":   h.discoveryUC.Locations(),
		"sort_keys": []string{
			domain.SortByRating,
			domain.SortByReviews,
			domain.SortByExperience,
			domain.SortByPriceLow,
			domain.SortByPriceHigh,
		},
	})
}

func (h *WorkerHandler) GetDetails(c *gin.Context) {
	worker, err := h.discoveryUC.GetWorker(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Worker details", worker)
}

func (h *WorkerHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewUC.ListByWorker(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Worker reviews", reviews)
}

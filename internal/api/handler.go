package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bfpulse/internal/domain/dto"
	"github.com/guttosm/bfpulse/internal/middleware"
	"github.com/guttosm/bfpulse/internal/service"
	"github.com/guttosm/bfpulse/internal/stats"
)

// Handler serves the statistics of the loaded payments.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the analysis service with the request context
//   - Translate results into response DTOs and errors into HTTP status codes
type Handler struct {
	svc    service.AnalysisService
	method stats.Method
	topK   int
}

// NewHandler constructs a Handler. method and topK are used when the request
// does not override them.
func NewHandler(svc service.AnalysisService, method stats.Method, topK int) *Handler {
	return &Handler{svc: svc, method: method, topK: topK}
}

// GetSummary godoc
// @Summary      Descriptive statistics of the installment amounts
// @Description  Mean, median, quartiles, fences, skew distance and outlier counts of VALOR PARCELA
// @Tags         statistics
// @Produce      json
// @Param        method  query     string  false  "Quantile method (weibull, linear, hazen, median_unbiased, normal_unbiased)"  example(weibull)
// @Success      200     {object}  dto.SummaryResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Failure      422     {object}  dto.ErrorResponse    "Empty dataset"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	method := h.method
	if s := c.Query("method"); s != "" {
		m, err := stats.ParseMethod(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid method", err)
			return
		}
		method = m
	}

	sum, err := h.svc.Summary(c.Request.Context(), method)
	switch {
	case errors.Is(err, stats.ErrEmptyInput):
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "no payments loaded", err)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(*sum))
}

// GetRanking godoc
// @Summary      States ranked by total paid
// @Description  Sum of VALOR PARCELA per UF, descending, ties broken by UF; k=0 returns every state
// @Tags         statistics
// @Produce      json
// @Param        k    query     int  false  "How many states to return"  example(12)
// @Success      200  {object}  dto.RankingResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/ranking [get]
func (h *Handler) GetRanking(c *gin.Context) {
	k := h.topK
	if s := c.Query("k"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid k", err)
			return
		}
		k = n
	}

	entries, err := h.svc.Ranking(c.Request.Context(), k)
	switch {
	case errors.Is(err, service.ErrInvalidK):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid k", err)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute ranking", err)
		return
	}

	c.JSON(http.StatusOK, dto.RankingResponse{K: k, Entries: entries})
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"golang-review-intel/internal/api/dto"
	"golang-review-intel/internal/api/service"
	"golang-review-intel/pkg/logger"
	"golang-review-intel/pkg/utils"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles HTTP requests for review analytics.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, logger: logger}
}

// RegisterRoutes registers the analytics routes to the Echo company group.
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:id/reviews", h.ListReviews)
	g.GET("/:id/summary", h.GetSummary)
	g.GET("/:id/recommendations", h.GetRecommendations)
	g.GET("/:id/trend", h.GetTrend)
	g.GET("/:id/keywords", h.GetKeywords)
}

// GetSummary godoc
// @Summary Get the analysis summary
// @Description Get the full review analysis for a company within a date window
// @Tags analytics
// @Produce  json
// @Param   id     path    int     true   "Company ID"
// @Param   start  query   string  false  "Window start (YYYY-MM-DD, DD/MM/YYYY, or RFC3339)"
// @Param   end    query   string  false  "Window end (YYYY-MM-DD, DD/MM/YYYY, or RFC3339)"
// @Success 200 {object} analytics.AnalysisSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/summary [get]
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	summary, err := h.analyticsService.GetSummary(c.Request().Context(), id, start, end)
	if err != nil {
		h.logger.Error("Failed to compose summary", logger.ErrorField(err), logger.Field("company_id", id))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, summary)
}

// GetRecommendations godoc
// @Summary Get the ranked action plan
// @Description Get the risk assessment and ranked recommendations for a company
// @Tags analytics
// @Produce  json
// @Param   id     path    int     true   "Company ID"
// @Param   start  query   string  false  "Window start"
// @Param   end    query   string  false  "Window end"
// @Success 200 {object} analytics.ActionPlan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/recommendations [get]
func (h *AnalyticsHandler) GetRecommendations(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	plan, err := h.analyticsService.GetRecommendations(c.Request().Context(), id, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, plan)
}

// GetTrend godoc
// @Summary Get the monthly rating trend
// @Description Get the monthly series and trend signal for a company
// @Tags analytics
// @Produce  json
// @Param   id     path    int     true   "Company ID"
// @Param   start  query   string  false  "Window start"
// @Param   end    query   string  false  "Window end"
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/trend [get]
func (h *AnalyticsHandler) GetTrend(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	trend, err := h.analyticsService.GetTrend(c.Request().Context(), id, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, trend)
}

// GetKeywords godoc
// @Summary Get the keyword frequency listing
// @Description Get the most frequent review keywords for a company
// @Tags analytics
// @Produce  json
// @Param   id     path    int     true   "Company ID"
// @Param   start  query   string  false  "Window start"
// @Param   end    query   string  false  "Window end"
// @Param   limit  query   int     false  "Maximum keywords to return"
// @Success 200 {object} dto.KeywordsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/keywords [get]
func (h *AnalyticsHandler) GetKeywords(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit"})
		}
		limit = parsed
	}

	keywords, err := h.analyticsService.GetKeywords(c.Request().Context(), id, start, end, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, keywords)
}

// ListReviews godoc
// @Summary List stored reviews
// @Description List a company's reviews with sentiment labels and suggested replies
// @Tags analytics
// @Produce  json
// @Param   id     path    int     true   "Company ID"
// @Param   start  query   string  false  "Window start"
// @Param   end    query   string  false  "Window end"
// @Success 200 {array} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/reviews [get]
func (h *AnalyticsHandler) ListReviews(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	reviews, err := h.analyticsService.ListReviews(c.Request().Context(), id, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, reviews)
}

// parseWindow parses optional start/end query parameters. Start dates are
// normalized to UTC midnight and end dates to 23:59:59 so the window bounds
// stay inclusive.
func parseWindow(c echo.Context) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		t := utils.StartOfDay(parsed)
		start = &t
	}
	if raw := c.QueryParam("end"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		t := utils.EndOfDay(parsed)
		end = &t
	}
	return start, end, nil
}

package http

import (
	"net/http"
	"strconv"

	"golang-review-intel/internal/api/dto"
	"golang-review-intel/internal/api/service"
	"golang-review-intel/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CompanyHandler handles HTTP requests for companies and ingestion triggers.
type CompanyHandler struct {
	companyService service.CompanyService
	logger         *logger.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService, logger *logger.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, logger: logger}
}

// RegisterRoutes registers the company routes to the Echo group.
func (h *CompanyHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateCompany)
	g.GET("", h.GetAllCompanies)
	g.GET("/:id", h.GetCompanyByID)
	g.PUT("/:id", h.UpdateCompany)
	g.DELETE("/:id", h.DeleteCompany)
	g.POST("/:id/fetch", h.TriggerFetch)
	g.GET("/:id/ingestions", h.ListIngestions)
}

// CreateCompany godoc
// @Summary Register a new company
// @Description Register a company with its review source and ingestion schedules
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company  body    dto.CreateCompanyRequest   true    "Company to create"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Company name is required"})
	}

	resp, err := h.companyService.CreateCompany(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, resp)
}

// GetCompanyByID godoc
// @Summary Get a company by ID
// @Description Get a single company with its schedules
// @Tags companies
// @Produce  json
// @Param   id  path    int true    "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	resp, err := h.companyService.GetCompanyByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetAllCompanies godoc
// @Summary Get all companies
// @Description Get all registered companies
// @Tags companies
// @Produce  json
// @Success 200 {array} dto.CompanyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (h *CompanyHandler) GetAllCompanies(c echo.Context) error {
	companies, err := h.companyService.GetAllCompanies(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all companies", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get companies"})
	}
	return c.JSON(http.StatusOK, companies)
}

// UpdateCompany godoc
// @Summary Update an existing company
// @Description Update a company and replace its ingestion schedules
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Company ID"
// @Param   company  body    dto.UpdateCompanyRequest   true    "Company to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	var req dto.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.companyService.UpdateCompany(c.Request().Context(), id, &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteCompany godoc
// @Summary Delete a company
// @Description Delete a company and all of its reviews, schedules, and runs
// @Tags companies
// @Produce  json
// @Param   id  path    int true    "Company ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	if err := h.companyService.DeleteCompany(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete company"})
	}

	return c.NoContent(http.StatusNoContent)
}

// TriggerFetch godoc
// @Summary Trigger a manual review fetch
// @Description Enqueue an ingestion run for the company's review source
// @Tags companies
// @Produce  json
// @Param   id  path    int true    "Company ID"
// @Success 202 {object} dto.TriggerFetchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/fetch [post]
func (h *CompanyHandler) TriggerFetch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	resp, err := h.companyService.TriggerFetch(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusAccepted, resp)
}

// ListIngestions godoc
// @Summary List ingestion runs
// @Description Get the ingestion run history for a company
// @Tags companies
// @Produce  json
// @Param   id  path    int true    "Company ID"
// @Success 200 {array} dto.IngestionRunResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{id}/ingestions [get]
func (h *CompanyHandler) ListIngestions(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	runs, err := h.companyService.ListIngestions(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, runs)
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

package handlers

import (
	response "garagejobs/internal/adapter/http/dto/response"
	"garagejobs/internal/usecase"
	"garagejobs/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InsuranceCompanyHandler serves the intake form's insurance company picker.

type InsuranceCompanyHandler struct {
	usecase usecase.IInsuranceCompanyUseCase
}

func NewInsuranceCompanyHandler(uc usecase.IInsuranceCompanyUseCase) *InsuranceCompanyHandler {
	return &InsuranceCompanyHandler{usecase: uc}
}

func (h *InsuranceCompanyHandler) ListInsuranceCompanies(c *gin.Context) {
	companies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInsuranceCompanies(companies))
}

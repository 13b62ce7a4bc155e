package handlers

import (
	response "garagejobs/internal/adapter/http/dto/response"
	"garagejobs/internal/usecase"
	"garagejobs/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler serves the employee picker used by the station screens.

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

// SearchEmployees lists active employees matching the query, paginated.
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	page, err := parseQueryInt(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest).ToHTTPError())
		return
	}
	limit, err := parseQueryInt(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest).ToHTTPError())
		return
	}

	employees, total, err := h.usecase.Search(c.Request.Context(), query, page, limit)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = usecase.DefaultEmployeePageSize
	}

	c.JSON(http.StatusOK, response.FromEmployees(employees, page, limit, total))
}

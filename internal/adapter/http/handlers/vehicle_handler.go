package handlers

import (
	"errors"
	request "garagejobs/internal/adapter/http/dto/request"
	response "garagejobs/internal/adapter/http/dto/response"
	"garagejobs/internal/usecase"
	"garagejobs/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
)

// VehicleHandler serves the intake form's registration lookup and manual
// vehicle registration.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// CreateVehicle registers a vehicle ahead of any job.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), usecase.VehicleInput{
		Registration:  payload.Registration,
		Brand:         payload.Brand,
		Model:         payload.Model,
		Type:          payload.Type,
		Year:          payload.Year,
		Color:         payload.Color,
		ChassisNumber: payload.ChassisNumber,
	})
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

// GetVehicleByRegistration is the intake form's plate lookup: a hit prefills
// the form, a miss means the vehicle is new.
func (h *VehicleHandler) GetVehicleByRegistration(c *gin.Context) {
	registration := c.Param("registration")

	vehicle, err := h.usecase.GetByRegistration(c.Request.Context(), registration)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRegistrationRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleAlreadyExists):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_EXISTS", "Vehicle already registered with this plate", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"garagejobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs               = "/jobs"
	PathEmployees          = "/employees"
	PathVehicles           = "/vehicles"
	PathInsuranceCompanies = "/insurance-companies"
	PathPayments           = "/payments"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, stepHandler *handlers.StepHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id", jobHandler.UpdateJobDetails)

		// Workflow progression. State transitions are validated server side.
		jobs.PATCH("/:job_id/steps/:step_id", stepHandler.UpdateStep)
		jobs.POST("/:job_id/stages/:stage_index/skip", stepHandler.BulkSkip)
	}
}

func addGarageRoutes(rg *gin.RouterGroup, employeeHandler *handlers.EmployeeHandler, vehicleHandler *handlers.VehicleHandler, insuranceHandler *handlers.InsuranceCompanyHandler) {
	rg.GET(PathEmployees, employeeHandler.SearchEmployees)

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("/by-registration/:registration", vehicleHandler.GetVehicleByRegistration)
	}

	rg.GET(PathInsuranceCompanies, insuranceHandler.ListInsuranceCompanies)
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.ExcessPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:job_id", paymentHandler.CreatePaymentByJobID)
		payments.GET("/:job_id", paymentHandler.GetPaymentByJobID)
	}
}

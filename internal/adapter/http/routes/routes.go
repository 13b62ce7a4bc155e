package routes

import (
	_ "garagejobs/docs" // This will be auto-generated
	"garagejobs/internal/adapter/http/handlers"
	repository2 "garagejobs/internal/adapter/persistence/repository"
	"garagejobs/internal/infrastructure/database"
	"garagejobs/internal/infrastructure/payments"
	"garagejobs/internal/usecase"
	"garagejobs/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	insuranceRepo := repository2.NewInsuranceCompanyDynamoRepository(ddb)
	paymentRepo := repository2.NewExcessPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, vehicleRepo, customerRepo, insuranceRepo)
	progressUseCase := usecase.NewJobProgressUseCase(jobRepo, employeeRepo)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	insuranceUseCase := usecase.NewInsuranceCompanyUseCase(insuranceRepo)
	paymentUseCase := usecase.NewExcessPaymentUseCase(paymentRepo, jobRepo, paymentGateway)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	stepHandler := handlers.NewStepHandler(progressUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	insuranceHandler := handlers.NewInsuranceCompanyHandler(insuranceUseCase)
	paymentHandler := handlers.NewExcessPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, stepHandler)
	addGarageRoutes(v1, employeeHandler, vehicleHandler, insuranceHandler)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

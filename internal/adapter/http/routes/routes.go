package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "salao_xpto/docs" // This will be auto-generated
	"salao_xpto/internal/adapter/http/handlers"
	repository2 "salao_xpto/internal/adapter/persistence/repository"
	"salao_xpto/internal/infrastructure/database"
	"salao_xpto/internal/usecase"

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

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	settingsRepo := repository2.NewWorkspaceSettingsDynamoRepository(ddb)

	lifecycleUseCase := usecase.NewPaymentLifecycleUseCase(paymentRepo, appointmentRepo, settingsRepo)
	sweeperUseCase := usecase.NewExpirySweeperUseCase(paymentRepo)
	settingsUseCase := usecase.NewWorkspaceSettingsUseCase(settingsRepo)

	paymentHandler := handlers.NewPaymentHandler(lifecycleUseCase, sweeperUseCase)
	settingsHandler := handlers.NewWorkspaceSettingsHandler(settingsUseCase)

	startExpirySweeper(sweeperUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, settingsHandler)
}

// startExpirySweeper kicks off the periodic pass that cancels overdue
// charges. The interval comes from PAYMENT_EXPIRY_SWEEP_INTERVAL; set it to
// "off" to rely only on the manual sweep endpoint.
func startExpirySweeper(sweeper usecase.IExpirySweeperUseCase) {
	raw := os.Getenv("PAYMENT_EXPIRY_SWEEP_INTERVAL")
	if raw == "off" {
		log.Printf("[sweeper][routes] periodic sweep disabled")
		return
	}
	interval := 5 * time.Minute
	if raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			log.Printf("[sweeper][routes] invalid PAYMENT_EXPIRY_SWEEP_INTERVAL=%q, using default %s", raw, interval)
		} else {
			interval = parsed
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			report, err := sweeper.SweepExpired(context.Background(), "")
			if err != nil {
				log.Printf("[sweeper][routes] pass failed err=%v", err)
				continue
			}
			if report.Selected > 0 {
				log.Printf("[sweeper][routes] pass done selected=%d cancelled=%d skipped=%d failed=%d", report.Selected, report.Cancelled, report.Skipped, report.Failed)
			}
		}
	}()
	log.Printf("[sweeper][routes] periodic sweep every %s", interval)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

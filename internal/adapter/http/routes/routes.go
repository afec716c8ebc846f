package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/docs" // swag-generated
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/handlers"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/persistence/localstore"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/persistence/repository"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/infrastructure/auth"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/infrastructure/database"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/infrastructure/logger"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/infrastructure/payments"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
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
	appLog := logger.New()

	db, err := database.OpenBoltDB()
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	store, err := localstore.NewBoltStore(db)
	if err != nil {
		log.Fatalf("Failed to initialize local store: %v", err)
	}
	syncQueue := localstore.NewBoltSyncQueue(store)

	ddb, err := database.NewDynamoDBClient(context.Background())
	if err != nil {
		log.Fatalf("Failed to create dynamodb client: %v", err)
	}
	remote := repository.NewRemoteDynamoStore(ddb)

	identity := auth.NewEnvIdentityProvider()
	coordinator := usecase.NewSyncCoordinator(store, syncQueue, remote, identity, appLog)

	invoiceUseCase := usecase.NewInvoiceUseCase(store, coordinator)
	clientUseCase := usecase.NewClientUseCase(store, coordinator)
	settingsUseCase := usecase.NewSettingsUseCase(store, coordinator)
	activityUseCase := usecase.NewActivityUseCase(store)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), appLog)
	if err != nil {
		appLog.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(store, invoiceUseCase, paymentGateway)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	activityHandler := handlers.NewActivityHandler(activityUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	syncHandler := handlers.NewSyncHandler(coordinator, identity)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoicingRoutes(v1, invoiceHandler, clientHandler, settingsHandler, activityHandler, paymentHandler)
	addSyncRoutes(v1, syncHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

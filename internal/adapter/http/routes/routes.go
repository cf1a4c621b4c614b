package routes

import (
	"log"
	"strconv"

	_ "collecte_service/docs" // This will be auto-generated
	"collecte_service/internal/adapter/http/handlers"
	"collecte_service/internal/adapter/http/middleware"
	repository2 "collecte_service/internal/adapter/persistence/repository"
	"collecte_service/internal/auth"
	"collecte_service/internal/infrastructure/database"
	"collecte_service/internal/infrastructure/storage"
	"collecte_service/internal/usecase"

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
	awsCfg := database.ConnectAWSConfig()

	centerRepo := repository2.NewCenterDynamoRepository(ddb)
	storeRepo := repository2.NewStoreDynamoRepository(ddb)
	campaignRepo := repository2.NewCampaignDynamoRepository(ddb)
	authorizationRepo := repository2.NewAuthorizationDynamoRepository(ddb)
	entryRepo := repository2.NewCollecteEntryDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	uploadService := storage.NewS3UploadTokenService(awsCfg)
	tokenIssuer := auth.NewJWTIssuer()

	centerUseCase := usecase.NewCenterUseCase(centerRepo)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, centerRepo, uploadService)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo)
	authorizationUseCase := usecase.NewAuthorizationUseCase(authorizationRepo, campaignRepo, storeRepo)
	collecteUseCase := usecase.NewCollecteUseCase(entryRepo, storeRepo, centerRepo, campaignRepo, productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, centerRepo, tokenIssuer)
	volunteerUseCase := usecase.NewVolunteerUseCase(userRepo, campaignRepo, storeRepo, authorizationRepo)

	centerHandler := handlers.NewCenterHandler(centerUseCase)
	storeHandler := handlers.NewStoreHandler(storeUseCase)
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase)
	authorizationHandler := handlers.NewAuthorizationHandler(authorizationUseCase)
	collecteHandler := handlers.NewCollecteHandler(collecteUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, tokenIssuer, authHandler)

	authenticated := v1.Group("")
	authenticated.Use(middleware.RequireAuth(tokenIssuer))
	addCollecteRoutes(authenticated, collecteHandler, volunteerHandler, campaignHandler)
	addAdminRoutes(authenticated, centerHandler, storeHandler, campaignHandler, authorizationHandler, productHandler, authHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

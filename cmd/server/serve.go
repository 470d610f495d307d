package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kaard-farm/farm-api/internal/config"
	"github.com/kaard-farm/farm-api/internal/database"
	"github.com/kaard-farm/farm-api/internal/handlers"
	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
	"github.com/kaard-farm/farm-api/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	_ "github.com/kaard-farm/farm-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	router := buildRouter(db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Kaard Farm API on %s", addr)
	log.Fatal(router.Run(addr))
}

func buildRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	cropRepo := repository.NewResourceRepository[models.Crop](db)
	equipmentRepo := repository.NewResourceRepository[models.Equipment](db)
	productionRepo := repository.NewResourceRepository[models.Production](db)
	vehicleRepo := repository.NewResourceRepository[models.Vehicle](db)
	userRepo := repository.NewUserRepository(db)

	cropService := services.NewResourceService[models.Crop, *models.Crop](cropRepo, "created_at DESC, id DESC")
	equipmentService := services.NewResourceService[models.Equipment, *models.Equipment](equipmentRepo, "created_at DESC, id DESC")
	productionService := services.NewResourceService[models.Production, *models.Production](productionRepo, "planting_date DESC, id DESC")
	vehicleService := services.NewVehicleService(vehicleRepo)
	authService := services.NewAuthService(userRepo)
	statsService := services.NewStatsService(cropRepo, equipmentRepo, productionRepo, vehicleRepo)

	cropHandler := handlers.NewResourceHandler[models.Crop](cropService, "Crop")
	equipmentHandler := handlers.NewResourceHandler[models.Equipment](equipmentService, "Equipment")
	productionHandler := handlers.NewResourceHandler[models.Production](productionService, "Production record")
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	authHandler := handlers.NewAuthHandler(authService)
	statsHandler := handlers.NewStatsHandler(statsService)
	metaHandler := handlers.NewMetaHandler(db)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": fmt.Sprint(recovered),
		})
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/", metaHandler.Root)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", metaHandler.Health)

		api.POST("/login", authHandler.Login)
		api.POST("/setup-admin", authHandler.SetupAdmin)
		// GET variant kept for browser convenience.
		api.GET("/setup-admin", authHandler.SetupAdmin)

		registerResource(api, "/crops", cropHandler)
		registerResource(api, "/equipment", equipmentHandler)
		registerResource(api, "/production", productionHandler)
		registerResource(api, "/vehicles", vehicleHandler.ResourceHandler)
		api.PUT("/vehicles/:id/location", vehicleHandler.UpdateLocation)

		api.GET("/stats", statsHandler.GetStats)
	}

	router.NoRoute(metaHandler.NotFound)

	return router
}

func registerResource[T any](g *gin.RouterGroup, path string, h *handlers.ResourceHandler[T]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

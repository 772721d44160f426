package main

import (
	"log"
	"strconv"

	"renthub/config"
	"renthub/db"
	"renthub/internal/ratelimit"
	"renthub/middlewares"
	"renthub/routes"
	"renthub/services"
	"renthub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Every route sits behind the JWT guard, so refuse to start without a
	// secret instead of failing on the first request
	if cfg.JWT.Secret == "" {
		log.Fatalf("jwt.secret is not set in config")
	}
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := services.InitEvaluationService(cfg); err != nil {
		log.Fatalf("Failed to init evaluation service: %v", err)
	}

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Redis is optional; without it evaluation submissions are not throttled
	if cfg.Redis.Addr != "" {
		if err := ratelimit.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.Printf("Failed to connect to Redis, rate limiting disabled: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
	}

	// Seed sample renter profiles on an empty database
	utils.PopulateSampleProfiles()

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for the marketplace frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		routes.SetupInterviewRoutes(auth)
	}

	return router
}

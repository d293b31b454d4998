package main

import (
	"log"
	"net/http"
	"os"

	"bolbharat-be/config"
	"bolbharat-be/controllers"
	"bolbharat-be/middlewares"
	"bolbharat-be/routes"
	"bolbharat-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		// Keep serving; reads surface the unavailable state instead.
		log.Println("MongoDB unavailable, API will report store errors")
	}

	config.ConnectRedis()

	issueStore := store.NewMongoStore(config.GetCollection("issues"), config.RedisClient)
	issueController := controllers.NewIssueController(issueStore)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.ClientID())

	markers := middlewares.NewRedisMarkerStore(config.RedisClient)
	routes.IssueRoutes(r, issueController, markers)
	routes.LocationRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

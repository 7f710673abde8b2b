package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/meghannnnnnn/Resumex/internal/handlers"
	"github.com/meghannnnnnn/Resumex/internal/services"
)

func main() {
	// 1. Load Environment Variables
	// Missing .env is fine in deployed environments; the API keys are read
	// per request, so nothing is validated at startup.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// 2. Initialize Core Services (Dependencies)
	llmService := services.NewLLMService()
	mockJobsService := services.NewMockJobsService()
	liveJobsService := services.NewLiveJobsService(mockJobsService)
	resumeService := services.NewResumeService()
	fetchTracker := services.NewFetchTracker()

	// 3. Initialize Handlers
	geminiHandler := handlers.NewGeminiHandler(llmService)
	liveJobsHandler := handlers.NewLiveJobsHandler(liveJobsService, fetchTracker)
	resumeHandler := handlers.NewResumeHandler(resumeService)

	// 4. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 5. Define Routes
	r.GET("/health", handlers.HealthCheck)
	r.POST("/gemini", geminiHandler.Generate)
	r.GET("/live-jobs", liveJobsHandler.GetLiveJobs)
	r.POST("/resume/extract", resumeHandler.ExtractText)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

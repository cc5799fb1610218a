// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carewell/patient-records/config"
	"github.com/carewell/patient-records/endpoint"
	"github.com/carewell/patient-records/middleware"
	"github.com/carewell/patient-records/store"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	patientStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Error initializing patient store: %v", err)
	}

	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.StoreMiddleware(patientStore))
	router.Use(middleware.RateLimiter(middleware.RateLimitConfig{}))

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/patients", endpoint.ListPatients)
	router.POST("/patients", endpoint.CreatePatient)
	router.GET("/patients/:id", endpoint.GetPatientInfo)
	router.PUT("/patients/:id", endpoint.UpdatePatient)
	router.DELETE("/patients/:id", endpoint.DeletePatient)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newStore selects the store backend: MySQL by default, in-memory when
// STORE=memory (local development without a database).
func newStore(cfg *config.Config) (store.PatientStore, error) {
	if cfg.StoreBackend == "memory" {
		return store.NewMemoryStore(), nil
	}

	db, err := config.ConnectMySQL()
	if err != nil {
		return nil, fmt.Errorf("connect MySQL: %w", err)
	}
	return store.NewMySQLStore(db)
}

package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"shiftbook.com.au/shiftbook/infrastructure/devops"
	"shiftbook.com.au/shiftbook/store"
	"shiftbook.com.au/shiftbook/web/handlers/punchfile"
	"shiftbook.com.au/shiftbook/web/middlewares"
)

func main() {
	r := gin.Default()
	ctx := context.Background()

	cfg, err := devops.LoadAppConfig(ctx)
	if err != nil {
		// local development without SSM
		fmt.Printf("config not loaded (%v), falling back to environment\n", err)
		cfg = &devops.AppConfig{
			DSN:            os.Getenv("DSN"),
			MaxConnections: 10,
			SigningSecret:  os.Getenv("SHIFTBOOK_SIGNING_SECRET"),
		}
	}

	fmt.Printf("using DSN: %s\n", cfg.DSN)
	dm, err := store.New(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	protected := r.Group("/api/shiftbook/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		punchfile.Register(protected, dm, cfg)
	}

	r.Run("0.0.0.0:8090")
}

package main

import (
	"log"
	"os"
	"time"

	"qaleb-store/internal/app"
	"qaleb-store/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// build dependency + routes
	if err := app.BuildApp(r, auditLogger); err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}

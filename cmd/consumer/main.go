package main

import (
	"log"

	"qaleb-store/internal/app"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunConsumer(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"workforce-engine/internal/handler"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Workforce engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nando-backend/internal/catalog"
	"nando-backend/internal/config"
	"nando-backend/internal/handlers"
	"nando-backend/internal/router"
	"nando-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Donde Nando Grill Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Menu Catalog ────
	menu, err := catalog.LoadMenu()
	if err != nil {
		log.Fatalf("✗ Menu catalog failed to load: %v", err)
	}
	log.Printf("✓ Menu catalog loaded (%d sections)", len(menu.MenuSections))

	// ──── Step 3: Initialize Gemini Client ────
	// A missing credential is deliberately not fatal: the assistant endpoint
	// answers with a configuration error and the rest of the site keeps
	// working.
	var assistantService *services.AssistantService
	if cfg.GeminiAPIKey != "" {
		assistantService, err = services.NewAssistantService(
			cfg.GeminiAPIKey,
			cfg.GeminiModel,
			cfg.GeminiConcurrentReqs,
			menu,
		)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer assistantService.Close()
		log.Println("✓ Gemini client initialized")
	} else {
		log.Println("✗ Gemini API credential missing; assistant disabled")
	}

	// ──── Initialize Services ────
	reservationService := services.NewReservationService(cfg.FormEndpoint)

	// ──── Initialize Handlers ────
	// The nil check matters: a typed nil pointer wrapped in the interface
	// would defeat the handler's missing-credential guard.
	assistantHandler := handlers.NewAssistantHandler(nil)
	if assistantService != nil {
		assistantHandler = handlers.NewAssistantHandler(assistantService)
	}
	reservationHandler := handlers.NewReservationHandler(reservationService)
	siteHandler := handlers.NewSiteHandler(menu)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		assistantHandler,
		reservationHandler,
		siteHandler,
		cfg.FrontendURL,
		cfg.ChatRateLimit,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Donde Nando Grill Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

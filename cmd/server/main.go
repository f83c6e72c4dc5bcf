package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memo_api/internal/api"
	"memo_api/internal/app/service"
	"memo_api/internal/common/security"
	"memo_api/internal/domain/repository"
	"memo_api/internal/platform/config"
	"memo_api/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	log.Println("Configuration loaded.")

	// 2. Initialize Database
	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	log.Println("Migrations applied.")

	// 3. Initialize token signer
	jwt := security.NewJWT(cfg.JWTKey)

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	noteRepo := repository.NewPgNoteRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, jwt, cfg.JWTExp)
	noteService := service.NewNoteService(noteRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(authService, noteService, jwt, userRepo, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}

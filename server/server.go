package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/db"
	"github.com/greencycle/recyclemart/mailingservices"
	"github.com/greencycle/recyclemart/services"
)

// Server holds the wired dependencies for the HTTP API.
type Server struct {
	Config           *config.Config
	Mail             *mailingservices.Mailgun
	AuthRepository   db.AuthRepository
	AuthService      services.AuthService
	UploadRepository db.UploadRepository
	UploadService    services.UploadService
	RewardRepository db.RewardRepository
	RewardService    services.RewardService
	ChatService      services.ChatService
	DB               db.GormDB
}

// Start runs the HTTP server until interrupted, then shuts down gracefully.
func (s *Server) Start() {
	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.setupRouter(),
	}

	go func() {
		log.Printf("Server running on http://localhost:%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if s.ChatService != nil {
		s.ChatService.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

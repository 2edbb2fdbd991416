// File: cmd/server/main.go
package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "github.com/glebarez/sqlite"
    "github.com/gorilla/mux"
    "gorm.io/gorm"

    "github.com/iyunix/pharma-assist/internal/config"
    "github.com/iyunix/pharma-assist/internal/domain"
    "github.com/iyunix/pharma-assist/internal/handlers"
    "github.com/iyunix/pharma-assist/internal/middleware"
    "github.com/iyunix/pharma-assist/internal/ratelimit"
    messagerepo "github.com/iyunix/pharma-assist/internal/repository/message"
    threadrepo "github.com/iyunix/pharma-assist/internal/repository/thread"
    userrepo "github.com/iyunix/pharma-assist/internal/repository/user"
    "github.com/iyunix/pharma-assist/internal/services"
    "github.com/iyunix/pharma-assist/internal/services/ai"
    "github.com/iyunix/pharma-assist/internal/services/chat"
    "github.com/iyunix/pharma-assist/internal/services/medicine"
    "github.com/iyunix/pharma-assist/internal/services/user_services"
)

func main() {
    cfg := config.Load()
    logger := services.NewLogger("pharma-assist")

    db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
    if err != nil {
        log.Fatalf("failed to open database: %v", err)
    }
    if err := db.AutoMigrate(&domain.User{}, &domain.Thread{}, &domain.Message{}); err != nil {
        log.Fatalf("failed to migrate database: %v", err)
    }

    // Repositories
    userRepository := userrepo.NewRepository(db)
    threadRepository := threadrepo.NewRepository(db)
    messageRepository := messagerepo.NewRepository(db)

    // LLM provider
    aiConfig := ai.DefaultConfig()
    aiConfig.APIKey = cfg.GroqAPIKey
    aiConfig.BaseURL = cfg.GroqBaseURL
    aiConfig.Model = cfg.GroqModel
    if err := aiConfig.Validate(); err != nil {
        log.Fatalf("invalid AI configuration: %v", err)
    }
    provider := ai.NewGroqProvider(aiConfig)

    // Medicine pipeline
    kb := medicine.NewKnowledgeBase()
    medicineConfig := medicine.DefaultConfig()
    medicineConfig.ConfidenceThreshold = cfg.ConfidenceThreshold
    classifier, err := medicine.NewClassifier(medicineConfig, kb, provider, services.NewLogger("classifier"))
    if err != nil {
        log.Fatalf("failed to build classifier: %v", err)
    }
    resolver, err := medicine.NewResolver(medicineConfig, kb, provider, services.NewLogger("resolver"))
    if err != nil {
        log.Fatalf("failed to build resolver: %v", err)
    }

    // Services
    chatConfig := chat.DefaultConfig()
    chatConfig.ConfidenceThreshold = cfg.ConfidenceThreshold
    chatService, err := services.NewChatService(
        chatConfig, classifier, resolver,
        threadRepository, messageRepository,
        services.NewLogger("chat"),
    )
    if err != nil {
        log.Fatalf("failed to build chat service: %v", err)
    }
    authService := user_services.NewAuthService(userRepository, cfg.JWTSecretKey, services.NewLogger("auth"))

    // Handlers
    production := strings.ToLower(cfg.Environment) == "production"
    authHandler := handlers.NewAuthHandler(authService, production, logger)
    chatHandler := handlers.NewChatHandler(chatService, logger)

    // Router
    router := mux.NewRouter()
    router.Use(middleware.RecoveryMiddleware(logger))
    router.Use(middleware.LoggingMiddleware(logger))
    router.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
    router.Use(middleware.RateLimitMiddleware(ratelimit.NewMemoryRateLimiter(60, time.Minute)))

    router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        w.Write([]byte(`{"status":"ok"}`))
    }).Methods(http.MethodGet)

    api := router.PathPrefix("/api").Subrouter()
    api.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
    api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
    api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

    protected := api.NewRoute().Subrouter()
    protected.Use(middleware.AuthMiddleware(authService))
    protected.HandleFunc("/chat", chatHandler.SendMessage).Methods(http.MethodPost)
    protected.HandleFunc("/thread", chatHandler.CreateThread).Methods(http.MethodPost)
    protected.HandleFunc("/thread", chatHandler.ListThreads).Methods(http.MethodGet)
    protected.HandleFunc("/thread/{threadId}", chatHandler.GetThreadMessages).Methods(http.MethodGet)
    protected.HandleFunc("/thread/{threadId}", chatHandler.DeleteThread).Methods(http.MethodDelete)
    protected.HandleFunc("/thread/{threadId}/messages", chatHandler.SendMessageToThread).Methods(http.MethodPost)

    server := &http.Server{
        Addr:         ":" + cfg.ServerPort,
        Handler:      router,
        ReadTimeout:  15 * time.Second,
        WriteTimeout: 150 * time.Second, // LLM-backed replies can be slow
        IdleTimeout:  60 * time.Second,
    }

    go func() {
        logger.Info("server starting", "port", cfg.ServerPort, "environment", cfg.Environment)
        if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server failed: %v", err)
        }
    }()

    // Graceful shutdown on SIGINT/SIGTERM.
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    logger.Info("server shutting down")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()
    if err := server.Shutdown(ctx); err != nil {
        logger.Error("forced shutdown", "error", err.Error())
    }
    logger.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dileep-u-k/weather-gateway/internal/accuweather"
	"github.com/dileep-u-k/weather-gateway/internal/mcpserver"
	"github.com/dileep-u-k/weather-gateway/internal/tools"
	"github.com/dileep-u-k/weather-gateway/internal/version"
	"github.com/dileep-u-k/weather-gateway/internal/weather"
)

// main is the entry point for the gateway.
// Its primary role is the "Composition Root": it loads configuration,
// initializes all services, injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := version.Get()
	log.Printf("🚀 Starting Weather Gateway | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	provider := accuweather.NewClient(accuweather.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.ProviderTimeout(),
	})
	svc := weather.NewService(provider)
	registry := initializeToolRegistry(svc)
	gatewayHandler := NewGatewayHandler(registry)
	mcpHandler := mcpserver.NewHandler(svc, buildInfo.Version)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()

	api := engine.Group(cfg.Server.PathPrefix)
	{
		api.GET("/tools", gatewayHandler.HandleListTools)
		api.POST("/tools/:name", gatewayHandler.HandleToolInvocation)
	}
	engine.GET("/healthz", gatewayHandler.HandleHealthz)
	engine.Any(cfg.Server.MCPPath, gin.WrapH(mcpHandler))

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Server.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeToolRegistry creates and registers all available tools.
func initializeToolRegistry(svc *weather.Service) *tools.Registry {
	registry := tools.NewRegistry()

	registry.Register(tools.NewSearchLocationTool(svc))
	registry.Register(tools.NewCurrentWeatherTool(svc))
	registry.Register(tools.NewForecastTool(svc))
	registry.Register(tools.NewSummaryTool(svc))

	log.Printf("✅ Tool registry initialized with %d tools.", registry.Count())
	return registry
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Gateway is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}

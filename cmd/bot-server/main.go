// cmd/bot-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/observability"
	"dining-concierge/internal/dispatch"
	"dining-concierge/internal/intents/dining"
	"dining-concierge/internal/notify"
	"dining-concierge/internal/relay"
	"dining-concierge/internal/server"
	"dining-concierge/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("starting bot server", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	dynamoClient, err := aws.NewDynamoDBClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLogger.Fatal("failed to create DynamoDB client", zap.Error(err))
	}
	snsClient, err := aws.NewSNSClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLogger.Fatal("failed to create SNS client", zap.Error(err))
	}
	lexClient, err := aws.NewLexClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLogger.Fatal("failed to create Lex client", zap.Error(err))
	}

	restaurantStore := store.NewRestaurantStore(dynamoClient, cfg.AWS.RestaurantsTable, log)
	publisher := notify.NewTopicPublisher(snsClient, cfg.AWS.SuggestionsTopicARN, log)

	diningHandler := dining.NewHandler(restaurantStore, publisher, &dining.Config{
		MaxSuggestions: cfg.Dining.MaxSuggestions,
	}, log)
	dispatcher := dispatch.NewDispatcher(diningHandler, obs, log)
	frontDoor := relay.NewRelay(lexClient, cfg.Lex, log)

	router := server.NewRouter(frontDoor, dispatcher, cfg, log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()
	log.Info("bot server listening", map[string]interface{}{"addr": srv.Addr})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutdown signal received", map[string]interface{}{"signal": sig.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed", nil)
	}
	log.Info("bot server stopped", nil)
}

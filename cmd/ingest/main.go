// cmd/ingest/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	conciergehttp "dining-concierge/internal/common/http"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/ingest"
	"dining-concierge/internal/store"
	"dining-concierge/pkg/catalog"
)

func main() {
	location := flag.String("location", "", "city or area to search (required)")
	cuisine := flag.String("cuisine", "", "cuisine category to search (required)")
	limit := flag.Int("limit", 0, "page size, defaults to the configured limit")
	catalogPath := flag.String("catalog", "configs/cuisines.json", "cuisine catalog file")
	flag.Parse()

	if *location == "" || *cuisine == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest -location <city> -cuisine <category> [-limit <n>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	pageLimit := cfg.Yelp.PageLimit
	if *limit > 0 {
		pageLimit = *limit
	}

	// The catalog is optional; without it the cuisine flag is passed through
	// lowercased.
	category := *cuisine
	if cat, err := catalog.Load(*catalogPath); err == nil {
		category = cat.ResolveAlias(*cuisine)
	} else {
		log.Warn("cuisine catalog not loaded", map[string]interface{}{
			"path":   *catalogPath,
			"reason": err.Error(),
		})
	}

	ctx := context.Background()

	dynamoClient, err := aws.NewDynamoDBClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLogger.Fatal("failed to create DynamoDB client", zap.Error(err))
	}

	restaurantStore := store.NewRestaurantStore(dynamoClient, cfg.AWS.RestaurantsTable, log)
	yelpClient := ingest.NewYelpClient(
		conciergehttp.NewClient(config.GetDuration(cfg.Yelp.Timeout)),
		cfg.Yelp,
		log,
	)

	ingester := ingest.NewIngester(yelpClient, restaurantStore, log)
	written, err := ingester.Run(ctx, *location, category, pageLimit)
	if err != nil {
		zapLogger.Fatal("ingestion failed",
			zap.Error(err),
			zap.Int("written", written),
		)
	}

	log.Info("ingestion finished", map[string]interface{}{
		"location": *location,
		"cuisine":  *cuisine,
		"written":  written,
	})
}

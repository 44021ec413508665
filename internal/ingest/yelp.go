// internal/ingest/yelp.go
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/errors"
	conciergehttp "dining-concierge/internal/common/http"
	"dining-concierge/internal/common/logger"
)

// maxPageLimit is the largest page the business search endpoint accepts.
const maxPageLimit = 50

// Business is one listing returned by the directory search.
type Business struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Rating      float64            `json:"rating"`
	ReviewCount int                `json:"review_count"`
	Location    BusinessLocation   `json:"location"`
	Categories  []BusinessCategory `json:"categories"`
}

type BusinessLocation struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

type BusinessCategory struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type searchResponse struct {
	Businesses []Business `json:"businesses"`
	Total      int        `json:"total"`
}

// YelpClient talks to the Yelp Fusion business search endpoint.
type YelpClient struct {
	http   *conciergehttp.Client
	cfg    config.YelpConfig
	logger logger.Logger
}

func NewYelpClient(httpClient *conciergehttp.Client, cfg config.YelpConfig, log logger.Logger) *YelpClient {
	return &YelpClient{
		http:   httpClient,
		cfg:    cfg,
		logger: log,
	}
}

// SearchBusinesses fetches one page of listings for a location and category.
// The page limit is clamped to the endpoint maximum; no follow-up pages are
// requested.
func (c *YelpClient) SearchBusinesses(ctx context.Context, location, category string, limit int) ([]Business, error) {
	if limit <= 0 || limit > maxPageLimit {
		limit = maxPageLimit
	}

	params := url.Values{}
	params.Set("location", location)
	params.Set("categories", category)
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/businesses/search?%s", c.cfg.BaseURL, params.Encode())
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewDirectoryFetchFailedError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		return nil, errors.NewDirectoryFetchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.NewDirectoryFetchFailedError(
			fmt.Errorf("business search returned %d: %s", resp.StatusCode, string(body)))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewDirectoryFetchFailedError(err)
	}

	c.logger.Debug("directory page fetched", map[string]interface{}{
		"location": location,
		"category": category,
		"returned": len(result.Businesses),
		"total":    result.Total,
	})

	return result.Businesses, nil
}

// internal/ingest/ingester.go
package ingest

import (
	"context"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

// defaultPartySize is the placeholder party size stamped on every ingested
// record. The conversational flow collects the real value per request.
const defaultPartySize = 4

// Directory is the listing source the ingester reads from.
type Directory interface {
	SearchBusinesses(ctx context.Context, location, category string, limit int) ([]Business, error)
}

// RecordWriter is the store write the ingester needs.
type RecordWriter interface {
	Put(ctx context.Context, r models.Restaurant) error
}

// Ingester loads one page of directory listings for a location/cuisine pair
// into the restaurant store. Writes are sequential and fail-fast: the first
// write error aborts the run.
type Ingester struct {
	directory Directory
	writer    RecordWriter
	logger    logger.Logger
}

func NewIngester(directory Directory, writer RecordWriter, log logger.Logger) *Ingester {
	return &Ingester{
		directory: directory,
		writer:    writer,
		logger:    log,
	}
}

// Run fetches listings and writes them keyed by directory ID, tagging each
// with the cuisine that found it. Returns the number of records written.
func (i *Ingester) Run(ctx context.Context, location, cuisine string, limit int) (int, error) {
	businesses, err := i.directory.SearchBusinesses(ctx, location, cuisine, limit)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, b := range businesses {
		record := toRestaurant(b, cuisine)
		if err := i.writer.Put(ctx, record); err != nil {
			return written, errors.NewRecordWriteFailedError(record.ID, err)
		}
		written++
		metrics.IngestRecordsWritten.WithLabelValues(cuisine).Inc()
	}

	i.logger.Info("ingestion complete", map[string]interface{}{
		"location": location,
		"cuisine":  cuisine,
		"written":  written,
	})
	return written, nil
}

// toRestaurant maps a directory listing onto a store record. The cuisine tag
// comes from the search query, not the listing's own category list, so one
// listing can appear under several cuisines across runs.
func toRestaurant(b Business, cuisine string) models.Restaurant {
	phone := b.Phone
	if phone == "" {
		phone = "N/A"
	}
	return models.Restaurant{
		ID:               b.ID,
		Name:             b.Name,
		Address:          b.Location.Address1,
		City:             b.Location.City,
		State:            b.Location.State,
		ZipCode:          b.Location.ZipCode,
		Phone:            phone,
		Rating:           b.Rating,
		ReviewCount:      b.ReviewCount,
		Cuisine:          cuisine,
		PartySizeDefault: defaultPartySize,
	}
}

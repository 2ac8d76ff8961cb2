package wikidex

import (
	"context"
	"time"
)

// Record represents one wiki page's extracted content. It is the shared
// output shape of every producer: the SQL dump parser, the live API
// scraper, and the XML export importer.
type Record struct {
	ID          string    `json:"id,omitempty"`
	PageID      int       `json:"pageid,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt,omitzero"`
}

// Validate returns an error if the record contains invalid fields.
// A record must carry a title, non-empty content, and either a URL or a
// numeric page ID so it can be traced back to its source page.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "record content required")
	}
	if r.URL == "" && r.PageID == 0 {
		return Errorf(EINVALID, "record URL or page ID required")
	}
	return nil
}

// SortOrder represents the sort order for record queries.
type SortOrder string

// SortOrder constants for RecordFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByTitle     SortOrder = "title"
)

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID     *string `json:"id"`
	PageID *int    `json:"pageid"`
	Title  *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// RecordService represents a service for managing records.
type RecordService interface {
	// CreateRecord creates a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// CreateRecords creates multiple records in a batch.
	CreateRecords(ctx context.Context, recs []*Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// CountRecords returns the total number of stored records.
	CountRecords(ctx context.Context) (int, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error

	// ReplaceRecords atomically replaces all stored records with the
	// given set. Used by scheduled refreshes so readers never observe a
	// half-replaced store.
	ReplaceRecords(ctx context.Context, recs []*Record) error
}

// RecordWriter writes a full set of records to an output destination.
type RecordWriter interface {
	WriteRecords(ctx context.Context, recs []*Record) error
}

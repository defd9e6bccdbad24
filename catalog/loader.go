package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/talentsift/core"
)

// recordDTO is the on-disk JSON shape of a single catalog entry.
type recordDTO struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	Duration        string `json:"duration"`
	RemoteSupport   string `json:"remote_support"`
	AdaptiveSupport string `json:"adaptive_support"`
	Type            string `json:"type"`
}

// toRecord maps the DTO onto a domain record, filling absent optional
// fields with their documented defaults.
func (d recordDTO) toRecord() core.AssessmentRecord {
	record := core.AssessmentRecord{
		Name:            d.Name,
		URL:             d.URL,
		Description:     d.Description,
		Duration:        d.Duration,
		RemoteSupport:   core.SupportFlag(d.RemoteSupport),
		AdaptiveSupport: core.SupportFlag(d.AdaptiveSupport),
		Category:        core.Category(d.Type),
	}
	if record.Duration == "" {
		record.Duration = core.DurationNotSpecified
	}
	if record.RemoteSupport == "" {
		record.RemoteSupport = core.SupportNo
	}
	if record.AdaptiveSupport == "" {
		record.AdaptiveSupport = core.SupportNo
	}
	if record.Category == "" {
		record.Category = core.CategoryGeneral
	}
	return record
}

// Load reads a catalog JSON file and returns the valid, deduplicated
// records in file order.
//
// Invalid entries are skipped with a warning rather than failing the whole
// load. Entries sharing a URL with an earlier entry are dropped as
// duplicates. An unreadable or malformed file is an error.
func Load(path string, opts ...LoadOption) ([]core.AssessmentRecord, error) {
	cfg := loadConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger.With("component", "catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnreadable, err)
	}
	return Parse(data, logger)
}

// Parse decodes catalog JSON bytes. See Load for the skip and dedup rules.
func Parse(data []byte, logger *slog.Logger) ([]core.AssessmentRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var dtos []recordDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogMalformed, err)
	}

	records := make([]core.AssessmentRecord, 0, len(dtos))
	seen := make(map[core.ID]struct{}, len(dtos))
	for i, dto := range dtos {
		record := dto.toRecord()
		if err := core.ValidateRecord(&record); err != nil {
			logger.Warn("skipping invalid catalog entry",
				"entry", i, "name", record.Name, "err", err)
			continue
		}
		id := record.ID()
		if _, dup := seen[id]; dup {
			logger.Warn("skipping duplicate catalog entry",
				"entry", i, "url", record.URL)
			continue
		}
		seen[id] = struct{}{}
		records = append(records, record)
	}

	logger.Info("catalog loaded", "entries", len(dtos), "kept", len(records))
	return records, nil
}

// loadConfig holds Load options.
type loadConfig struct {
	logger *slog.Logger
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

// WithLogger sets a custom logger for load diagnostics.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(cfg *loadConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

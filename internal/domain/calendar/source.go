package calendar

import (
	"net/url"
	"strings"
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxSourceNameLength = 100
	MaxSourceURLLength  = 2048
)

var (
	ErrEmptySourceName   = errs.Mark(errs.New("calendar source name cannot be empty"), errs.ErrInvalidInput)
	ErrSourceNameTooLong = errs.Mark(errs.New("calendar source name is too long (max 100 characters)"), errs.ErrInvalidInput)
	ErrInvalidSourceURL  = errs.Mark(errs.New("calendar source url must be an absolute http(s) or webcal url"), errs.ErrInvalidInput)
	ErrMissingProperty   = errs.Mark(errs.New("calendar source must belong to a property"), errs.ErrInvalidInput)
)

type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

func (s SyncStatus) String() string { return string(s) }

// Source is an external iCalendar feed attached to a property.
type Source struct {
	id         uuid.UUID
	propertyID uuid.UUID
	name       string
	url        string
	enabled    bool
	createdAt  time.Time
}

func NewSource(propertyID uuid.UUID, name, rawURL string, enabled bool, now time.Time) (*Source, error) {
	if propertyID == uuid.Nil {
		return nil, ErrMissingProperty
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySourceName
	}
	if len(name) > MaxSourceNameLength {
		return nil, ErrSourceNameTooLong
	}
	normalized, err := NormalizeFeedURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Source{
		id:         uuid.New(),
		propertyID: propertyID,
		name:       name,
		url:        normalized,
		enabled:    enabled,
		createdAt:  now,
	}, nil
}

// NormalizeFeedURL accepts http, https and webcal urls and rewrites webcal to https.
func NormalizeFeedURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > MaxSourceURLLength {
		return "", ErrInvalidSourceURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidSourceURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "webcal", "webcals":
		u.Scheme = "https"
	default:
		return "", ErrInvalidSourceURL
	}
	return u.String(), nil
}

func (s *Source) ID() uuid.UUID         { return s.id }
func (s *Source) PropertyID() uuid.UUID { return s.propertyID }
func (s *Source) Name() string          { return s.name }
func (s *Source) URL() string           { return s.url }
func (s *Source) Enabled() bool         { return s.enabled }
func (s *Source) CreatedAt() time.Time  { return s.createdAt }

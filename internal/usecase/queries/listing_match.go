package queries

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/similarity"

	"github.com/google/uuid"
)

const (
	maxPastedTextLength = 20000
	addressWeight       = 0.3
)

var ErrEmptyListingText = errs.Mark(errs.New("listing text is required"), errs.ErrInvalidInput)

var (
	titleLabelRe   = regexp.MustCompile(`(?im)^\s*(?:title|listing|property|name|nombre|t[ií]tulo)\s*[:\-]\s*(.+)$`)
	addressLabelRe = regexp.MustCompile(`(?im)^\s*(?:address|location|direcci[oó]n|ubicaci[oó]n)\s*[:\-]\s*(.+)$`)
	guestsRe       = regexp.MustCompile(`(?i)(\d{1,3})\s*(?:guests?|adults?|people|persons?|hu[eé]spedes|personas|adultos)`)
)

// ListingHints is what could be scraped from pasted OTA listing text.
type ListingHints struct {
	Title   string  `json:"title"`
	Address *string `json:"address,omitempty"`
	Guests  *int    `json:"guests,omitempty"`
}

type MatchCandidate struct {
	PropertyID  uuid.UUID `json:"property_id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
	AutoMatch   bool      `json:"auto_match"`
	GuestsMatch bool      `json:"guests_match"`
}

// MatchResult is advisory only; nothing is written or merged from it.
type MatchResult struct {
	Hints      ListingHints      `json:"hints"`
	Threshold  float64           `json:"threshold"`
	Candidates []*MatchCandidate `json:"candidates"`
}

type ListingMatchQueries interface {
	Match(ctx context.Context, callerUserID uuid.UUID, pastedText string) (*MatchResult, error)
}

type listingMatchQueriesImpl struct {
	properties PropertyReadStore
	threshold  float64
}

func NewListingMatchQueries(properties PropertyReadStore, cfg config.ImportConfig) ListingMatchQueries {
	return &listingMatchQueriesImpl{properties: properties, threshold: cfg.MatchThreshold}
}

func (q *listingMatchQueriesImpl) Match(ctx context.Context, callerUserID uuid.UUID, pastedText string) (*MatchResult, error) {
	text := strings.TrimSpace(pastedText)
	if text == "" {
		return nil, ErrEmptyListingText
	}
	text = truncateUTF8(text, maxPastedTextLength)

	hints := ExtractListingHints(text)
	props, err := q.properties.ListByOwner(ctx, callerUserID)
	if err != nil {
		return nil, err
	}

	candidates := make([]*MatchCandidate, 0, len(props))
	for _, p := range props {
		score := scoreProperty(hints, p)
		candidates = append(candidates, &MatchCandidate{
			PropertyID:  p.ID,
			Name:        p.Name,
			Score:       score,
			AutoMatch:   score >= q.threshold,
			GuestsMatch: hints.Guests != nil && *hints.Guests == p.MaxGuests,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Name < candidates[j].Name
	})

	return &MatchResult{
		Hints:      hints,
		Threshold:  q.threshold,
		Candidates: candidates,
	}, nil
}

// ExtractListingHints prefers labelled lines and falls back to the first
// non-empty line for the title.
func ExtractListingHints(text string) ListingHints {
	var hints ListingHints

	if m := titleLabelRe.FindStringSubmatch(text); m != nil {
		hints.Title = strings.TrimSpace(m[1])
	} else {
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				hints.Title = line
				break
			}
		}
	}

	if m := addressLabelRe.FindStringSubmatch(text); m != nil {
		addr := strings.TrimSpace(m[1])
		if addr != "" {
			hints.Address = &addr
		}
	}

	if m := guestsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			hints.Guests = &n
		}
	}

	return hints
}

func scoreProperty(hints ListingHints, p *PropertyView) float64 {
	nameScore := similarity.Dice(hints.Title, p.Name)
	if hints.Address == nil || p.Address == nil {
		return nameScore
	}
	combined := (1-addressWeight)*nameScore + addressWeight*similarity.Dice(*hints.Address, *p.Address)
	return max(nameScore, combined)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

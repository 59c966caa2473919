//go:build unit

package queries_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingMatchTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockPropertyReadStore
	matcher queries.ListingMatchQueries
	owner   uuid.UUID
}

func (s *ListingMatchTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockPropertyReadStore(s.ctrl)
	s.matcher = queries.NewListingMatchQueries(s.store, config.ImportConfig{MatchThreshold: 0.85})
	s.owner = uuid.New()
}

func (s *ListingMatchTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestListingMatchTestSuite(t *testing.T) {
	suite.Run(t, new(ListingMatchTestSuite))
}

func (s *ListingMatchTestSuite) TestExactTitleIsAutoMatched() {
	seaView := &queries.PropertyView{ID: uuid.New(), OwnerID: s.owner, Name: "Sea View Loft", MaxGuests: 4}
	cabin := &queries.PropertyView{ID: uuid.New(), OwnerID: s.owner, Name: "Mountain Cabin", MaxGuests: 2}
	s.store.EXPECT().ListByOwner(gomock.Any(), s.owner).Return([]*queries.PropertyView{cabin, seaView}, nil)

	result, err := s.matcher.Match(context.Background(), s.owner, "Title: Sea View Loft!\nGreat place for 4 guests")

	s.Require().NoError(err)
	s.Equal("Sea View Loft!", result.Hints.Title)
	s.Require().NotNil(result.Hints.Guests)
	s.Equal(4, *result.Hints.Guests)
	s.Require().Len(result.Candidates, 2)
	s.Equal(seaView.ID, result.Candidates[0].PropertyID)
	s.True(result.Candidates[0].AutoMatch)
	s.True(result.Candidates[0].GuestsMatch)
	s.False(result.Candidates[1].AutoMatch)
	s.Equal(0.85, result.Threshold)
}

func (s *ListingMatchTestSuite) TestLooseMatchStaysBelowThreshold() {
	p := &queries.PropertyView{ID: uuid.New(), OwnerID: s.owner, Name: "Sea View Loft"}
	s.store.EXPECT().ListByOwner(gomock.Any(), s.owner).Return([]*queries.PropertyView{p}, nil)

	result, err := s.matcher.Match(context.Background(), s.owner, "Cozy downtown studio")

	s.Require().NoError(err)
	s.Require().Len(result.Candidates, 1)
	s.False(result.Candidates[0].AutoMatch)
	s.Less(result.Candidates[0].Score, 0.85)
}

func (s *ListingMatchTestSuite) TestNoPropertiesYieldsEmptyCandidates() {
	s.store.EXPECT().ListByOwner(gomock.Any(), s.owner).Return([]*queries.PropertyView{}, nil)

	result, err := s.matcher.Match(context.Background(), s.owner, "anything")

	s.Require().NoError(err)
	s.NotNil(result.Candidates)
	s.Empty(result.Candidates)
}

func (s *ListingMatchTestSuite) TestEmptyTextIsRejected() {
	_, err := s.matcher.Match(context.Background(), s.owner, "   ")

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrInvalidInput))
}

func (s *ListingMatchTestSuite) TestOversizedTextIsCutOnRuneBoundary() {
	s.store.EXPECT().ListByOwner(gomock.Any(), s.owner).Return([]*queries.PropertyView{}, nil)

	// 7 ASCII bytes then two-byte runes, so a plain byte cut would land mid-rune.
	text := "Title: " + strings.Repeat("é", 10000)

	result, err := s.matcher.Match(context.Background(), s.owner, text)

	s.Require().NoError(err)
	s.True(utf8.ValidString(result.Hints.Title))
	s.True(strings.HasPrefix(result.Hints.Title, "ééé"))
	s.LessOrEqual(len(result.Hints.Title), 20000-len("Title: "))
}

func TestExtractListingHints(t *testing.T) {
	t.Run("ラベル付き行を優先", func(t *testing.T) {
		hints := queries.ExtractListingHints("Entire home\nTítulo: Casa del Mar\nDirección: Calle 5, Cádiz\n6 huéspedes")
		assert.Equal(t, "Casa del Mar", hints.Title)
		require.NotNil(t, hints.Address)
		assert.Equal(t, "Calle 5, Cádiz", *hints.Address)
		require.NotNil(t, hints.Guests)
		assert.Equal(t, 6, *hints.Guests)
	})

	t.Run("ラベルなしは最初の行", func(t *testing.T) {
		hints := queries.ExtractListingHints("\n\n  Garden Flat  \nsleeps many")
		assert.Equal(t, "Garden Flat", hints.Title)
		assert.Nil(t, hints.Address)
		assert.Nil(t, hints.Guests)
	})
}

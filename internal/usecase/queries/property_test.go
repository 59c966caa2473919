//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockPropertyReadStore
	queries queries.PropertyQueries
	owner   uuid.UUID
	view    *queries.PropertyView
}

func (s *PropertyQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockPropertyReadStore(s.ctrl)
	s.queries = queries.NewPropertyQueries(s.store)
	s.owner = uuid.New()
	s.view = builder.NewPropertyBuilder().WithOwner(s.owner).BuildView()
}

func (s *PropertyQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPropertyQueriesSuite(t *testing.T) {
	suite.Run(t, new(PropertyQueriesTestSuite))
}

func (s *PropertyQueriesTestSuite) notFound() error {
	return infra.WrapRepoErr("failed to find property", pgx.ErrNoRows, infra.KindNotFound)
}

func (s *PropertyQueriesTestSuite) TestGetProperty() {
	ctx := context.Background()

	s.Run("owner gets the view", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.view.ID).Return(s.view, nil)

		got, err := s.queries.GetProperty(ctx, s.owner, s.view.ID)

		s.Require().NoError(err)
		s.Equal(s.view, got)
	})

	s.Run("他人の物件はForbidden", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.view.ID).Return(s.view, nil)

		_, err := s.queries.GetProperty(ctx, uuid.New(), s.view.ID)

		s.Require().ErrorIs(err, queries.ErrPropertyAccess)
	})

	s.Run("存在しない物件はNotFound", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, s.notFound())

		_, err := s.queries.GetProperty(ctx, s.owner, id)

		s.Require().ErrorIs(err, queries.ErrPropertyNotFound)
	})
}

func (s *PropertyQueriesTestSuite) TestResolveProperty() {
	ctx := context.Background()

	s.Run("returns id and owner regardless of caller", func() {
		s.store.EXPECT().FindByID(gomock.Any(), s.view.ID).Return(s.view, nil)

		ref, err := s.queries.ResolveProperty(ctx, s.view.ID)

		s.Require().NoError(err)
		s.Equal(queries.PropertyRef{ID: s.view.ID, OwnerID: s.owner}, *ref)
	})

	s.Run("missing property", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, s.notFound())

		ref, err := s.queries.ResolveProperty(ctx, id)

		s.Nil(ref)
		s.Require().ErrorIs(err, queries.ErrPropertyNotFound)
	})
}

func (s *PropertyQueriesTestSuite) TestListProperties() {
	s.store.EXPECT().ListByOwner(gomock.Any(), s.owner).Return([]*queries.PropertyView{s.view}, nil)

	got, err := s.queries.ListProperties(context.Background(), s.owner)

	s.Require().NoError(err)
	s.Len(got, 1)
}

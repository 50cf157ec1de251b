package investigator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/testutils"
)

const testPlayerID = "player_456"

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    investigator.Repository
	clock   *clock.Fixed
	ctx     context.Context
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	repo, err := investigator.NewRedis(&investigator.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := investigator.NewRedis(&investigator.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = investigator.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	inv := testutils.CreateTestInvestigator(testPlayerID)
	inv.CreatedAt = 0

	saved, err := s.repo.Save(s.ctx, investigator.SaveInput{Investigator: inv})
	s.Require().NoError(err)
	s.Assert().Equal(s.clock.Now().Unix(), saved.Investigator.CreatedAt)
	s.Assert().Equal(s.clock.Now().Unix(), saved.Investigator.UpdatedAt)

	got, err := s.repo.Get(s.ctx, investigator.GetInput{ID: testPlayerID})
	s.Require().NoError(err)
	s.Assert().Equal(inv.Name, got.Investigator.Name)
	s.Assert().Equal(inv.Skills, got.Investigator.Skills)
	s.Assert().Equal(entities.PocketKnifeID, got.Investigator.EquippedID(entities.SlotMelee))
	s.Assert().True(got.Investigator.HasItem(entities.PocketKnifeID))
	s.Assert().True(got.Investigator.Alive)
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesAndKeepsCreatedAt() {
	inv := testutils.CreateTestInvestigator(testPlayerID)
	first, err := s.repo.Save(s.ctx, investigator.SaveInput{Investigator: inv})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	inv.HP = 3
	inv.Day = 4
	second, err := s.repo.Save(s.ctx, investigator.SaveInput{Investigator: inv})
	s.Require().NoError(err)
	s.Assert().Equal(first.Investigator.CreatedAt, second.Investigator.CreatedAt)
	s.Assert().Greater(second.Investigator.UpdatedAt, first.Investigator.UpdatedAt)

	got, err := s.repo.Get(s.ctx, investigator.GetInput{ID: testPlayerID})
	s.Require().NoError(err)
	s.Assert().Equal(3, got.Investigator.HP)
	s.Assert().Equal(4, got.Investigator.Day)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, investigator.GetInput{ID: "nobody"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		run  func() error
	}{
		{name: "get without id", run: func() error {
			_, err := s.repo.Get(s.ctx, investigator.GetInput{})
			return err
		}},
		{name: "save nil", run: func() error {
			_, err := s.repo.Save(s.ctx, investigator.SaveInput{})
			return err
		}},
		{name: "save without id", run: func() error {
			_, err := s.repo.Save(s.ctx, investigator.SaveInput{Investigator: &entities.Investigator{}})
			return err
		}},
		{name: "delete without id", run: func() error {
			_, err := s.repo.Delete(s.ctx, investigator.DeleteInput{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().True(errors.IsInvalidArgument(tc.run()))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, investigator.SaveInput{Investigator: testutils.CreateTestInvestigator(testPlayerID)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, investigator.DeleteInput{ID: testPlayerID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, investigator.GetInput{ID: testPlayerID})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, investigator.DeleteInput{ID: testPlayerID})
	s.Assert().True(errors.IsNotFound(err))
}

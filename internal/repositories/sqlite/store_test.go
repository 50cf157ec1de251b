package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/sqlite"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet"
	"github.com/KirkDiggler/rpg-storyteller/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	store *sqlite.Store
	path  string
	clock *clock.Fixed
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	s.path = filepath.Join(s.T().TempDir(), "storyteller.db")

	store, err := sqlite.Open(s.ctx, &sqlite.Config{Path: s.path, Clock: s.clock})
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreTestSuite) TestOpenRequiresPath() {
	_, err := sqlite.Open(s.ctx, &sqlite.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestInvestigatorRoundTrip() {
	inv := testutils.CreateTestInvestigator("p1")
	inv.CreatedAt = 0

	saved, err := s.store.Save(s.ctx, investigator.SaveInput{Investigator: inv})
	s.Require().NoError(err)
	s.Assert().Equal(s.clock.Now().Unix(), saved.Investigator.CreatedAt)

	got, err := s.store.Get(s.ctx, investigator.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Assert().Equal(inv.Skills, got.Investigator.Skills)
	s.Assert().Equal(inv.Attributes, got.Investigator.Attributes)
	s.Assert().Equal(inv.Inventory, got.Investigator.Inventory)

	inv.HP = 1
	s.clock.Advance(time.Minute)
	_, err = s.store.Save(s.ctx, investigator.SaveInput{Investigator: inv})
	s.Require().NoError(err)

	got, err = s.store.Get(s.ctx, investigator.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Assert().Equal(1, got.Investigator.HP)

	_, err = s.store.Delete(s.ctx, investigator.DeleteInput{ID: "p1"})
	s.Require().NoError(err)
	_, err = s.store.Get(s.ctx, investigator.GetInput{ID: "p1"})
	s.Assert().True(errors.IsNotFound(err))
	_, err = s.store.Delete(s.ctx, investigator.DeleteInput{ID: "p1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestDataSurvivesReopen() {
	_, err := s.store.Save(s.ctx, investigator.SaveInput{Investigator: testutils.CreateTestInvestigator("p1")})
	s.Require().NoError(err)
	_, err = s.store.Credit(s.ctx, wallet.CreditInput{PlayerID: "p1", Amount: 9})
	s.Require().NoError(err)
	s.Require().NoError(s.store.Close())

	// reopening skips migrations that already ran
	s.store, err = sqlite.Open(s.ctx, &sqlite.Config{Path: s.path, Clock: s.clock})
	s.Require().NoError(err)

	_, err = s.store.Get(s.ctx, investigator.GetInput{ID: "p1"})
	s.Require().NoError(err)
	out, err := s.store.Balance(s.ctx, wallet.BalanceInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Assert().Equal(9, out.Gold)
}

func (s *StoreTestSuite) TestWallet() {
	out, err := s.store.Balance(s.ctx, wallet.BalanceInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Assert().Zero(out.Gold)

	credit, err := s.store.Credit(s.ctx, wallet.CreditInput{PlayerID: "p1", Amount: 8})
	s.Require().NoError(err)
	s.Assert().Equal(8, credit.Gold)
	credit, err = s.store.Credit(s.ctx, wallet.CreditInput{PlayerID: "p1", Amount: 4})
	s.Require().NoError(err)
	s.Assert().Equal(12, credit.Gold)

	debit, err := s.store.Debit(s.ctx, wallet.DebitInput{PlayerID: "p1", Amount: 12})
	s.Require().NoError(err)
	s.Assert().Zero(debit.Gold)

	_, err = s.store.Debit(s.ctx, wallet.DebitInput{PlayerID: "p1", Amount: 1})
	s.Assert().True(errors.HasReason(err, errors.ReasonInsufficientResource))

	_, err = s.store.Credit(s.ctx, wallet.CreditInput{PlayerID: "p1", Amount: -2})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestConcurrentDebitsNeverOverdraw() {
	_, err := s.store.Credit(s.ctx, wallet.CreditInput{PlayerID: "p1", Amount: 5})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.store.Debit(s.ctx, wallet.DebitInput{PlayerID: "p1", Amount: 1}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Assert().Equal(5, succeeded)
}

func (s *StoreTestSuite) TestDailyShop() {
	first := &entities.DailyShop{Date: "2026-03-14", Offers: []entities.ShopOffer{{ItemID: "102", Name: "棒球棍", Price: 15}}}
	second := &entities.DailyShop{Date: "2026-03-14", Offers: []entities.ShopOffer{{ItemID: "301", Name: "皮夹克", Price: 15}}}

	_, err := s.store.GetShop(s.ctx, daily.GetShopInput{Date: "2026-03-14"})
	s.Assert().True(errors.IsNotFound(err))

	out, err := s.store.SaveShop(s.ctx, daily.SaveShopInput{Shop: first})
	s.Require().NoError(err)
	s.Assert().True(out.Created)

	out, err = s.store.SaveShop(s.ctx, daily.SaveShopInput{Shop: second})
	s.Require().NoError(err)
	s.Assert().False(out.Created)
	s.Assert().Equal(first, out.Shop)

	got, err := s.store.GetShop(s.ctx, daily.GetShopInput{Date: "2026-03-14"})
	s.Require().NoError(err)
	s.Assert().Equal(first, got.Shop)
}

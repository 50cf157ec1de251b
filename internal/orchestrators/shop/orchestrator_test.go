package shop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-storyteller/internal/content"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/shop"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily"
	dailymock "github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily/mock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	investigatormock "github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator/mock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet"
	walletmock "github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet/mock"
	"github.com/KirkDiggler/rpg-storyteller/internal/testutils"
)

const (
	testPlayerID = "player_456"
	testDate     = "2026-10-18"
)

type fakeCatalog struct{}

func (fakeCatalog) Shop() content.ShopList {
	return content.ShopList{
		Tiers: []content.ShopTier{
			{Price: 15, Items: []string{"102", "301"}},
			{Price: 40, Items: []string{"201"}},
		},
		Fixed: map[string]int{"402": 8, "401": 5},
	}
}

func (fakeCatalog) EquipmentName(id string) string {
	names := map[string]string{
		"102": "棒球棍",
		"301": "防弹背心",
		"201": "左轮手枪",
		"401": "绷带",
		"402": "护身符",
	}
	if name, ok := names[id]; ok {
		return name
	}
	return content.UnknownEquipmentName
}

func testShop() *entities.DailyShop {
	return &entities.DailyShop{
		Date: testDate,
		Offers: []entities.ShopOffer{
			{ItemID: "102", Name: "棒球棍", Price: 15},
			{ItemID: "201", Name: "左轮手枪", Price: 40},
			{ItemID: "401", Name: "绷带", Price: 5},
		},
	}
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockDaily        *dailymock.MockRepository
	mockWallet       *walletmock.MockRepository
	mockInvestigator *investigatormock.MockRepository
	source           *testutils.ScriptedRoller
	orchestrator     shop.Service
	ctx              context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDaily = dailymock.NewMockRepository(s.ctrl)
	s.mockWallet = walletmock.NewMockRepository(s.ctrl)
	s.mockInvestigator = investigatormock.NewMockRepository(s.ctrl)
	s.source = testutils.NewScriptedRoller()
	s.ctx = context.Background()

	orch, err := shop.NewOrchestrator(&shop.Config{
		DailyRepo:        s.mockDaily,
		WalletRepo:       s.mockWallet,
		InvestigatorRepo: s.mockInvestigator,
		Catalog:          fakeCatalog{},
		Roller:           dice.NewRoller(s.source),
		Clock:            clock.NewFixed(time.Date(2026, 10, 18, 20, 30, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectStoredShop() {
	s.mockDaily.EXPECT().
		GetShop(s.ctx, daily.GetShopInput{Date: testDate}).
		Return(&daily.GetShopOutput{Shop: testShop()}, nil)
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := shop.NewOrchestrator(&shop.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestTodayReturnsStoredShop() {
	s.expectStoredShop()

	out, err := s.orchestrator.Today(s.ctx, &shop.TodayInput{})

	s.Require().NoError(err)
	s.Assert().Equal(testShop(), out.Shop)
	s.Assert().Zero(s.source.Calls())
}

func (s *OrchestratorTestSuite) TestTodayGeneratesOnce() {
	s.mockDaily.EXPECT().
		GetShop(s.ctx, daily.GetShopInput{Date: testDate}).
		Return(nil, errors.NotFound("no shop"))
	s.mockDaily.EXPECT().
		SaveShop(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in daily.SaveShopInput) (*daily.SaveShopOutput, error) {
			return &daily.SaveShopOutput{Shop: in.Shop, Created: true}, nil
		})

	// Second item of the 15 tier; the 40 tier has one item and draws nothing
	s.source.Push(2)

	out, err := s.orchestrator.Today(s.ctx, &shop.TodayInput{})

	s.Require().NoError(err)
	s.Assert().Equal(&entities.DailyShop{
		Date: testDate,
		Offers: []entities.ShopOffer{
			{ItemID: "301", Name: "防弹背心", Price: 15},
			{ItemID: "201", Name: "左轮手枪", Price: 40},
			{ItemID: "401", Name: "绷带", Price: 5},
			{ItemID: "402", Name: "护身符", Price: 8},
		},
	}, out.Shop)
	s.Assert().Equal(1, s.source.Calls())
}

func (s *OrchestratorTestSuite) TestTodayKeepsFirstWriter() {
	s.mockDaily.EXPECT().
		GetShop(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no shop"))
	s.mockDaily.EXPECT().
		SaveShop(s.ctx, gomock.Any()).
		Return(&daily.SaveShopOutput{Shop: testShop(), Created: false}, nil)
	s.source.Push(1)

	out, err := s.orchestrator.Today(s.ctx, &shop.TodayInput{})

	s.Require().NoError(err)
	s.Assert().Equal(testShop(), out.Shop)
}

func (s *OrchestratorTestSuite) TestTodayStorageFailure() {
	s.mockDaily.EXPECT().
		GetShop(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.Today(s.ctx, &shop.TodayInput{})

	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestBuy() {
	s.expectStoredShop()
	inv := testutils.CreateTestInvestigator(testPlayerID)
	s.mockInvestigator.EXPECT().
		Get(s.ctx, investigator.GetInput{ID: testPlayerID}).
		Return(&investigator.GetOutput{Investigator: inv}, nil)
	s.mockWallet.EXPECT().
		Debit(s.ctx, wallet.DebitInput{PlayerID: testPlayerID, Amount: 10}).
		Return(&wallet.DebitOutput{Gold: 7}, nil)
	s.mockInvestigator.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in investigator.SaveInput) (*investigator.SaveOutput, error) {
			return &investigator.SaveOutput{Investigator: in.Investigator}, nil
		})

	out, err := s.orchestrator.Buy(s.ctx, &shop.BuyInput{PlayerID: testPlayerID, ItemID: "401", Quantity: 2})

	s.Require().NoError(err)
	s.Assert().Equal(2, out.Quantity)
	s.Assert().Equal(7, out.Gold)
	s.Assert().Equal("绷带", out.Offer.Name)
	s.Assert().True(out.Investigator.HasItem("401"))
	s.Assert().Equal(entities.InventoryItem{ItemID: "401", Name: "绷带", Quantity: 2}, out.Investigator.Inventory[1])
}

func (s *OrchestratorTestSuite) TestBuyNotOffered() {
	s.expectStoredShop()

	_, err := s.orchestrator.Buy(s.ctx, &shop.BuyInput{PlayerID: testPlayerID, ItemID: "301"})

	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Contains(err.Error(), "该物品不在今日可售出的物品清单中哦~")
}

func (s *OrchestratorTestSuite) TestBuyInsufficientGold() {
	s.expectStoredShop()
	s.mockInvestigator.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&investigator.GetOutput{Investigator: testutils.CreateTestInvestigator(testPlayerID)}, nil)
	s.mockWallet.EXPECT().
		Debit(s.ctx, wallet.DebitInput{PlayerID: testPlayerID, Amount: 40}).
		Return(nil, errors.InsufficientResourcef("余额不足，当前只有 %d 乌帕", 12))

	_, err := s.orchestrator.Buy(s.ctx, &shop.BuyInput{PlayerID: testPlayerID, ItemID: "201"})

	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().True(errors.HasReason(err, errors.ReasonInsufficientResource))
	s.Assert().Contains(err.Error(), "乌帕不足，购买失败。")
}

func (s *OrchestratorTestSuite) TestBuyRefundsWhenSaveFails() {
	s.expectStoredShop()
	s.mockInvestigator.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&investigator.GetOutput{Investigator: testutils.CreateTestInvestigator(testPlayerID)}, nil)
	s.mockWallet.EXPECT().
		Debit(s.ctx, wallet.DebitInput{PlayerID: testPlayerID, Amount: 15}).
		Return(&wallet.DebitOutput{Gold: 0}, nil)
	s.mockInvestigator.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))
	s.mockWallet.EXPECT().
		Credit(s.ctx, wallet.CreditInput{PlayerID: testPlayerID, Amount: 15}).
		Return(&wallet.CreditOutput{Gold: 15}, nil)

	_, err := s.orchestrator.Buy(s.ctx, &shop.BuyInput{PlayerID: testPlayerID, ItemID: "102"})

	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestBuyValidation() {
	testCases := []struct {
		name  string
		input *shop.BuyInput
	}{
		{"nil input", nil},
		{"missing player", &shop.BuyInput{ItemID: "102"}},
		{"missing item", &shop.BuyInput{PlayerID: testPlayerID}},
		{"negative quantity", &shop.BuyInput{PlayerID: testPlayerID, ItemID: "102", Quantity: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Buy(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestBalance() {
	s.mockWallet.EXPECT().
		Balance(s.ctx, wallet.BalanceInput{PlayerID: testPlayerID}).
		Return(&wallet.BalanceOutput{Gold: 23}, nil)

	out, err := s.orchestrator.Balance(s.ctx, &shop.BalanceInput{PlayerID: testPlayerID})

	s.Require().NoError(err)
	s.Assert().Equal(23, out.Gold)
}

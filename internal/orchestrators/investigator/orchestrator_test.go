package investigator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/investigator"
	investigatorrepo "github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	investigatorrepomock "github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator/mock"
	"github.com/KirkDiggler/rpg-storyteller/internal/testutils"
)

const testPlayerID = "player_456"

type fakeCatalog struct {
	items map[string]*entities.Equipment
}

func (c *fakeCatalog) Equipment(id string) (*entities.Equipment, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, errors.ContentNotFoundf("equipment %s not found", id)
	}
	out := *item
	return &out, nil
}

func (c *fakeCatalog) EquipmentName(id string) string {
	if item, ok := c.items[id]; ok {
		return item.Name
	}
	return "未知装备"
}

// candidateFaces rolls one candidate:
// 力量45 体质60 体型60 敏捷75 外貌30 智力60 意志60 教育70 幸运15
func candidateFaces() []int {
	return []int{
		3, 3, 3,
		4, 4, 4,
		3, 3,
		5, 5, 5,
		2, 2, 2,
		4, 4, 4,
		3, 4, 5,
		4, 4,
		1, 1, 1,
	}
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *investigatorrepomock.MockRepository
	source       *testutils.ScriptedRoller
	orchestrator investigator.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = investigatorrepomock.NewMockRepository(s.ctrl)
	s.source = testutils.NewScriptedRoller()
	s.ctx = context.Background()

	catalog := &fakeCatalog{items: map[string]*entities.Equipment{
		"101": {ID: "101", Name: "弹簧折刀", Damage: "1d4", Slot: entities.SlotMelee, Actions: []string{entities.ActionFight}},
		"102": {ID: "102", Name: "棒球棍", Damage: "1d8", Slot: entities.SlotMelee, Breakable: true, Actions: []string{entities.ActionFight}},
		"201": {ID: "201", Name: "左轮手枪", Damage: "1d10", Slot: entities.SlotRanged, Ammo: 6, Actions: []string{entities.ActionShoot}},
		"401": {ID: "401", Name: "绷带"},
	}}

	orch, err := investigator.NewOrchestrator(&investigator.Config{
		Repository: s.mockRepo,
		Catalog:    catalog,
		Roller:     dice.NewRoller(s.source),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) chooseFirst() {
	s.source.Push(candidateFaces()...)
	_, err := s.orchestrator.CreateCandidates(s.ctx, &investigator.CreateCandidatesInput{PlayerID: testPlayerID, Count: 1})
	s.Require().NoError(err)
	_, err = s.orchestrator.ChooseCandidate(s.ctx, &investigator.ChooseCandidateInput{PlayerID: testPlayerID, Index: 1})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := investigator.NewOrchestrator(&investigator.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "invalid config")

	_, err = investigator.NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCandidates() {
	s.source.Push(candidateFaces()...)

	out, err := s.orchestrator.CreateCandidates(s.ctx, &investigator.CreateCandidatesInput{
		PlayerID: testPlayerID,
		Count:    1,
	})

	s.Require().NoError(err)
	s.Require().Len(out.Candidates, 1)
	c := out.Candidates[0]
	s.Assert().Equal(map[string]int{
		entities.AttrStrength:     45,
		entities.AttrConstitution: 60,
		entities.AttrSize:         60,
		entities.AttrDexterity:    75,
		entities.AttrAppearance:   30,
		entities.AttrIntelligence: 60,
		entities.AttrPower:        60,
		entities.AttrEducation:    70,
		entities.AttrLuck:         15,
	}, c.Attributes)
	s.Assert().Equal(475, c.Total)
	s.Assert().Equal(60, c.SAN)
	s.Assert().Equal(12, c.HP)
	s.Assert().Equal("0", c.DamageBonus)
	s.Assert().Equal(37, c.Skills[entities.SkillDodge])
	s.Assert().Equal(20, c.Skills[entities.SkillHandgun])
	s.Assert().Equal(1, c.Skills[entities.SkillMedicine])
	s.Assert().Equal(130, c.SkillPoints())
	s.Assert().Zero(s.source.Remaining())
}

func (s *OrchestratorTestSuite) TestCreateCandidatesDefaultsToThree() {
	for i := 0; i < investigator.DefaultCandidateCount; i++ {
		s.source.Push(candidateFaces()...)
	}

	out, err := s.orchestrator.CreateCandidates(s.ctx, &investigator.CreateCandidatesInput{PlayerID: testPlayerID})

	s.Require().NoError(err)
	s.Assert().Len(out.Candidates, 3)
	s.Assert().Zero(s.source.Remaining())
}

func (s *OrchestratorTestSuite) TestCreateCandidatesValidation() {
	_, err := s.orchestrator.CreateCandidates(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateCandidates(s.ctx, &investigator.CreateCandidatesInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestChooseCandidate() {
	s.Run("without a draft", func() {
		_, err := s.orchestrator.ChooseCandidate(s.ctx, &investigator.ChooseCandidateInput{PlayerID: "nobody", Index: 1})
		s.Assert().True(errors.IsFailedPrecondition(err))
	})

	s.source.Push(candidateFaces()...)
	_, err := s.orchestrator.CreateCandidates(s.ctx, &investigator.CreateCandidatesInput{PlayerID: testPlayerID, Count: 1})
	s.Require().NoError(err)

	s.Run("index out of range", func() {
		for _, idx := range []int{0, 2, -1} {
			_, err := s.orchestrator.ChooseCandidate(s.ctx, &investigator.ChooseCandidateInput{PlayerID: testPlayerID, Index: idx})
			s.Assert().True(errors.IsInvalidArgument(err), "index %d", idx)
		}
	})

	s.Run("valid index", func() {
		out, err := s.orchestrator.ChooseCandidate(s.ctx, &investigator.ChooseCandidateInput{PlayerID: testPlayerID, Index: 1})
		s.Require().NoError(err)
		s.Assert().Equal(130, out.SkillPoints)
		s.Assert().Equal(475, out.Candidate.Total)
	})
}

func (s *OrchestratorTestSuite) TestAllocateSkills() {
	s.chooseFirst()

	s.mockRepo.EXPECT().
		Delete(s.ctx, investigatorrepo.DeleteInput{ID: testPlayerID}).
		Return(nil, errors.NotFound("investigator not found"))

	var saved *entities.Investigator
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in investigatorrepo.SaveInput) (*investigatorrepo.SaveOutput, error) {
			saved = in.Investigator
			return &investigatorrepo.SaveOutput{Investigator: in.Investigator}, nil
		})

	out, err := s.orchestrator.AllocateSkills(s.ctx, &investigator.AllocateSkillsInput{
		PlayerID:   testPlayerID,
		Allocation: "手枪40 格斗50 侦查40",
	})

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Assert().Same(saved, out.Investigator)
	s.Assert().Equal(testPlayerID, saved.ID)
	s.Assert().Equal(entities.DefaultInvestigator, saved.Name)
	s.Assert().Equal(60, saved.Skill(entities.SkillHandgun, 0))
	s.Assert().Equal(75, saved.Skill(entities.SkillFighting, 0))
	s.Assert().Equal(65, saved.Skill(entities.SkillSpot, 0))
	s.Assert().Equal(25, saved.Skill(entities.SkillRifle, 0))
	s.Assert().Equal(12, saved.HP)
	s.Assert().Equal(60, saved.SAN)
	s.Assert().True(saved.Alive)
	s.Assert().Equal(1, saved.Day)
	s.Assert().True(saved.Ready())
	s.Assert().Equal(entities.PocketKnifeID, saved.EquippedID(entities.SlotMelee))
	s.Assert().Equal([]entities.InventoryItem{{ItemID: "101", Name: "弹簧折刀", Quantity: 1}}, saved.Inventory)

	// The draft is consumed
	_, err = s.orchestrator.AllocateSkills(s.ctx, &investigator.AllocateSkillsInput{
		PlayerID:   testPlayerID,
		Allocation: "手枪130",
	})
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAllocateSkillsRepeatedSkillIsSummed() {
	s.chooseFirst()

	s.mockRepo.EXPECT().Delete(s.ctx, gomock.Any()).Return(&investigatorrepo.DeleteOutput{}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in investigatorrepo.SaveInput) (*investigatorrepo.SaveOutput, error) {
			return &investigatorrepo.SaveOutput{Investigator: in.Investigator}, nil
		})

	out, err := s.orchestrator.AllocateSkills(s.ctx, &investigator.AllocateSkillsInput{
		PlayerID:   testPlayerID,
		Name:       testutils.TestInvestigatorName,
		Allocation: "手枪20手枪20急救45聆听45",
	})

	s.Require().NoError(err)
	s.Assert().Equal(testutils.TestInvestigatorName, out.Investigator.Name)
	s.Assert().Equal(60, out.Investigator.Skill(entities.SkillHandgun, 0))
	s.Assert().Equal(75, out.Investigator.Skill(entities.SkillFirstAid, 0))
	s.Assert().Equal(65, out.Investigator.Skill(entities.SkillListen, 0))
}

func (s *OrchestratorTestSuite) TestAllocateSkillsRejects() {
	s.chooseFirst()

	testCases := []struct {
		name       string
		allocation string
		message    string
	}{
		{"empty", "", "技能设置错误了哦~"},
		{"missing points", "手枪", "技能设置错误了哦~"},
		{"points first", "30手枪100", "技能设置错误了哦~"},
		{"too few", "手枪10", "当前总点数过少了哦~"},
		{"too many", "手枪100格斗100", "当前总点数过多了哦~"},
		{"above cap", "手枪50格斗80", "当前技能格斗点数高于了75哦~"},
		{"unknown skill", "克苏鲁神话130", "不存在技能克苏鲁神话~"},
		{"attributes are not skills", "力量130", "不存在技能力量~"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.AllocateSkills(s.ctx, &investigator.AllocateSkillsInput{
				PlayerID:   testPlayerID,
				Allocation: tc.allocation,
			})
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.message)
		})
	}
}

func (s *OrchestratorTestSuite) TestAllocateSkillsWithoutChoice() {
	_, err := s.orchestrator.AllocateSkills(s.ctx, &investigator.AllocateSkillsInput{
		PlayerID:   testPlayerID,
		Allocation: "手枪130",
	})
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAllocateSkillsKeepsDraftWhenSaveFails() {
	s.chooseFirst()

	s.mockRepo.EXPECT().Delete(s.ctx, gomock.Any()).Return(&investigatorrepo.DeleteOutput{}, nil).Times(2)
	s.mockRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in investigatorrepo.SaveInput) (*investigatorrepo.SaveOutput, error) {
			return &investigatorrepo.SaveOutput{Investigator: in.Investigator}, nil
		})

	input := &investigator.AllocateSkillsInput{PlayerID: testPlayerID, Allocation: "侦查50格斗50手枪30"}

	_, err := s.orchestrator.AllocateSkills(s.ctx, input)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))

	_, err = s.orchestrator.AllocateSkills(s.ctx, input)
	s.Assert().NoError(err)
}

func (s *OrchestratorTestSuite) TestGet() {
	inv := testutils.CreateTestInvestigator(testPlayerID)
	s.mockRepo.EXPECT().
		Get(s.ctx, investigatorrepo.GetInput{ID: testPlayerID}).
		Return(&investigatorrepo.GetOutput{Investigator: inv}, nil)

	out, err := s.orchestrator.Get(s.ctx, &investigator.GetInput{PlayerID: testPlayerID})

	s.Require().NoError(err)
	s.Assert().Equal(inv, out.Investigator)
}

func (s *OrchestratorTestSuite) TestGetNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, investigatorrepo.GetInput{ID: testPlayerID}).
		Return(nil, errors.NotFoundf("investigator %s not found", testPlayerID))

	_, err := s.orchestrator.Get(s.ctx, &investigator.GetInput{PlayerID: testPlayerID})

	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Contains(err.Error(), "failed to get investigator")
}

func (s *OrchestratorTestSuite) TestEquip() {
	inv := testutils.CreateTestInvestigator(testPlayerID)
	inv.AddItem("102", "棒球棍", 1)

	s.mockRepo.EXPECT().
		Get(s.ctx, investigatorrepo.GetInput{ID: testPlayerID}).
		Return(&investigatorrepo.GetOutput{Investigator: inv}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in investigatorrepo.SaveInput) (*investigatorrepo.SaveOutput, error) {
			return &investigatorrepo.SaveOutput{Investigator: in.Investigator}, nil
		})

	out, err := s.orchestrator.Equip(s.ctx, &investigator.EquipInput{PlayerID: testPlayerID, ItemID: "102"})

	s.Require().NoError(err)
	s.Assert().Equal("102", out.Investigator.EquippedID(entities.SlotMelee))
	s.Assert().Equal(entities.PocketKnifeID, out.Replaced)
	s.Assert().Equal("棒球棍", out.Item.Name)
}

func (s *OrchestratorTestSuite) TestEquipRejects() {
	testCases := []struct {
		name   string
		itemID string
		check  func(error) bool
	}{
		{"not carried", "201", errors.IsNotFound},
		{"not equippable", "401", errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			inv := testutils.CreateTestInvestigator(testPlayerID)
			inv.AddItem("401", "绷带", 2)
			s.mockRepo.EXPECT().
				Get(s.ctx, investigatorrepo.GetInput{ID: testPlayerID}).
				Return(&investigatorrepo.GetOutput{Investigator: inv}, nil)

			_, err := s.orchestrator.Equip(s.ctx, &investigator.EquipInput{PlayerID: testPlayerID, ItemID: tc.itemID})
			s.Require().Error(err)
			s.Assert().True(tc.check(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestInventory() {
	inv := testutils.CreateTestInvestigator(testPlayerID)
	inv.AddItem("201", "", 1)

	s.mockRepo.EXPECT().
		Get(s.ctx, investigatorrepo.GetInput{ID: testPlayerID}).
		Return(&investigatorrepo.GetOutput{Investigator: inv}, nil)

	out, err := s.orchestrator.Inventory(s.ctx, &investigator.InventoryInput{PlayerID: testPlayerID})

	s.Require().NoError(err)
	s.Assert().Equal([]investigator.InventoryEntry{
		{ItemID: "101", Name: "弹簧折刀", Quantity: 1, Equipped: true},
		{ItemID: "201", Name: "左轮手枪", Quantity: 1},
	}, out.Items)
}

func (s *OrchestratorTestSuite) TestItemDetails() {
	out, err := s.orchestrator.ItemDetails(s.ctx, &investigator.ItemDetailsInput{ItemID: "201"})
	s.Require().NoError(err)
	s.Assert().Equal("1d10", out.Item.Damage)

	_, err = s.orchestrator.ItemDetails(s.ctx, &investigator.ItemDetailsInput{ItemID: "999"})
	s.Assert().True(errors.HasReason(err, errors.ReasonContentLookup))
}

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

type InvestigatorTestSuite struct {
	suite.Suite
	inv *entities.Investigator
}

func TestInvestigatorSuite(t *testing.T) {
	suite.Run(t, new(InvestigatorTestSuite))
}

func (s *InvestigatorTestSuite) SetupTest() {
	s.inv = &entities.Investigator{
		ID:     "player-1",
		Name:   "阿卡姆",
		Skills: map[string]int{entities.SkillFighting: 40},
		HP:     12,
		Alive:  true,
	}
}

func (s *InvestigatorTestSuite) TestSkillDefaults() {
	s.Assert().Equal(40, s.inv.Skill(entities.SkillFighting, 25))
	s.Assert().Equal(25, s.inv.Skill(entities.SkillDodge, 25))
	s.Assert().False(s.inv.HasSkill(entities.SkillDodge))

	s.inv.SetSkill(entities.SkillDodge, 30)
	s.Assert().True(s.inv.HasSkill(entities.SkillDodge))
	s.Assert().Equal([]string{entities.SkillDodge, entities.SkillFighting}, s.inv.SkillNames())
}

func (s *InvestigatorTestSuite) TestEquipment() {
	s.Assert().Empty(s.inv.EquippedID(entities.SlotMelee))

	s.inv.Equip(entities.SlotMelee, entities.PocketKnifeID)
	s.Assert().Equal(entities.PocketKnifeID, s.inv.EquippedID(entities.SlotMelee))

	s.Assert().Equal(entities.PocketKnifeID, s.inv.Unequip(entities.SlotMelee))
	s.Assert().Empty(s.inv.EquippedID(entities.SlotMelee))
	s.Assert().Empty(s.inv.Unequip(entities.SlotMelee))
}

func (s *InvestigatorTestSuite) TestInventory() {
	s.inv.AddItem("201", "左轮手枪", 1)
	s.inv.AddItem("201", "左轮手枪", 2)
	s.inv.AddItem("301", "皮夹克", 0)

	s.Require().Len(s.inv.Inventory, 1)
	s.Assert().Equal(3, s.inv.Inventory[0].Quantity)
	s.Assert().False(s.inv.HasItem("301"))

	s.Assert().True(s.inv.RemoveItem("201", 1))
	s.Assert().Equal(2, s.inv.Inventory[0].Quantity)
	s.Assert().True(s.inv.RemoveItem("201", 5))
	s.Assert().False(s.inv.HasItem("201"))
	s.Assert().False(s.inv.RemoveItem("201", 1))
}

func (s *InvestigatorTestSuite) TestCloneIsDeep() {
	s.inv.Equip(entities.SlotMelee, entities.PocketKnifeID)
	s.inv.AddItem(entities.PocketKnifeID, "弹簧折刀", 1)

	clone := s.inv.Clone()
	clone.SetSkill(entities.SkillFighting, 99)
	clone.Unequip(entities.SlotMelee)
	clone.Inventory[0].Quantity = 7

	s.Assert().Equal(40, s.inv.Skill(entities.SkillFighting, 0))
	s.Assert().Equal(entities.PocketKnifeID, s.inv.EquippedID(entities.SlotMelee))
	s.Assert().Equal(1, s.inv.Inventory[0].Quantity)
}

func (s *InvestigatorTestSuite) TestReady() {
	s.Assert().True(s.inv.Ready())
	s.inv.HP = 0
	s.Assert().False(s.inv.Ready())
}

func (s *InvestigatorTestSuite) TestSlotForAction() {
	testCases := []struct {
		action string
		slot   entities.Slot
		ok     bool
	}{
		{action: entities.ActionFight, slot: entities.SlotMelee, ok: true},
		{action: entities.ActionCounter, slot: entities.SlotMelee, ok: true},
		{action: entities.ActionChainsaw, slot: entities.SlotMelee, ok: true},
		{action: entities.ActionTripleShot, slot: entities.SlotRanged, ok: true},
		{action: entities.ActionReload, slot: entities.SlotRanged, ok: true},
		{action: entities.ActionEvade, ok: false},
	}

	for _, tc := range testCases {
		s.Run(tc.action, func() {
			slot, ok := entities.SlotForAction(tc.action)
			s.Assert().Equal(tc.ok, ok)
			s.Assert().Equal(tc.slot, slot)
		})
	}

	s.Assert().Equal(3, entities.ShotsFor(entities.ActionTripleShot))
	s.Assert().Equal(0, entities.ShotsFor(entities.ActionFight))
}

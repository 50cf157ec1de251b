package testutils

import (
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
)

// TestInvestigatorName is the default investigator name for fixtures
const TestInvestigatorName = "哈维·沃尔特斯"

// 2026-01-01T12:00:00Z
const testCreatedAt int64 = 1767268800

// CreateTestInvestigator returns a finished investigator carrying the
// starting pocket knife
func CreateTestInvestigator(playerID string) *entities.Investigator {
	return &entities.Investigator{
		ID:   playerID,
		Name: TestInvestigatorName,
		Attributes: map[string]int{
			entities.AttrStrength:     50,
			entities.AttrConstitution: 60,
			entities.AttrSize:         60,
			entities.AttrDexterity:    55,
			entities.AttrAppearance:   40,
			entities.AttrIntelligence: 70,
			entities.AttrPower:        50,
			entities.AttrEducation:    65,
			entities.AttrLuck:         45,
		},
		Skills: map[string]int{
			entities.SkillFighting: 50,
			entities.SkillHandgun:  40,
			entities.SkillDodge:    27,
			entities.SkillSpot:     45,
		},
		DamageBonus: "0",
		HP:          12,
		SAN:         50,
		Alive:       true,
		Day:         1,
		Equipped:    map[entities.Slot]string{entities.SlotMelee: entities.PocketKnifeID},
		Inventory: []entities.InventoryItem{
			{ItemID: entities.PocketKnifeID, Name: "弹簧折刀", Quantity: 1},
		},
		CreatedAt: testCreatedAt,
		UpdatedAt: testCreatedAt,
	}
}

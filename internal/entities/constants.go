package entities

// Slot is where an item is worn
type Slot string

// Equipment slots
const (
	SlotMelee  Slot = "近战"
	SlotRanged Slot = "远程"
	SlotArmor  Slot = "防具"
)

// Valid reports a known slot
func (s Slot) Valid() bool {
	switch s {
	case SlotMelee, SlotRanged, SlotArmor:
		return true
	}
	return false
}

// Attributes rolled at creation
const (
	AttrStrength     = "力量"
	AttrConstitution = "体质"
	AttrSize         = "体型"
	AttrDexterity    = "敏捷"
	AttrAppearance   = "外貌"
	AttrIntelligence = "智力"
	AttrPower        = "意志"
	AttrEducation    = "教育"
	AttrLuck         = "幸运"
)

// AttributeOrder lists attributes in display order
var AttributeOrder = []string{
	AttrStrength, AttrConstitution, AttrSize, AttrDexterity, AttrAppearance,
	AttrIntelligence, AttrPower, AttrEducation, AttrLuck,
}

// Skills
const (
	SkillHandgun  = "手枪"
	SkillRifle    = "步枪"
	SkillFighting = "格斗"
	SkillSpot     = "侦查"
	SkillFirstAid = "急救"
	SkillMedicine = "医学"
	SkillListen   = "聆听"
	SkillDodge    = "闪避"
)

// Actions
const (
	ActionFight      = "格斗"
	ActionAxe        = "斧"
	ActionSword      = "剑"
	ActionChainsaw   = "电锯"
	ActionShoot      = "射击"
	ActionDoubleShot = "二连射"
	ActionTripleShot = "三连射"
	ActionReload     = "换弹"
	ActionCounter    = "反击"
	ActionEvade      = "闪避"
)

// Defaults used when a rating is missing
const (
	DefaultMeleeSkill   = 25
	DefaultRangedSkill  = 20
	DefaultDodgeSkill   = 25
	DefaultSpotSkill    = 25
	DefaultAgility      = 25
	DefaultMaxGold      = 10
	MaxAllocatedSkill   = 75
	PocketKnifeID       = "101"
	FumbleSelfDamage    = "1d4"
	GrowthNotation      = "1d10"
	DefaultInvestigator = "调查员"
)

var actionSlots = map[string]Slot{
	ActionFight:      SlotMelee,
	ActionCounter:    SlotMelee,
	ActionAxe:        SlotMelee,
	ActionSword:      SlotMelee,
	ActionChainsaw:   SlotMelee,
	ActionShoot:      SlotRanged,
	ActionDoubleShot: SlotRanged,
	ActionTripleShot: SlotRanged,
	ActionReload:     SlotRanged,
}

// SlotForAction maps an action to the slot whose item performs it
func SlotForAction(action string) (Slot, bool) {
	slot, ok := actionSlots[action]
	return slot, ok
}

// ShotsFor returns how many rounds a ranged action fires
func ShotsFor(action string) int {
	switch action {
	case ActionShoot:
		return 1
	case ActionDoubleShot:
		return 2
	case ActionTripleShot:
		return 3
	default:
		return 0
	}
}

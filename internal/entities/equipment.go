package entities

// Equipment is a catalog item. Only items with a Damage notation can attack.
type Equipment struct {
	ID            string
	Name          string
	Damage        string
	IdentifySkill string
	Penetrating   bool
	Ammo          int
	Slot          Slot
	Armor         int
	Breakable     bool
	Actions       []string
	Reply         string
	Description   string
	Price         int
}

// IsWeapon reports whether the item deals damage
func (e *Equipment) IsWeapon() bool {
	return e.Damage != ""
}

// HasAction reports whether the item grants action
func (e *Equipment) HasAction(action string) bool {
	for _, a := range e.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Fists is the melee weapon of an empty hand
func Fists() *Equipment {
	return &Equipment{
		Name:          "拳头",
		Damage:        "1d3",
		IdentifySkill: SkillFighting,
		Slot:          SlotMelee,
		Actions:       []string{ActionFight},
		Reply:         "格斗",
	}
}

package entities

import "sort"

// Monster is a catalog foe
type Monster struct {
	ID       string
	Name     string
	HP       int
	Armor    int
	Agility  int
	Attacks  map[string]Attack
	Loot     *Loot
	Entrance string
	Ending   string
	// Damage flavor shown after the player hits
	HighDamage   string
	NormalDamage string
	LowDamage    string
	NoDamage     string
}

// Attack is one of a monster's moves and its narration
type Attack struct {
	Name               string
	Skill              int
	Damage             string
	Penetrating        bool
	Text               string
	SuccessText        string
	FailureText        string
	CounterText        string
	CounterFailureText string
}

// Loot is what a defeated monster may drop
type Loot struct {
	MaxGold int
	Items   []string
}

// AttackNames returns attack names sorted
func (m *Monster) AttackNames() []string {
	names := make([]string, 0, len(m.Attacks))
	for name := range m.Attacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package combat

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypeInvestigator = "investigator"
	EntityTypeMonster      = "monster"
)

// Catalog is the content a session reads during combat
type Catalog interface {
	Equipment(id string) (*entities.Equipment, error)
	Reply(key string) string
}

// Actor is one side of a fight
type Actor interface {
	core.Entity
	Name() string
	HP() int
	SetHP(hp int)
	MaxHP() int
	// Skill returns the named rating, or def when the actor has none
	Skill(name string, def int) int
	Armor() int
	// EquippedWeapon returns the item held in slot
	EquippedWeapon(slot entities.Slot) (*entities.Equipment, bool)
	// Actions lists what the actor may choose on its own turn
	Actions() []string
}

var (
	_ Actor = (*Player)(nil)
	_ Actor = (*MonsterActor)(nil)
)

// Player is the investigator side. It works on its own copy of the
// investigator so breakage and growth only reach storage when the caller
// saves the result.
type Player struct {
	inv      *entities.Investigator
	catalog  Catalog
	equipped map[entities.Slot]*entities.Equipment
	maxHP    int
}

// NewPlayer resolves every equipped item against the catalog. An item the
// catalog does not know is an error, never a guess.
func NewPlayer(inv *entities.Investigator, catalog Catalog) (*Player, error) {
	p := &Player{
		inv:      inv.Clone(),
		catalog:  catalog,
		equipped: make(map[entities.Slot]*entities.Equipment),
		maxHP:    inv.HP,
	}
	for slot, id := range p.inv.Equipped {
		if id == "" {
			continue
		}
		item, err := catalog.Equipment(id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load equipped %s", slot)
		}
		p.equipped[slot] = item
	}
	return p, nil
}

// GetID returns the investigator id
func (p *Player) GetID() string { return p.inv.ID }

// GetType returns the entity type
func (p *Player) GetType() string { return EntityTypeInvestigator }

// Name returns the investigator name
func (p *Player) Name() string { return p.inv.Name }

// HP returns current hit points
func (p *Player) HP() int { return p.inv.HP }

// SetHP sets hit points, never below zero
func (p *Player) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	p.inv.HP = hp
}

// MaxHP returns hit points at the start of the fight
func (p *Player) MaxHP() int { return p.maxHP }

// Skill looks up skills first, then attributes
func (p *Player) Skill(name string, def int) int {
	if p.inv.HasSkill(name) {
		return p.inv.Skill(name, def)
	}
	return p.inv.Attribute(name, def)
}

// Armor returns the worn armor rating
func (p *Player) Armor() int {
	if item, ok := p.equipped[entities.SlotArmor]; ok {
		return item.Armor
	}
	return 0
}

// EquippedWeapon returns the item held in slot
func (p *Player) EquippedWeapon(slot entities.Slot) (*entities.Equipment, bool) {
	item, ok := p.equipped[slot]
	return item, ok
}

// MeleeWeapon returns the melee weapon, or fists when the slot is empty
func (p *Player) MeleeWeapon() *entities.Equipment {
	if item, ok := p.equipped[entities.SlotMelee]; ok && item.IsWeapon() {
		return item
	}
	return entities.Fists()
}

// Break removes the item in slot from the hand and the pack
func (p *Player) Break(slot entities.Slot) (*entities.Equipment, bool) {
	item, ok := p.equipped[slot]
	if !ok {
		return nil, false
	}
	delete(p.equipped, slot)
	p.inv.Unequip(slot)
	p.inv.RemoveItem(item.ID, 1)
	return item, true
}

// Actions is the sorted union of every equipped item's actions. Unarmed
// fighting is offered whenever no melee weapon is held.
func (p *Player) Actions() []string {
	set := make(map[string]struct{})
	for _, item := range p.equipped {
		for _, a := range item.Actions {
			set[a] = struct{}{}
		}
	}
	if _, ok := p.equipped[entities.SlotMelee]; !ok {
		set[entities.ActionFight] = struct{}{}
	}

	actions := make([]string, 0, len(set))
	for a := range set {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}

// Investigator returns the working copy
func (p *Player) Investigator() *entities.Investigator {
	return p.inv
}

// MonsterActor is the monster side
type MonsterActor struct {
	mon *entities.Monster
	hp  int
}

// NewMonsterActor starts a monster at full health
func NewMonsterActor(mon *entities.Monster) *MonsterActor {
	return &MonsterActor{mon: mon, hp: mon.HP}
}

// GetID returns the monster id
func (m *MonsterActor) GetID() string { return m.mon.ID }

// GetType returns the entity type
func (m *MonsterActor) GetType() string { return EntityTypeMonster }

// Name returns the monster name
func (m *MonsterActor) Name() string { return m.mon.Name }

// HP returns current hit points
func (m *MonsterActor) HP() int { return m.hp }

// SetHP sets hit points, never below zero
func (m *MonsterActor) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	m.hp = hp
}

// MaxHP returns catalog hit points
func (m *MonsterActor) MaxHP() int { return m.mon.HP }

// Skill answers agility and attack ratings
func (m *MonsterActor) Skill(name string, def int) int {
	if name == entities.AttrDexterity {
		return m.mon.Agility
	}
	if attack, ok := m.mon.Attacks[name]; ok {
		return attack.Skill
	}
	return def
}

// Armor returns the monster's armor
func (m *MonsterActor) Armor() int { return m.mon.Armor }

// EquippedWeapon always reports nothing; monsters fight with attacks
func (m *MonsterActor) EquippedWeapon(entities.Slot) (*entities.Equipment, bool) {
	return nil, false
}

// Actions are the defenses the player picks during the monster's turn
func (m *MonsterActor) Actions() []string {
	return []string{entities.ActionCounter, entities.ActionEvade}
}

// Monster returns the catalog record
func (m *MonsterActor) Monster() *entities.Monster {
	return m.mon
}

// ChooseAttack picks one attack uniformly by sorted name
func (m *MonsterActor) ChooseAttack(roller *dice.Roller) (entities.Attack, error) {
	names := m.mon.AttackNames()
	if len(names) == 0 {
		return entities.Attack{}, errors.ContentNotFoundf("monster %s has no attacks", m.mon.ID)
	}
	idx, err := roller.Pick(len(names))
	if err != nil {
		return entities.Attack{}, errors.Wrap(err, "failed to choose attack")
	}
	return m.mon.Attacks[names[idx]], nil
}

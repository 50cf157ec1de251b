package content

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// validate rejects content that would let combat guess at a damage-affecting
// value: unparseable damage, missing skills, dangling ids.
func (c *Catalog) validate() error {
	vb := errors.NewValidationBuilder()

	for _, id := range sortedKeys(c.equipment) {
		item := c.equipment[id]
		field := "equipment." + id
		if item.Slot != "" && !item.Slot.Valid() {
			vb.Fieldf(field+".part", "unknown slot %q", item.Slot)
		}
		if item.IsWeapon() {
			validateNotation(field+".damage", item.Damage, vb)
			errors.ValidateRequired(field+".identify_skill", item.IdentifySkill, vb)
			if len(item.Actions) == 0 {
				vb.RequiredField(field + ".skill")
			}
		}
		if item.Armor < 0 {
			vb.Field(field+".armor", "must not be negative")
		}
		if item.Ammo < 0 {
			vb.Field(field+".bullet", "must not be negative")
		}
	}

	for _, id := range sortedKeys(c.monsters) {
		mon := c.monsters[id]
		field := "monsters." + id
		errors.ValidatePositive(field+".hp", mon.HP, vb)
		errors.ValidatePositive(field+".agility", mon.Agility, vb)
		if mon.Armor < 0 {
			vb.Field(field+".armor", "must not be negative")
		}
		if len(mon.Attacks) == 0 {
			vb.RequiredField(field + ".attacks")
		}
		for _, name := range mon.AttackNames() {
			attack := mon.Attacks[name]
			errors.ValidatePositive(field+".attacks."+name+".skill", attack.Skill, vb)
			validateNotation(field+".attacks."+name+".damage", attack.Damage, vb)
		}
		if mon.Loot != nil {
			for _, itemID := range mon.Loot.Items {
				if _, ok := c.equipment[itemID]; !ok {
					vb.Fieldf(field+".loot.items", "unknown item %s", itemID)
				}
			}
		}
	}

	if len(c.rosterDays) == 0 {
		vb.RequiredField("rosters")
	}
	for _, day := range c.rosterDays {
		field := fmt.Sprintf("rosters.%d", day)
		if len(c.rosters[day]) == 0 {
			vb.RequiredField(field)
		}
		for _, id := range c.rosters[day] {
			if _, ok := c.monsters[id]; !ok {
				vb.Fieldf(field, "unknown monster %s", id)
			}
		}
	}

	for _, tier := range c.shop.Tiers {
		field := fmt.Sprintf("shop.tiers.%d", tier.Price)
		errors.ValidatePositive(field, tier.Price, vb)
		if len(tier.Items) == 0 {
			vb.RequiredField(field)
		}
		for _, id := range tier.Items {
			if _, ok := c.equipment[id]; !ok {
				vb.Fieldf(field, "unknown item %s", id)
			}
		}
	}
	for _, id := range sortedKeys(c.shop.Fixed) {
		errors.ValidatePositive("shop.fixed."+id, c.shop.Fixed[id], vb)
		if _, ok := c.equipment[id]; !ok {
			vb.Fieldf("shop.fixed."+id, "unknown item %s", id)
		}
	}

	return vb.Build()
}

func validateNotation(field, notation string, vb *errors.ValidationBuilder) {
	if notation == "" {
		vb.RequiredField(field)
		return
	}
	if _, err := dice.Parse(notation); err != nil {
		vb.InvalidField(field, errors.GetMessage(err))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

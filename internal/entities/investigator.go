package entities

import "sort"

// Investigator is a player's persistent character
type Investigator struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Attributes    map[string]int  `json:"attributes"`
	Skills        map[string]int  `json:"skills"`
	DamageBonus   string          `json:"damage_bonus"`
	HP            int             `json:"hp"`
	SAN           int             `json:"san"`
	Alive         bool            `json:"alive"`
	Day           int             `json:"day"`
	LastAdventure string          `json:"last_adventure,omitempty"`
	Equipped      map[Slot]string `json:"equipped"`
	Inventory     []InventoryItem `json:"inventory"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

// InventoryItem is a stack of one item
type InventoryItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Ready reports whether creation finished. Skill allocation is the last
// step and the record is only saved with hit points once it is done.
func (i *Investigator) Ready() bool {
	return i.HP > 0
}

// Attribute returns an attribute or def
func (i *Investigator) Attribute(name string, def int) int {
	if v, ok := i.Attributes[name]; ok {
		return v
	}
	return def
}

// Skill returns a skill rating or def
func (i *Investigator) Skill(name string, def int) int {
	if v, ok := i.Skills[name]; ok {
		return v
	}
	return def
}

// HasSkill reports whether the skill exists on the sheet
func (i *Investigator) HasSkill(name string) bool {
	_, ok := i.Skills[name]
	return ok
}

// SetSkill sets a skill rating
func (i *Investigator) SetSkill(name string, value int) {
	if i.Skills == nil {
		i.Skills = make(map[string]int)
	}
	i.Skills[name] = value
}

// SkillNames returns skill names sorted
func (i *Investigator) SkillNames() []string {
	names := make([]string, 0, len(i.Skills))
	for name := range i.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EquippedID returns the item in slot, or ""
func (i *Investigator) EquippedID(slot Slot) string {
	return i.Equipped[slot]
}

// Equip places itemID in slot
func (i *Investigator) Equip(slot Slot, itemID string) {
	if i.Equipped == nil {
		i.Equipped = make(map[Slot]string)
	}
	i.Equipped[slot] = itemID
}

// Unequip empties slot and returns what was there
func (i *Investigator) Unequip(slot Slot) string {
	id := i.Equipped[slot]
	delete(i.Equipped, slot)
	return id
}

// AddItem adds quantity of an item, stacking with an existing entry
func (i *Investigator) AddItem(itemID, name string, quantity int) {
	if quantity <= 0 {
		return
	}
	for idx := range i.Inventory {
		if i.Inventory[idx].ItemID == itemID {
			i.Inventory[idx].Quantity += quantity
			return
		}
	}
	i.Inventory = append(i.Inventory, InventoryItem{ItemID: itemID, Name: name, Quantity: quantity})
}

// RemoveItem removes up to quantity of an item. It reports false when the
// item is not carried.
func (i *Investigator) RemoveItem(itemID string, quantity int) bool {
	for idx := range i.Inventory {
		if i.Inventory[idx].ItemID != itemID {
			continue
		}
		if i.Inventory[idx].Quantity <= quantity {
			i.Inventory = append(i.Inventory[:idx], i.Inventory[idx+1:]...)
		} else {
			i.Inventory[idx].Quantity -= quantity
		}
		return true
	}
	return false
}

// HasItem reports whether the item is carried
func (i *Investigator) HasItem(itemID string) bool {
	for _, item := range i.Inventory {
		if item.ItemID == itemID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (i *Investigator) Clone() *Investigator {
	if i == nil {
		return nil
	}
	out := *i
	out.Attributes = copyInts(i.Attributes)
	out.Skills = copyInts(i.Skills)
	if i.Equipped != nil {
		out.Equipped = make(map[Slot]string, len(i.Equipped))
		for k, v := range i.Equipped {
			out.Equipped[k] = v
		}
	}
	if i.Inventory != nil {
		out.Inventory = append([]InventoryItem(nil), i.Inventory...)
	}
	return &out
}

func copyInts(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

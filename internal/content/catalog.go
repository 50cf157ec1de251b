// Package content loads the read-only game catalogs: equipment, monsters,
// reply templates, daily rosters and the shop price list. A Catalog is built
// once at startup and shared by every session.
package content

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

//go:embed defaults/*.yaml
var defaultContent embed.FS

// Cosmetic fallbacks
const (
	UnknownEquipmentName = "未知装备"
	UnknownMonsterName   = "未知怪物"
	DefaultMonsterEnding = "怪物倒下了。"
	DefaultHighDamage    = "造成了重创！"
	DefaultNormalDamage  = "对其造成了伤害。"
	DefaultLowDamage     = "攻击几乎无效。"
	DefaultNoDamage      = "攻击无效。"
)

// Content file names, without extension
const (
	equipmentName = "equipment"
	monstersName  = "monsters"
	repliesName   = "replies"
	rostersName   = "rosters"
	shopName      = "shop"
)

// ShopTier is a price and the items one of which is sold at it each day
type ShopTier struct {
	Price int
	Items []string
}

// ShopList is the raw shop configuration
type ShopList struct {
	Tiers []ShopTier
	Fixed map[string]int
}

// Catalog is the loaded content
type Catalog struct {
	equipment  map[string]*entities.Equipment
	monsters   map[string]*entities.Monster
	replies    map[string]string
	events     map[int]string
	rosters    map[int][]string
	rosterDays []int
	shop       ShopList
}

// LoadDefault loads the content compiled into the binary
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(defaultContent, "defaults")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded content")
	}
	return Load(sub)
}

// LoadDir loads content from a directory; empty uses the embedded content
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return LoadDefault()
	}
	return Load(os.DirFS(dir))
}

// Load reads every content file from fsys. Each file may be YAML (.yaml,
// .yml) or JSON (.json). The catalog is validated before it is returned.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		equipment equipmentFile
		monsters  monsterFile
		replies   replyFile
		rosters   rosterFile
		shop      shopFile
	)

	files := []struct {
		name string
		out  interface{}
	}{
		{equipmentName, &equipment},
		{monstersName, &monsters},
		{repliesName, &replies},
		{rostersName, &rosters},
		{shopName, &shop},
	}
	for _, f := range files {
		if err := readFile(fsys, f.name, f.out); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		equipment: make(map[string]*entities.Equipment, len(equipment)),
		monsters:  make(map[string]*entities.Monster, len(monsters)),
		replies:   replies.Replies,
		events:    make(map[int]string, len(replies.Events)),
		rosters:   make(map[int][]string, len(rosters)),
	}
	for id, rec := range equipment {
		c.equipment[id] = rec.toEntity(id)
	}
	for id, rec := range monsters {
		c.monsters[id] = rec.toEntity(id)
	}
	for key, text := range replies.Events {
		day, err := numericKey(repliesName+".events", key)
		if err != nil {
			return nil, err
		}
		c.events[day] = text
	}
	for key, ids := range rosters {
		day, err := numericKey(rostersName, key)
		if err != nil {
			return nil, err
		}
		c.rosters[day] = ids
		c.rosterDays = append(c.rosterDays, day)
	}
	sort.Ints(c.rosterDays)

	c.shop.Fixed = shop.Fixed
	for key, items := range shop.Tiers {
		price, err := numericKey(shopName+".tiers", key)
		if err != nil {
			return nil, err
		}
		c.shop.Tiers = append(c.shop.Tiers, ShopTier{Price: price, Items: items})
	}
	sort.Slice(c.shop.Tiers, func(i, j int) bool { return c.shop.Tiers[i].Price < c.shop.Tiers[j].Price })

	if err := c.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid content")
	}

	slog.Info("Content loaded",
		"equipment", len(c.equipment),
		"monsters", len(c.monsters),
		"replies", len(c.replies),
		"roster_days", len(c.rosterDays))

	return c, nil
}

func readFile(fsys fs.FS, name string, out interface{}) error {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		data, err := fs.ReadFile(fsys, name+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", name+ext)
		}
		// JSON is a subset of YAML, so one decoder serves both
		if err := yaml.Unmarshal(data, out); err != nil {
			return errors.InvalidArgumentf("failed to parse %s: %v", name+ext, err)
		}
		return nil
	}
	return errors.NotFoundf("content file %s not found", name)
}

func numericKey(field, key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s: key %q is not a number", field, key)
	}
	return n, nil
}

// Equipment returns the item with id
func (c *Catalog) Equipment(id string) (*entities.Equipment, error) {
	item, ok := c.equipment[id]
	if !ok {
		return nil, errors.ContentNotFoundf("equipment %s not found", id).WithMeta("item_id", id)
	}
	out := *item
	return &out, nil
}

// EquipmentName returns the item name, or the unknown placeholder
func (c *Catalog) EquipmentName(id string) string {
	if item, ok := c.equipment[id]; ok {
		return item.Name
	}
	return UnknownEquipmentName
}

// Monster returns the monster with id
func (c *Catalog) Monster(id string) (*entities.Monster, error) {
	mon, ok := c.monsters[id]
	if !ok {
		return nil, errors.ContentNotFoundf("monster %s not found", id).WithMeta("monster_id", id)
	}
	out := *mon
	return &out, nil
}

// Reply returns the reply template for key, or "[key]" when none exists
func (c *Catalog) Reply(key string) string {
	if text, ok := c.replies[key]; ok {
		return text
	}
	return "[" + key + "]"
}

// DayEvent returns the narration for a day, or ""
func (c *Catalog) DayEvent(day int) string {
	return c.events[day]
}

// RosterDay returns the highest configured roster day not after day
func (c *Catalog) RosterDay(day int) (int, bool) {
	idx := sort.SearchInts(c.rosterDays, day+1) - 1
	if idx < 0 {
		return 0, false
	}
	return c.rosterDays[idx], true
}

// RandomMonsterForDay picks one of the day's monsters
func (c *Catalog) RandomMonsterForDay(day int, roller *dice.Roller) (*entities.Monster, error) {
	rosterDay, ok := c.RosterDay(day)
	if !ok {
		return nil, errors.ContentNotFoundf("no monsters configured for day %d", day).WithMeta("day", day)
	}
	ids := c.rosters[rosterDay]

	idx, err := roller.Pick(len(ids))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick monster")
	}
	return c.Monster(ids[idx])
}

// Shop returns the shop configuration
func (c *Catalog) Shop() ShopList {
	return c.shop
}

func (r equipmentRecord) toEntity(id string) *entities.Equipment {
	name := r.Name
	if name == "" {
		name = UnknownEquipmentName
	}
	return &entities.Equipment{
		ID:            id,
		Name:          name,
		Damage:        r.Damage,
		IdentifySkill: r.IdentifySkill,
		Penetrating:   r.Penetrating,
		Ammo:          r.Bullet,
		Slot:          entities.Slot(r.Part),
		Armor:         r.Armor,
		Breakable:     !r.Unbreakable,
		Actions:       append([]string(nil), r.Skill...),
		Reply:         r.Reply,
		Description:   r.Description,
	}
}

func (r monsterRecord) toEntity(id string) *entities.Monster {
	m := &entities.Monster{
		ID:           id,
		Name:         orDefault(r.Name, UnknownMonsterName),
		HP:           r.HP,
		Armor:        r.Armor,
		Agility:      r.Agility,
		Entrance:     r.Entrance,
		Ending:       orDefault(r.Ending, DefaultMonsterEnding),
		HighDamage:   orDefault(r.Flavor.High, DefaultHighDamage),
		NormalDamage: orDefault(r.Flavor.Normal, DefaultNormalDamage),
		LowDamage:    orDefault(r.Flavor.Low, DefaultLowDamage),
		NoDamage:     orDefault(r.Flavor.None, DefaultNoDamage),
		Attacks:      make(map[string]entities.Attack, len(r.Attacks)),
	}
	for name, a := range r.Attacks {
		m.Attacks[name] = entities.Attack{
			Name:               name,
			Skill:              a.Skill,
			Damage:             a.Damage,
			Penetrating:        a.Penetrating,
			Text:               a.Attack,
			SuccessText:        a.AttackSucc,
			FailureText:        a.AttackFalse,
			CounterText:        a.Counterattack,
			CounterFailureText: a.CounterFalse,
		}
	}
	if r.Loot != nil {
		maxGold := r.Loot.MaxGold
		if maxGold <= 0 {
			maxGold = entities.DefaultMaxGold
		}
		m.Loot = &entities.Loot{MaxGold: maxGold, Items: append([]string(nil), r.Loot.Items...)}
	}
	return m
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

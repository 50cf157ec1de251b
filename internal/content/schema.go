package content

// File shapes as they appear on disk. Field names follow the item and
// monster sheets the content was written from. Day and price keys are
// strings so JSON content decodes the same way.

type equipmentFile map[string]equipmentRecord

type equipmentRecord struct {
	Name          string   `yaml:"name"`
	Damage        string   `yaml:"damage"`
	IdentifySkill string   `yaml:"identify_skill"`
	Penetrating   bool     `yaml:"ex"`
	Bullet        int      `yaml:"bullet"`
	Part          string   `yaml:"part"`
	Armor         int      `yaml:"armor"`
	Unbreakable   bool     `yaml:"unbreakable"`
	Skill         []string `yaml:"skill"`
	Reply         string   `yaml:"reply"`
	Description   string   `yaml:"des"`
}

type monsterFile map[string]monsterRecord

type monsterRecord struct {
	Name     string                  `yaml:"name"`
	HP       int                     `yaml:"hp"`
	Armor    int                     `yaml:"armor"`
	Agility  int                     `yaml:"agility"`
	Entrance string                  `yaml:"entrance"`
	Ending   string                  `yaml:"ending"`
	Flavor   flavorRecord            `yaml:"flavor"`
	Attacks  map[string]attackRecord `yaml:"attacks"`
	Loot     *lootRecord             `yaml:"loot"`
}

type flavorRecord struct {
	High   string `yaml:"high"`
	Normal string `yaml:"normal"`
	Low    string `yaml:"low"`
	None   string `yaml:"none"`
}

type attackRecord struct {
	Skill         int    `yaml:"skill"`
	Damage        string `yaml:"damage"`
	Penetrating   bool   `yaml:"ex"`
	Attack        string `yaml:"attack"`
	AttackSucc    string `yaml:"attack_succ"`
	AttackFalse   string `yaml:"attack_false"`
	Counterattack string `yaml:"counterattack"`
	CounterFalse  string `yaml:"counter_false"`
}

type lootRecord struct {
	MaxGold int      `yaml:"max_gold"`
	Items   []string `yaml:"items"`
}

type replyFile struct {
	Replies map[string]string `yaml:"replies"`
	Events  map[string]string `yaml:"events"`
}

type rosterFile map[string][]string

type shopFile struct {
	Tiers map[string][]string `yaml:"tiers"`
	Fixed map[string]int      `yaml:"fixed"`
}

package combat

import (
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-storyteller/internal/check"
	"github.com/KirkDiggler/rpg-storyteller/internal/damage"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// Reply template keys
const (
	replyMeleeSuccess    = "格斗成功"
	replyMeleeCritical   = "格斗大成功"
	replyShotSuccess     = "射击成功"
	replyShotCritical    = "射击大成功"
	replyShotFailure     = "射击失败"
	replyShotFumble      = "射击大失败"
	replyWeaponFumble    = "反击大失败"
	replyKnifeFumble     = "大失败_初始"
	replyCounterSuccess  = "反击成功"
	replyEvade           = "闪避"
	replyEvadeSuccess    = "闪避成功"
	replyHighDamage      = "高伤害"
	replyNormalDamage    = "正常伤害"
	replyLowDamage       = "低伤害"
	replySearchFailure   = "侦查失败"
	replyFailureSuffix   = "失败"
	placeholderEquipment = "$装备"
	placeholderDamage    = "$伤害"
	placeholderDice      = "$骰子"
)

// Config holds what a session needs
type Config struct {
	Investigator *entities.Investigator
	Monster      *entities.Monster
	Catalog      Catalog
	// Roller is optional; nil uses the default roller
	Roller *dice.Roller
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Investigator == nil {
		vb.RequiredField("Investigator")
	}
	if c.Monster == nil {
		vb.RequiredField("Monster")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Session is one fight
type Session struct {
	catalog  Catalog
	roller   *dice.Roller
	resolver *check.Resolver
	calc     *damage.Calculator

	player  *Player
	monster *MonsterActor

	state State
	turn  Turn

	gun     *entities.Equipment
	ammo    int
	maxAmmo int

	succeeded map[string]struct{}
	broken    []string
	outcome   *Outcome
}

// New creates a session in StateInit
func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	player, err := NewPlayer(cfg.Investigator, cfg.Catalog)
	if err != nil {
		return nil, err
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRoller(nil)
	}

	s := &Session{
		catalog:   cfg.Catalog,
		roller:    roller,
		resolver:  check.NewResolver(roller),
		calc:      damage.NewCalculator(roller),
		player:    player,
		monster:   NewMonsterActor(cfg.Monster),
		state:     StateInit,
		succeeded: make(map[string]struct{}),
	}
	s.updateGun()
	s.ammo = s.maxAmmo
	return s, nil
}

// State returns the current state
func (s *Session) State() State { return s.state }

// Turn returns whose turn it is
func (s *Session) Turn() Turn { return s.turn }

// Player returns the investigator side
func (s *Session) Player() *Player { return s.player }

// Monster returns the monster side
func (s *Session) Monster() *MonsterActor { return s.monster }

// Ammo returns loaded and maximum rounds; both are zero without a gun
func (s *Session) Ammo() (int, int) { return s.ammo, s.maxAmmo }

// Outcome is set once the fight is over
func (s *Session) Outcome() *Outcome { return s.outcome }

// Broken lists the ids of items destroyed so far, in order
func (s *Session) Broken() []string {
	return append([]string(nil), s.broken...)
}

// Investigator returns the updated investigator copy
func (s *Session) Investigator() *entities.Investigator {
	return s.player.Investigator()
}

// AvailableActions lists the actions for the side whose turn it is
func (s *Session) AvailableActions() []string {
	switch s.state {
	case StatePlayerTurn:
		return s.player.Actions()
	case StateMonsterTurn:
		return s.monster.Actions()
	default:
		return nil
	}
}

// Start rolls the agility contest that decides who acts first
func (s *Session) Start() (*ActionResult, error) {
	if s.state != StateInit {
		return nil, errors.FailedPreconditionf("combat already started")
	}
	s.state = StateFirstStrike

	conf, err := s.resolver.Confront(
		s.player.Skill(entities.AttrDexterity, entities.DefaultAgility),
		s.monster.Skill(entities.AttrDexterity, entities.DefaultAgility),
	)
	if err != nil {
		s.state = StateInit
		return nil, err
	}

	if conf.Resolve(check.ModeContest) {
		s.setTurn(TurnPlayer)
	} else {
		s.setTurn(TurnMonster)
	}

	lines := []string{
		fmt.Sprintf("%s进行敏捷鉴定: %s", s.player.Name(), describe(conf.A)),
		fmt.Sprintf("%s进行敏捷鉴定: %s", s.monster.Name(), describe(conf.B)),
	}
	return &ActionResult{Lines: lines, Prompt: s.prompt(), State: s.state}, nil
}

// Execute resolves one action for the side whose turn it is. Every
// validation failure leaves the session untouched and consumes no roll.
func (s *Session) Execute(action string) (*ActionResult, error) {
	if s.state.Terminal() {
		return nil, errors.SessionTerminatedf("combat is already over").WithMeta("state", string(s.state))
	}
	if s.state != StatePlayerTurn && s.state != StateMonsterTurn {
		return nil, errors.FailedPreconditionf("combat has not started")
	}
	// The last action already decided the fight but its closing rolls failed
	if s.player.HP() <= 0 || s.monster.HP() <= 0 {
		return s.endTurn(nil)
	}
	if !contains(s.AvailableActions(), action) {
		return nil, errors.InvalidActionf("未知的行动: %s", action).
			WithMeta("action", action).
			WithMeta("available", strings.Join(s.AvailableActions(), ","))
	}

	var lines []string
	var err error
	if s.state == StateMonsterTurn {
		lines, err = s.defend(action)
	} else {
		lines, err = s.act(action)
	}
	if err != nil {
		return nil, err
	}
	return s.endTurn(compact(lines))
}

func (s *Session) act(action string) ([]string, error) {
	if action == entities.ActionReload {
		return s.reload()
	}
	if shots := entities.ShotsFor(action); shots > 0 {
		return s.shoot(shots)
	}
	if slot, ok := entities.SlotForAction(action); ok && slot == entities.SlotMelee {
		return s.melee(action)
	}
	return nil, errors.InvalidActionf("未知的玩家行动: %s", action).WithMeta("action", action)
}

func (s *Session) melee(action string) ([]string, error) {
	weapon := s.player.MeleeWeapon()

	attack, err := s.monster.ChooseAttack(s.roller)
	if err != nil {
		return nil, err
	}
	conf, err := s.resolver.Confront(s.player.Skill(weapon.IdentifySkill, entities.DefaultMeleeSkill), attack.Skill)
	if err != nil {
		return nil, err
	}
	s.record(conf.A.Level, weapon.IdentifySkill)

	lines := []string{
		weapon.Reply,
		attack.CounterText,
		fmt.Sprintf("%s进行%s: %s\n%s进行反击: %s",
			s.player.Name(), action, describe(conf.A), s.monster.Name(), describe(conf.B)),
	}

	fumbled := conf.A.Level == check.CriticalFailure
	if fumbled {
		text, err := s.fumble(weapon, entities.SlotMelee, replyWeaponFumble)
		if err != nil {
			return nil, err
		}
		lines = append(lines, text)
	}

	switch {
	case conf.Resolve(check.ModeCounter):
		hit, err := s.calc.Compute(damage.Input{
			Notation:    damage.WithBonus(weapon.Damage, s.player.inv.DamageBonus),
			Level:       conf.A.Level,
			Penetrating: weapon.Penetrating,
			Armor:       s.monster.Armor(),
		})
		if err != nil {
			return nil, err
		}
		key := replyMeleeSuccess
		if conf.A.Level.Critical() {
			key = replyMeleeCritical
		}
		lines = append(lines, fill(s.catalog.Reply(key), weapon.Name, hit), s.damageMonster(hit.Amount))
	case conf.BothFailed():
		if !fumbled {
			lines = append(lines, fill(s.catalog.Reply(action+replyFailureSuffix), weapon.Name, nil))
		}
		lines = append(lines, attack.CounterFailureText)
	default:
		hitLines, err := s.monsterHits(attack, conf.B.Level)
		if err != nil {
			return nil, err
		}
		lines = append(lines, hitLines...)
	}
	return lines, nil
}

func (s *Session) shoot(shots int) ([]string, error) {
	gun := s.gun
	if gun == nil {
		return nil, errors.MissingEquipmentf("你没有装备远程武器。")
	}
	if s.ammo < shots {
		return nil, errors.InsufficientResourcef("弹药不足！当前剩余 %d 发。", s.ammo).
			WithMeta("ammo", s.ammo).
			WithMeta("shots", shots)
	}
	s.ammo -= shots

	skill := s.player.Skill(gun.IdentifySkill, entities.DefaultRangedSkill)
	if shots == 1 {
		return s.singleShot(gun, skill)
	}
	return s.burst(gun, skill, shots)
}

func (s *Session) singleShot(gun *entities.Equipment, skill int) ([]string, error) {
	res, err := s.resolver.Roll(skill)
	if err != nil {
		return nil, err
	}
	s.record(res.Level, gun.IdentifySkill)

	lines := []string{
		gun.Reply,
		fmt.Sprintf("%s进行%s鉴定,%s", s.player.Name(), gun.IdentifySkill, describe(res)),
	}

	switch {
	case res.Level.Succeeded():
		hit, err := s.rangedDamage(gun, res.Level)
		if err != nil {
			return nil, err
		}
		key := replyShotSuccess
		if res.Level.Critical() {
			key = replyShotCritical
		}
		lines = append(lines, fill(s.catalog.Reply(key), gun.Name, hit), s.damageMonster(hit.Amount))
	case res.Level == check.CriticalFailure:
		text, err := s.fumble(gun, entities.SlotRanged, replyShotFumble)
		if err != nil {
			return nil, err
		}
		lines = append(lines, text)
	default:
		lines = append(lines, s.catalog.Reply(replyShotFailure))
	}
	return lines, nil
}

// burst fires several penalty-die shots. A fumble breaks the gun and ends
// the burst; damage from earlier shots still lands.
func (s *Session) burst(gun *entities.Equipment, skill, shots int) ([]string, error) {
	var rolls, texts []string
	total := 0

	for i := 0; i < shots; i++ {
		res, err := s.resolver.Penalty(skill, 1)
		if err != nil {
			return nil, err
		}
		s.record(res.Level, gun.IdentifySkill)
		rolls = append(rolls, fmt.Sprintf("%s进行%s鉴定,P=%d%s %d/%d【%s】",
			s.player.Name(), gun.IdentifySkill, res.Base, penaltyDigits(res.Tens), res.Final, res.Skill, res.Level.Label()))

		if res.Level == check.CriticalFailure {
			text, err := s.fumble(gun, entities.SlotRanged, replyShotFumble)
			if err != nil {
				return nil, err
			}
			texts = append(texts, text)
			break
		}
		if res.Level.Succeeded() {
			hit, err := s.rangedDamage(gun, res.Level)
			if err != nil {
				return nil, err
			}
			texts = append(texts, hit.Trace+"="+strconv.Itoa(hit.Amount))
			total += hit.Amount
		}
	}

	lines := []string{gun.Reply, strings.Join(rolls, "\n")}
	if total > 0 {
		texts = append(texts, fmt.Sprintf("总伤害：%d", total))
		lines = append(lines, strings.Join(texts, "\n"), s.damageMonster(total))
	} else {
		lines = append(lines, strings.Join(texts, "\n"))
	}
	return lines, nil
}

func (s *Session) rangedDamage(gun *entities.Equipment, level check.Level) (*damage.Result, error) {
	return s.calc.Compute(damage.Input{
		Notation:    gun.Damage,
		Level:       level,
		Penetrating: true,
		Armor:       s.monster.Armor(),
	})
}

func (s *Session) reload() ([]string, error) {
	if s.gun == nil {
		return nil, errors.MissingEquipmentf("你没有可换弹的武器。")
	}
	s.ammo = s.maxAmmo
	return []string{"换弹完成"}, nil
}

func (s *Session) defend(action string) ([]string, error) {
	var (
		weapon    *entities.Equipment
		skill     int
		usedSkill string
		reply     string
		mode      check.Mode
	)
	if action == entities.ActionEvade {
		usedSkill = entities.SkillDodge
		skill = s.player.Skill(entities.SkillDodge, entities.DefaultDodgeSkill)
		reply = s.catalog.Reply(replyEvade)
		mode = check.ModeEvade
	} else {
		weapon = s.player.MeleeWeapon()
		usedSkill = weapon.IdentifySkill
		skill = s.player.Skill(weapon.IdentifySkill, entities.DefaultMeleeSkill)
		reply = weapon.Reply
		mode = check.ModeCounter
	}

	attack, err := s.monster.ChooseAttack(s.roller)
	if err != nil {
		return nil, err
	}
	conf, err := s.resolver.Confront(attack.Skill, skill)
	if err != nil {
		return nil, err
	}
	s.record(conf.B.Level, usedSkill)

	roll := fmt.Sprintf("%s进行攻击: %s\n%s进行%s: %s",
		s.monster.Name(), describe(conf.A), s.player.Name(), action, describe(conf.B))
	if weapon != nil && conf.B.Level == check.CriticalFailure {
		text, err := s.fumble(weapon, entities.SlotMelee, replyWeaponFumble)
		if err != nil {
			return nil, err
		}
		roll += "\n" + text
	}
	lines := []string{attack.Text, reply, roll}

	switch {
	case conf.Resolve(mode):
		hitLines, err := s.monsterHits(attack, conf.A.Level)
		if err != nil {
			return nil, err
		}
		lines = append(lines, hitLines...)
	case weapon == nil:
		lines = append(lines, s.catalog.Reply(replyEvadeSuccess))
	case conf.BothFailed():
		lines = append(lines, attack.FailureText)
	default:
		hit, err := s.calc.Compute(damage.Input{
			Notation: damage.WithBonus(weapon.Damage, s.player.inv.DamageBonus),
			Level:    check.Success,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, fill(s.catalog.Reply(replyCounterSuccess), weapon.Name, hit), s.damageMonster(hit.Amount))
	}
	return lines, nil
}

// monsterHits rolls the attack's damage through the player's armor
func (s *Session) monsterHits(attack entities.Attack, level check.Level) ([]string, error) {
	hit, err := s.calc.Compute(damage.Input{
		Notation:    attack.Damage,
		Level:       level,
		Penetrating: attack.Penetrating,
		Armor:       s.player.Armor(),
	})
	if err != nil {
		return nil, err
	}
	return []string{fill(attack.SuccessText, "", hit), s.damagePlayer(hit.Amount)}, nil
}

// fumble breaks the item in slot. Unbreakable items cut their wielder
// instead; that wound ignores armor.
func (s *Session) fumble(item *entities.Equipment, slot entities.Slot, key string) (string, error) {
	if item.Breakable {
		if _, ok := s.player.Break(slot); ok {
			s.broken = append(s.broken, item.ID)
			if slot == entities.SlotRanged {
				s.updateGun()
			}
		}
		return fill(s.catalog.Reply(key), item.Name, nil), nil
	}

	out, err := s.roller.RollNotation(entities.FumbleSelfDamage)
	if err != nil {
		return "", err
	}
	s.player.SetHP(s.player.HP() - out.Total)
	return strings.NewReplacer(
		placeholderEquipment, item.Name,
		placeholderDamage, out.Detail,
		placeholderDice, entities.FumbleSelfDamage,
	).Replace(s.catalog.Reply(replyKnifeFumble)), nil
}

func (s *Session) damagePlayer(amount int) string {
	if amount <= 0 {
		return s.catalog.Reply(replyLowDamage)
	}
	before := s.player.HP()
	s.player.SetHP(before - amount)
	switch {
	case amount*2 > before:
		return s.catalog.Reply(replyHighDamage)
	case amount < 2:
		return s.catalog.Reply(replyLowDamage)
	default:
		return s.catalog.Reply(replyNormalDamage)
	}
}

func (s *Session) damageMonster(amount int) string {
	mon := s.monster.Monster()
	if amount <= 0 {
		return mon.NoDamage
	}
	before := s.monster.HP()
	s.monster.SetHP(before - amount)
	switch {
	case amount*2 > before:
		return mon.HighDamage
	case amount < 2:
		return mon.LowDamage
	default:
		return mon.NormalDamage
	}
}

func (s *Session) record(level check.Level, skill string) {
	if skill != "" && level.Succeeded() {
		s.succeeded[skill] = struct{}{}
	}
}

func (s *Session) updateGun() {
	gun, ok := s.player.EquippedWeapon(entities.SlotRanged)
	if !ok || !gun.IsWeapon() {
		s.gun, s.ammo, s.maxAmmo = nil, 0, 0
		return
	}
	s.gun = gun
	s.maxAmmo = gun.Ammo
}

func (s *Session) setTurn(turn Turn) {
	s.turn = turn
	if turn == TurnPlayer {
		s.state = StatePlayerTurn
	} else {
		s.state = StateMonsterTurn
	}
}

// endTurn settles a decided fight or hands the turn over. A failed victory
// leaves the session undecided so the next Execute settles it again.
func (s *Session) endTurn(lines []string) (*ActionResult, error) {
	switch {
	case s.player.HP() <= 0:
		return &ActionResult{Lines: lines, Prompt: s.defeat(), State: s.state, Terminal: true}, nil
	case s.monster.HP() <= 0:
		closing, err := s.settleVictory()
		if err != nil {
			slog.Error("Failed to settle victory",
				"investigator", s.player.Name(),
				"monster", s.monster.Monster().ID,
				"error", err)
			return nil, errors.Wrap(err, "failed to settle victory")
		}
		return &ActionResult{Lines: lines, Prompt: closing, State: s.state, Terminal: true}, nil
	}

	if s.turn == TurnPlayer {
		s.setTurn(TurnMonster)
	} else {
		s.setTurn(TurnPlayer)
	}
	return &ActionResult{Lines: lines, Prompt: s.prompt(), State: s.state}, nil
}

// settleVictory runs victory and undoes its writes to the investigator and
// the session when any roll fails.
func (s *Session) settleVictory() (string, error) {
	inv := s.player.Investigator()
	day, skills := inv.Day, maps.Clone(inv.Skills)
	state, turn, succeeded := s.state, s.turn, maps.Clone(s.succeeded)

	closing, err := s.victory()
	if err != nil {
		inv.Day, inv.Skills = day, skills
		s.state, s.turn, s.outcome, s.succeeded = state, turn, nil, succeeded
		return "", err
	}
	return closing, nil
}

func (s *Session) defeat() string {
	inv := s.player.Investigator()
	inv.Alive = false
	inv.HP = 0

	s.state = StateDefeat
	s.turn = TurnNone
	s.outcome = &Outcome{
		Result:      ResultDefeat,
		PlayerHP:    0,
		BrokenItems: s.broken,
		Day:         inv.Day,
	}
	return s.player.Name() + "死亡..."
}

func (s *Session) victory() (string, error) {
	inv := s.player.Investigator()
	s.state = StateVictory
	s.turn = TurnNone
	s.outcome = &Outcome{
		Result:      ResultVictory,
		PlayerHP:    s.player.HP(),
		BrokenItems: s.broken,
	}

	search, err := s.resolver.Roll(s.player.Skill(entities.SkillSpot, entities.DefaultSpotSkill))
	if err != nil {
		return "", err
	}
	s.record(search.Level, entities.SkillSpot)
	searchLine := fmt.Sprintf("%s进行侦查: %s", s.player.Name(), describe(search))

	var found string
	if search.Level.Succeeded() {
		s.outcome.Searched = true
		loot, text, err := s.rollLoot()
		if err != nil {
			return "", err
		}
		s.outcome.Loot = loot
		found = text
	} else {
		found = s.catalog.Reply(replySearchFailure)
	}

	inv.Day++
	s.outcome.Day = inv.Day

	growth, err := s.grow()
	if err != nil {
		return "", err
	}

	return s.monster.Monster().Ending + Separator + searchLine + Separator + found + Separator + growth, nil
}

func (s *Session) rollLoot() (*Loot, string, error) {
	table := s.monster.Monster().Loot
	if table == nil {
		return nil, "你在怪物身上没有找到任何有价值的物品。", nil
	}

	maxGold := table.MaxGold
	if maxGold <= 0 {
		maxGold = entities.DefaultMaxGold
	}
	gold, err := s.roller.Die(maxGold)
	if err != nil {
		return nil, "", err
	}
	loot := &Loot{Gold: gold}

	if len(table.Items) > 0 {
		idx, err := s.roller.Pick(len(table.Items))
		if err != nil {
			return nil, "", err
		}
		if item, err := s.catalog.Equipment(table.Items[idx]); err == nil {
			loot.ItemID = item.ID
			loot.ItemName = item.Name
			return loot, fmt.Sprintf("于嘈杂中的环境寻找，或是幸运，或是偶然，你在某个阴暗角落发现了一只【%s】，看起来%s伤害：%s。同时你还找到了 %d 枚乌帕。",
				item.Name, item.Description, item.Damage, gold), nil
		}
	}
	return loot, fmt.Sprintf("你找到了 %d 乌帕，但没有发现其他有价值的物品。", gold), nil
}

// grow checks every skill that succeeded during the fight, in name order.
// A failed check improves the skill.
func (s *Session) grow() (string, error) {
	inv := s.player.Investigator()
	names := make([]string, 0, len(s.succeeded))
	for name := range s.succeeded {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("成长鉴定:\n")
	for _, name := range names {
		rating := s.player.Skill(name, entities.DefaultMeleeSkill)
		res, err := s.resolver.Roll(rating)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "进行【%s】成长鉴定：%d/%d【%s】\n", name, res.Roll, rating, res.Level.Label())

		g := Growth{Skill: name, Rating: rating, Roll: res.Roll}
		if res.Level < check.Success {
			out, err := s.roller.RollNotation(entities.GrowthNotation)
			if err != nil {
				return "", err
			}
			g.Gain = out.Total
			fmt.Fprintf(&sb, "技能成长：%s=%d\n", entities.GrowthNotation, out.Total)
			inv.SetSkill(name, rating+out.Total)
		}
		s.outcome.Growth = append(s.outcome.Growth, g)
	}
	return sb.String(), nil
}

func (s *Session) prompt() string {
	var sb strings.Builder
	if s.gun != nil {
		fmt.Fprintf(&sb, "当前子弹: %d/%d\n", s.ammo, s.maxAmmo)
	}
	owner := "你的"
	if s.turn == TurnMonster {
		owner = "怪物"
	}
	fmt.Fprintf(&sb, "--- %s回合 ---\n当前HP: %d\n请选择行动:\n", owner, s.player.HP())
	for _, a := range s.AvailableActions() {
		fmt.Fprintf(&sb, "【/行动 %s】\n", a)
	}
	return strings.TrimSpace(sb.String())
}

func describe(r check.Result) string {
	return fmt.Sprintf("%d/%d【%s】", r.Roll, r.Skill, r.Level.Label())
}

func penaltyDigits(tens []int) string {
	parts := make([]string, len(tens))
	for i, t := range tens {
		parts[i] = strconv.Itoa(t)
	}
	return "[惩罚骰:[" + strings.Join(parts, ", ") + "]]"
}

// fill substitutes reply placeholders; a nil hit leaves damage tokens alone
func fill(template, equipment string, hit *damage.Result) string {
	pairs := []string{placeholderEquipment, equipment}
	if hit != nil {
		pairs = append(pairs, placeholderDamage, strconv.Itoa(hit.Amount), placeholderDice, hit.Trace)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func compact(lines []string) []string {
	out := lines[:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

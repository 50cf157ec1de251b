// Package adventure runs one fight per player per day. It keeps the
// registry of fights in flight and writes each result back to storage.
package adventure

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-storyteller/internal/combat"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet"
)

// Messages shown when a player cannot adventure
const (
	MsgNoInvestigator  = "当前还没有存活角色，先使用\n/创建调查员\n开始调查员的创建吧~"
	MsgNotReady        = "当前调查员还没创建完成哦~"
	MsgDeceased        = "当前调查员已经死亡，无法进行冒险哦~\n可以使用复活道具让调查员复活~"
	MsgAlreadyToday    = "今天已经参加了冒险哦~\n等明天再来吧~"
	MsgInAdventure     = "你已经在冒险中了哦~"
	MsgNoAdventure     = "当前没有进行中的冒险哦~"
	MsgDeathEpilogue   = "疲倦席卷了你的身躯，你就此永远的沉睡了...."
	MsgAbandonedEnding = "你放弃了这次冒险，悄悄离开了。"
)

// Catalog is the content a fight reads
type Catalog interface {
	combat.Catalog
	RandomMonsterForDay(day int, roller *dice.Roller) (*entities.Monster, error)
	DayEvent(day int) string
}

// Config holds the dependencies for the adventure orchestrator
type Config struct {
	InvestigatorRepo investigator.Repository
	WalletRepo       wallet.Repository
	Catalog          Catalog
	Roller           *dice.Roller
	EventBus         events.EventBus
	IDGenerator      idgen.Generator
	Clock            clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InvestigatorRepo == nil {
		vb.RequiredField("InvestigatorRepo")
	}
	if c.WalletRepo == nil {
		vb.RequiredField("WalletRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	investigatorRepo investigator.Repository
	walletRepo       wallet.Repository
	catalog          Catalog
	roller           *dice.Roller
	eventBus         events.EventBus
	idGen            idgen.Generator
	clock            clock.Clock

	mu         sync.RWMutex
	adventures map[string]*adventure
}

// adventure is one fight in flight. Its mutex serializes every call that
// touches the session.
type adventure struct {
	mu       sync.Mutex
	id       string
	playerID string
	session  *combat.Session

	// Progress of writing a finished fight back, so a retry never
	// applies a step twice
	saved    bool
	credited bool
	// closed is set once the adventure left the registry
	closed bool
}

// NewOrchestrator creates a new adventure orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		investigatorRepo: cfg.InvestigatorRepo,
		walletRepo:       cfg.WalletRepo,
		catalog:          cfg.Catalog,
		roller:           cfg.Roller,
		eventBus:         cfg.EventBus,
		idGen:            cfg.IDGenerator,
		clock:            clk,
		adventures:       make(map[string]*adventure),
	}, nil
}

func (o *orchestrator) lookup(playerID string) (*adventure, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	adv, ok := o.adventures[playerID]
	return adv, ok
}

// remove must be called with adv.mu held
func (o *orchestrator) remove(adv *adventure) {
	adv.closed = true
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.adventures[adv.playerID] == adv {
		delete(o.adventures, adv.playerID)
	}
}

// Start begins the day's fight
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	if _, ok := o.lookup(input.PlayerID); ok {
		return nil, errors.FailedPrecondition(MsgInAdventure)
	}

	inv, err := o.eligible(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	monster, err := o.catalog.RandomMonsterForDay(inv.Day, o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick monster")
	}

	session, err := combat.New(&combat.Config{
		Investigator: inv,
		Monster:      monster,
		Catalog:      o.catalog,
		Roller:       o.roller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat session")
	}

	first, err := session.Start()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll initiative")
	}

	adv := &adventure{
		id:       o.idGen.Generate(),
		playerID: input.PlayerID,
		session:  session,
	}

	o.mu.Lock()
	if _, ok := o.adventures[input.PlayerID]; ok {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition(MsgInAdventure)
	}
	o.adventures[input.PlayerID] = adv
	o.mu.Unlock()

	slog.Info("Adventure started",
		"adventure_id", adv.id,
		"player_id", input.PlayerID,
		"monster_id", monster.ID,
		"day", inv.Day,
		"turn", string(session.Turn()))

	o.publish(ctx, EventStarted, adv, map[string]interface{}{KeyDay: inv.Day})

	messages := make([]string, 0, len(first.Lines)+3)
	if event := o.catalog.DayEvent(inv.Day); event != "" {
		messages = append(messages, event)
	}
	if monster.Entrance != "" {
		messages = append(messages, monster.Entrance)
	}
	messages = append(messages, first.Messages()...)

	return &StartOutput{
		AdventureID: adv.id,
		MonsterID:   monster.ID,
		Messages:    messages,
		State:       session.State(),
	}, nil
}

// eligible loads the investigator and applies the daily rules
func (o *orchestrator) eligible(ctx context.Context, playerID string) (*entities.Investigator, error) {
	got, err := o.investigatorRepo.Get(ctx, investigator.GetInput{ID: playerID})
	if errors.IsNotFound(err) {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, MsgNoInvestigator)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get investigator")
	}

	inv := got.Investigator
	switch {
	case !inv.Alive:
		return nil, errors.FailedPrecondition(MsgDeceased)
	case !inv.Ready():
		return nil, errors.FailedPrecondition(MsgNotReady)
	case inv.LastAdventure == clock.Today(o.clock):
		return nil, errors.FailedPrecondition(MsgAlreadyToday).WithMeta("date", inv.LastAdventure)
	}
	return inv, nil
}

// Act resolves one action in the player's fight
func (o *orchestrator) Act(ctx context.Context, input *ActInput) (*ActOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	adv, ok := o.lookup(input.PlayerID)
	if !ok {
		return nil, errors.FailedPrecondition(MsgNoAdventure)
	}

	adv.mu.Lock()
	defer adv.mu.Unlock()
	if adv.closed {
		return nil, errors.FailedPrecondition(MsgNoAdventure)
	}

	session := adv.session

	// A finished fight still registered failed to persist earlier
	if session.State().Terminal() {
		if err := o.finish(ctx, adv); err != nil {
			return nil, err
		}
		return &ActOutput{
			State:    session.State(),
			Terminal: true,
			Outcome:  session.Outcome(),
		}, nil
	}

	res, err := session.Execute(input.Action)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventTurn, adv, map[string]interface{}{KeyAction: input.Action})

	out := &ActOutput{
		Messages: res.Messages(),
		State:    res.State,
		Terminal: res.Terminal,
	}
	if !res.Terminal {
		return out, nil
	}

	out.Outcome = session.Outcome()
	if out.Outcome.Result == combat.ResultDefeat {
		out.Messages = append(out.Messages, MsgDeathEpilogue)
	}
	if err := o.finish(ctx, adv); err != nil {
		return nil, err
	}
	return out, nil
}

// finish writes a finished fight back and drops it from the registry
func (o *orchestrator) finish(ctx context.Context, adv *adventure) error {
	outcome := adv.session.Outcome()

	if !adv.saved {
		if err := o.persist(ctx, adv, outcome); err != nil {
			return err
		}
		adv.saved = true
	}

	if !adv.credited {
		if outcome.Loot != nil && outcome.Loot.Gold > 0 {
			_, err := o.walletRepo.Credit(ctx, wallet.CreditInput{
				PlayerID: adv.playerID,
				Amount:   outcome.Loot.Gold,
			})
			if err != nil {
				return errors.Wrap(err, "failed to credit loot")
			}
		}
		adv.credited = true
	}

	o.remove(adv)

	slog.Info("Adventure ended",
		"adventure_id", adv.id,
		"player_id", adv.playerID,
		"result", string(outcome.Result),
		"hp", outcome.PlayerHP,
		"day", outcome.Day)

	o.publish(ctx, EventEnded, adv, outcomeFields(outcome))
	return nil
}

// persist merges the fight into a freshly loaded record so anything the
// player did elsewhere meanwhile, such as shopping, is kept
func (o *orchestrator) persist(ctx context.Context, adv *adventure, outcome *combat.Outcome) error {
	got, err := o.investigatorRepo.Get(ctx, investigator.GetInput{ID: adv.playerID})
	if err != nil {
		return errors.Wrap(err, "failed to reload investigator")
	}
	stored := got.Investigator
	fought := adv.session.Investigator()

	stored.HP = fought.HP
	stored.Alive = fought.Alive
	stored.Day = fought.Day
	stored.LastAdventure = clock.Today(o.clock)
	for _, name := range fought.SkillNames() {
		stored.SetSkill(name, fought.Skill(name, 0))
	}
	for _, id := range adv.session.Broken() {
		stored.RemoveItem(id, 1)
		for slot, equipped := range stored.Equipped {
			if equipped == id && fought.EquippedID(slot) != id {
				stored.Unequip(slot)
			}
		}
	}
	if outcome != nil && outcome.Loot != nil && outcome.Loot.ItemID != "" {
		stored.AddItem(outcome.Loot.ItemID, outcome.Loot.ItemName, 1)
	}

	if _, err := o.investigatorRepo.Save(ctx, investigator.SaveInput{Investigator: stored}); err != nil {
		return errors.Wrap(err, "failed to save investigator")
	}
	return nil
}

// Status describes the player's fight
func (o *orchestrator) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	adv, ok := o.lookup(input.PlayerID)
	if !ok {
		return nil, errors.NotFound(MsgNoAdventure)
	}

	adv.mu.Lock()
	defer adv.mu.Unlock()
	if adv.closed {
		return nil, errors.NotFound(MsgNoAdventure)
	}

	session := adv.session
	player := session.Player()
	monster := session.Monster()
	ammo, maxAmmo := session.Ammo()

	return &StatusOutput{
		AdventureID: adv.id,
		State:       session.State(),
		Turn:        session.Turn(),
		PlayerHP:    player.HP(),
		PlayerMaxHP: player.MaxHP(),
		MonsterID:   monster.GetID(),
		MonsterName: monster.Name(),
		MonsterHP:   monster.HP(),
		Actions:     session.AvailableActions(),
		Ammo:        ammo,
		MaxAmmo:     maxAmmo,
	}, nil
}

// Abandon gives up the fight. Wounds and broken gear stay, and the day's
// adventure is spent.
func (o *orchestrator) Abandon(ctx context.Context, input *AbandonInput) (*AbandonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	adv, ok := o.lookup(input.PlayerID)
	if !ok {
		return nil, errors.NotFound(MsgNoAdventure)
	}

	adv.mu.Lock()
	defer adv.mu.Unlock()
	if adv.closed {
		return nil, errors.NotFound(MsgNoAdventure)
	}

	if adv.session.State().Terminal() {
		if err := o.finish(ctx, adv); err != nil {
			return nil, err
		}
		return &AbandonOutput{AdventureID: adv.id}, nil
	}

	if err := o.persist(ctx, adv, nil); err != nil {
		return nil, err
	}
	o.remove(adv)

	slog.Info("Adventure abandoned",
		"adventure_id", adv.id,
		"player_id", adv.playerID,
		"hp", adv.session.Player().HP())

	o.publish(ctx, EventEnded, adv, map[string]interface{}{KeyResult: "abandoned"})

	return &AbandonOutput{AdventureID: adv.id, Message: MsgAbandonedEnding}, nil
}

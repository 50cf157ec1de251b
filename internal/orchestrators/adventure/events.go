package adventure

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-storyteller/internal/combat"
)

// Event types published on the bus
const (
	EventStarted = "adventure.started"
	EventTurn    = "adventure.turn"
	EventEnded   = "adventure.ended"
)

// Event context keys
const (
	KeyAdventureID = "adventure_id"
	KeyAction      = "action"
	KeyState       = "state"
	KeyResult      = "result"
	KeyGold        = "gold"
	KeyDay         = "day"
)

// publish is best effort; a failing subscriber never fails the adventure
func (o *orchestrator) publish(ctx context.Context, eventType string, adv *adventure, fields map[string]interface{}) {
	session := adv.session
	event := events.NewGameEvent(eventType, session.Player(), session.Monster())
	event.Context().Set(KeyAdventureID, adv.id)
	event.Context().Set(KeyState, string(session.State()))
	for k, v := range fields {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish adventure event",
			"event", eventType,
			"adventure_id", adv.id,
			"error", err)
	}
}

func outcomeFields(outcome *combat.Outcome) map[string]interface{} {
	fields := map[string]interface{}{
		KeyResult: string(outcome.Result),
		KeyDay:    outcome.Day,
	}
	if outcome.Loot != nil {
		fields[KeyGold] = outcome.Loot.Gold
	}
	return fields
}

// SubscribeLogger logs every adventure event published on bus and returns
// the subscription ids
func SubscribeLogger(bus events.EventBus) []string {
	handler := func(_ context.Context, event events.Event) error {
		attrs := []any{"event", event.Type()}
		if source := event.Source(); source != nil {
			attrs = append(attrs, "player_id", source.GetID())
		}
		if target := event.Target(); target != nil {
			attrs = append(attrs, "monster_id", target.GetID())
		}
		slog.Info("Adventure event", attrs...)
		return nil
	}

	ids := make([]string, 0, 3)
	for _, eventType := range []string{EventStarted, EventTurn, EventEnded} {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, handler))
	}
	return ids
}

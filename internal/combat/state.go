// Package combat runs one fight between an investigator and a monster. A
// Session is a turn-based state machine driven by one action at a time; it
// is not safe for concurrent use and callers serialize access per session.
package combat

// State of a session
type State string

// Session states
const (
	StateInit        State = "init"
	StateFirstStrike State = "first_strike"
	StatePlayerTurn  State = "player_turn"
	StateMonsterTurn State = "monster_turn"
	StateVictory     State = "victory"
	StateDefeat      State = "defeat"
)

// Terminal reports a finished fight
func (s State) Terminal() bool {
	return s == StateVictory || s == StateDefeat
}

// Turn names the side whose turn it is
type Turn string

// Turn owners
const (
	TurnNone    Turn = ""
	TurnPlayer  Turn = "player"
	TurnMonster Turn = "monster"
)

// Separator joins the sections of a closing message
const Separator = "\n------------------\n"

// ActionResult is the narration of one step
type ActionResult struct {
	// Lines are the non-empty narration entries in order
	Lines []string
	// Prompt is the next turn's prompt, or the closing text once terminal
	Prompt   string
	State    State
	Terminal bool
}

// Messages returns the lines followed by the prompt
func (r *ActionResult) Messages() []string {
	out := make([]string, 0, len(r.Lines)+1)
	out = append(out, r.Lines...)
	if r.Prompt != "" {
		out = append(out, r.Prompt)
	}
	return out
}

// Result of a finished fight
type Result string

// Fight results
const (
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
)

// Loot is what the search turned up
type Loot struct {
	Gold     int
	ItemID   string
	ItemName string
}

// Growth is one post-victory skill improvement check
type Growth struct {
	Skill  string
	Rating int
	Roll   int
	Gain   int
}

// Outcome summarizes a finished fight for persistence
type Outcome struct {
	Result      Result
	PlayerHP    int
	Searched    bool
	Loot        *Loot
	Growth      []Growth
	BrokenItems []string
	Day         int
}

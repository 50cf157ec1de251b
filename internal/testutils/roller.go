package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// ScriptedRoller satisfies the rpg-toolkit dice.Roller interface with queued
// faces so combat scenarios replay exactly. Each Roll consumes one value and
// each RollN consumes count values. Running dry or queuing a face outside the
// die is reported as an error so a mis-scripted test fails loudly.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	calls  int
}

// NewScriptedRoller queues values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: append([]int(nil), values...)}
}

// Push appends more faces to the queue
func (s *ScriptedRoller) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining reports how many queued faces are unused
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Calls reports how many faces were consumed
func (s *ScriptedRoller) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Roll returns the next queued face for a die of the given size
func (s *ScriptedRoller) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next(size)
}

// RollN returns the next count queued faces
func (s *ScriptedRoller) RollN(count, size int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		v, err := s.next(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *ScriptedRoller) next(size int) (int, error) {
	if len(s.values) == 0 {
		return 0, errors.Internalf("scripted roller exhausted after %d rolls (wanted d%d)", s.calls, size)
	}
	v := s.values[0]
	if v < 1 || v > size {
		return 0, errors.InvalidArgumentf("scripted face %d does not fit d%d (roll %d)", v, size, s.calls+1)
	}
	s.values = s.values[1:]
	s.calls++
	return v, nil
}

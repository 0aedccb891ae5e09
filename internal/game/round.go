package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"quizcore/pkg/quiztypes"
)

// Round is the state of one play invocation: the items not yet asked and
// the running score. A round ends when the remaining set is exhausted or on
// the first wrong answer, and always announces the final score.
type Round struct {
	remaining []quiztypes.Item
	score     int
	rng       *rand.Rand
}

// NewRound snapshots the given items into a fresh round. A nil rng gets a
// time-seeded source; tests inject a seeded one for deterministic draws.
func NewRound(items []quiztypes.Item, rng *rand.Rand) *Round {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	remaining := make([]quiztypes.Item, len(items))
	copy(remaining, items)
	return &Round{remaining: remaining, rng: rng}
}

// Score returns the number of correct answers so far.
func (r *Round) Score() int {
	return r.score
}

// Play runs the round to completion on the given session. Items are drawn
// uniformly at random without replacement, so no question repeats within a
// round. The only returned errors are transport failures from the prompt
// primitive; a finished round is not an error.
func (r *Round) Play(s quiztypes.Session) error {
	p := s.Printer()

	for len(r.remaining) > 0 {
		item := r.draw()

		reply, err := s.Ask(item.Question + "? ")
		if err != nil {
			return err
		}

		if !Match(reply, item.Answer) {
			p.Error("Incorrect.")
			p.Println("The correct answer is: " + item.Answer)
			r.finish(p)
			return nil
		}

		r.score++
		p.Success(fmt.Sprintf("Correct - %d so far.", r.score))
	}

	p.Info("Nothing left to ask.")
	r.finish(p)
	return nil
}

// draw removes and returns one item chosen uniformly at random.
func (r *Round) draw() quiztypes.Item {
	i := r.rng.Intn(len(r.remaining))
	item := r.remaining[i]
	last := len(r.remaining) - 1
	r.remaining[i] = r.remaining[last]
	r.remaining = r.remaining[:last]
	return item
}

func (r *Round) finish(p quiztypes.Printer) {
	p.Info("Round over. Final score:")
	p.Banner(strconv.Itoa(r.score))
}

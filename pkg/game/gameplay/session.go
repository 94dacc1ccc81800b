// Package gameplay runs a quiz session: it turns player input into state
// transitions and tells the surface what to draw.
package gameplay

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	engineinput "mapquiz/pkg/engine/input"
	"mapquiz/pkg/game/catalog"
	"mapquiz/pkg/game/i18n"
	"mapquiz/pkg/game/renderer"
	"mapquiz/pkg/game/state"
	"mapquiz/pkg/log"
)

// DefaultMessageDelay is how long transient feedback stays on screen
const DefaultMessageDelay = 2 * time.Second

// Options tune a session. The zero value is usable.
type Options struct {
	MessageDelay time.Duration
	Logger       *log.Logger
	Device       engineinput.Device
}

// Session is one play-through of the quiz
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	cat     *catalog.Catalog
	surface renderer.Surface
	game    *state.Game
	opts    Options
	logger  *log.Logger
}

// Snapshot is a read-only copy of the session state
type Snapshot struct {
	Status state.Status
	Score  int
	Total  int
	Found  []string // in guess order
}

// New creates a session over cat that draws on surface
func New(cat *catalog.Catalog, surface renderer.Surface, opts Options) *Session {
	if opts.MessageDelay <= 0 {
		opts.MessageDelay = DefaultMessageDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Device == engineinput.DeviceUnknown {
		opts.Device = engineinput.DeviceScript
	}

	id := uuid.New()

	return &Session{
		ID:      id,
		cat:     cat,
		surface: surface,
		game:    state.NewGame(cat.Len()),
		opts:    opts,
		logger:  opts.Logger.With("session", id.String()),
	}
}

// Start draws the map, the score banner and the instructions
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface.ShowMap()
	s.showScore()
	s.surface.WriteText(i18n.T("INSTRUCTIONS"), renderer.InstructionsPos, renderer.StyleSubtle)

	s.logger.Info("session started with %d entities", s.game.Total)
}

// Run starts the session and prompts for guesses until it reaches a
// terminal state. A prompt error ends Run without changing the state.
func (s *Session) Run(ctx context.Context) error {
	s.Start()

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		title, prompt := s.promptText()
		answer, err := s.surface.Prompt(ctx, title, prompt)
		if err != nil {
			s.logger.Info("prompt ended: %v", err)
			return err
		}

		s.Submit(answer)
	}

	snap := s.Snapshot()
	s.logger.Info("session %s with %d/%d", snap.Status, snap.Score, snap.Total)
	return nil
}

// Submit applies one line of input to the session
func (s *Session) Submit(raw string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Status.IsTerminal() {
		return OutcomeClosed
	}

	intent := engineinput.Classify(s.opts.Device, raw)

	var outcome Outcome
	switch intent.Action {
	case engineinput.ActionNone:
		outcome = OutcomeIgnored
	case engineinput.ActionQuit:
		s.end()
		outcome = OutcomeQuit
	case engineinput.ActionReveal:
		s.end()
		outcome = OutcomeReveal
	case engineinput.ActionGuess:
		outcome = s.guess(intent.Text)
	}

	s.logger.Debug("%s %q -> %s (%d/%d)", engineinput.ActionName(intent.Action), intent.Text, outcome, s.game.Score, s.game.Total)
	return outcome
}

func (s *Session) guess(text string) Outcome {
	entity, ok := s.cat.Lookup(text)
	if !ok {
		s.surface.Flash(i18n.T("NOT_VALID"), renderer.FlashPos, renderer.StyleDenied, s.opts.MessageDelay)
		return OutcomeInvalid
	}

	if !s.game.MarkFound(entity.Name) {
		s.surface.Flash(i18n.T("ALREADY_GUESSED"), renderer.FlashPos, renderer.StyleWarning, s.opts.MessageDelay)
		return OutcomeDuplicate
	}

	s.surface.WriteText(entity.Name, entity.Pos, renderer.StyleCorrect)
	s.showScore()

	if s.game.Status == state.StatusWon {
		s.surface.WriteText(i18n.T("VICTORY"), renderer.VictoryPos, renderer.StyleVictory)
		return OutcomeWon
	}
	return OutcomeCorrect
}

// end reveals every entity that was not found and shows the summary
func (s *Session) end() {
	s.game.End()

	for _, e := range s.cat.Entities() {
		if s.game.HasFound(e.Name) {
			continue
		}
		s.surface.WriteText(e.Name, e.Pos, renderer.StyleMissed)
	}

	s.surface.WriteText(i18n.T("GAME_OVER", s.game.Score, s.game.Total), renderer.SummaryPos, renderer.StyleSummary)
}

func (s *Session) showScore() {
	s.surface.ShowScore(i18n.T("SCORE_BANNER", s.game.Score, s.game.Total))
}

func (s *Session) promptText() (title, prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return i18n.T("PROMPT_TITLE", s.game.Score, s.game.Total), i18n.T("PROMPT")
}

// Done reports whether the session has reached a terminal state
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Status.IsTerminal()
}

// Missed returns the names not found, in catalog order
func (s *Session) Missed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Missed(s.cat.Names())
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := make([]string, len(s.game.FoundOrder))
	copy(found, s.game.FoundOrder)

	return Snapshot{
		Status: s.game.Status,
		Score:  s.game.Score,
		Total:  s.game.Total,
		Found:  found,
	}
}

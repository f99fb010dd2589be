package wordle

import (
	"fmt"

	"github.com/rs/zerolog"
)

type State uint8

const (
	InProgress State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "in progress"
}

// Session is one game: the remaining candidates and the constraints that produced them
type Session struct {
	constraints *ConstraintSet
	candidates  []string
	filter      Filter
	state       State
	solved      bool
	log         zerolog.Logger
}

type Option func(*Session)

// WithFilter replaces the default Scan filter
func WithFilter(f Filter) Option {
	return func(s *Session) { s.filter = f }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithWordLength sets the number of letters per word, DefaultWordLength otherwise
func WithWordLength(n int) Option {
	return func(s *Session) { s.constraints = NewConstraintSet(n) }
}

// NewSession starts a game on a copy of dictionary. Every word must have the
// session word length, this is not checked.
func NewSession(dictionary []string, opts ...Option) *Session {
	ret := &Session{
		candidates: append([]string{}, dictionary...),
		filter:     Scan,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.constraints == nil {
		ret.constraints = NewConstraintSet(DefaultWordLength)
	}
	if len(ret.candidates) == 0 {
		ret.state = Terminated
	}
	return ret
}

// ApplyTurn records the feedback of one guess and narrows the candidates.
// A malformed turn is rejected as a whole.
func (s *Session) ApplyTurn(turn Turn) error {
	if s.state == Terminated {
		return ErrSessionTerminated
	}
	if len(turn) != s.constraints.Len() {
		return fmt.Errorf("%w: %d marks for %d positions", ErrMalformedTurn, len(turn), s.constraints.Len())
	}
	for _, m := range turn {
		if err := s.constraints.RecordFeedback(m.Position, m.Letter, m.Feedback); err != nil {
			s.constraints.DiscardTurn()
			return err
		}
	}
	guess, err := s.constraints.FinalizeTurn()
	if err != nil {
		s.constraints.DiscardTurn()
		return err
	}

	before := len(s.candidates)
	s.candidates = s.filter.Evaluate(s.constraints, s.candidates)
	s.log.Debug().
		Int("turn", s.constraints.Turns()).
		Str("guess", guess).
		Str("colors", turn.Colors()).
		Int("before", before).
		Int("after", len(s.candidates)).
		Msg("turn applied")
	if len(s.candidates) == 0 {
		s.state = Terminated
		s.log.Info().Str("guess", guess).Msg("no candidates remain")
	}
	return nil
}

// MarkSolved ends the game because the player has won
func (s *Session) MarkSolved() {
	s.solved = true
	s.state = Terminated
}

func (s *Session) Solved() bool {
	return s.solved
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) IsTerminated() bool {
	return s.state == Terminated
}

func (s *Session) LastGuess() string {
	return s.constraints.LastGuess()
}

func (s *Session) Turns() int {
	return s.constraints.Turns()
}

func (s *Session) WordLength() int {
	return s.constraints.Len()
}

// Candidates returns a copy of the remaining words in dictionary order
func (s *Session) Candidates() []string {
	return append([]string{}, s.candidates...)
}

// Constraints returns a copy of the accumulated knowledge, changes to it do not
// reach the session
func (s *Session) Constraints() *ConstraintSet {
	return s.constraints.Clone()
}

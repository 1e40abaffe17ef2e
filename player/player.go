package player

import (
	"errors"
	"fmt"
	"io"
	"time"

	"reversi/communication"
	"reversi/game"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrNotInitialised = errors.New("no init message received")
	ErrOutOfTurn      = errors.New("message does not match the side to move")
)

type Option func(p *Player)

// WithSeed makes move selection reproducible.
func WithSeed(seed uint64) Option {
	return func(p *Player) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

func WithSource(src rand.Source) Option {
	return func(p *Player) {
		if src != nil {
			p.rng = rand.New(src)
		}
	}
}

// WithTrace renders the local board to w after every applied action.
func WithTrace(w io.Writer, profile termenv.Profile) Option {
	return func(p *Player) {
		p.trace = w
		p.profile = profile
	}
}

// Player is a random agent. It mirrors the match on a local board and picks
// uniformly among the legal actions when asked to move.
type Player struct {
	side        game.Piece
	board       game.Board
	initialised bool
	result      *int
	rng         *rand.Rand
	trace       io.Writer
	profile     termenv.Profile
}

func New(options ...Option) *Player {
	p := &Player{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Side is the colour assigned by the last init message.
func (p *Player) Side() game.Piece {
	return p.side
}

// Board returns a copy of the local board.
func (p *Player) Board() game.Board {
	return p.board
}

// Result returns the margin reported by the referee, if any.
func (p *Player) Result() (int, bool) {
	if p.result == nil {
		return 0, false
	}
	return *p.result, true
}

// Handle reacts to one referee message. Only wait produces a reply.
func (p *Player) Handle(msg communication.Message) (*game.Action, error) {
	if msg.Kind == communication.InitMessage {
		p.side = msg.Piece()
		p.board = game.NewBoard()
		p.initialised = true
		p.result = nil
		log.Debug().Str("side", p.side.String()).Msg("new game")
		return nil, nil
	}
	if !p.initialised {
		return nil, fmt.Errorf("%s: %w", msg, ErrNotInitialised)
	}

	switch msg.Kind {
	case communication.PlayedMessage:
		if p.board.Active() == p.side {
			return nil, fmt.Errorf("%s: %w", msg, ErrOutOfTurn)
		}
		if err := p.apply(msg.Action); err != nil {
			return nil, fmt.Errorf("opponent %w", err)
		}
		return nil, nil
	case communication.ResMessage:
		result := msg.Result
		p.result = &result
		if local := p.board.Result(); !p.board.IsEnd() || local != result {
			log.Warn().Int("reported", result).Int("local", local).Bool("over", p.board.IsEnd()).
				Msg("referee result does not match local board")
		} else {
			log.Info().Int("result", result).Msg("game over")
		}
		return nil, nil
	case communication.WaitMessage:
		if p.board.Active() != p.side {
			return nil, fmt.Errorf("%s: %w", msg, ErrOutOfTurn)
		}
		action := p.TakeTurn()
		if err := p.apply(action); err != nil {
			return nil, err
		}
		return &action, nil
	default:
		return nil, fmt.Errorf("unexpected message kind %d", msg.Kind)
	}
}

// TakeTurn picks a legal action at random without playing it.
func (p *Player) TakeTurn() game.Action {
	actions := p.board.LegalActions()
	return actions[p.rng.Intn(len(actions))]
}

func (p *Player) apply(a game.Action) error {
	if err := p.board.Apply(a); err != nil {
		return err
	}
	log.Debug().Str("action", a.String()).Uint64("hash", uint64(p.board.Hash())).Msg("applied")
	if p.trace != nil {
		if err := p.board.Render(p.trace, p.profile); err != nil {
			log.Warn().Err(err).Msg("failed to render board")
		}
	}
	return nil
}

// Play runs the agent against comm until the referee closes the connection.
// Malformed lines are logged and skipped; moves that break the rules end the
// loop with an error.
func (p *Player) Play(comm communication.Communicator) error {
	for {
		msg, err := comm.Receive()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var parseErr *communication.ParseError
		if errors.As(err, &parseErr) {
			log.Warn().Err(err).Msg("ignoring input line")
			continue
		}
		if err != nil {
			return err
		}

		reply, err := p.Handle(msg)
		if err != nil {
			return fmt.Errorf("failed to handle %q: %w", msg, err)
		}
		if reply == nil {
			continue
		}
		if err := comm.Send(*reply); err != nil {
			return err
		}
	}
}

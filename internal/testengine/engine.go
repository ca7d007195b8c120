// Package testengine plays the judge side of the bot protocol in memory. It
// feeds scripted state lines to a bot over pipes and collects the turn
// batches the bot answers with, so bots and the client can be tested end to
// end without a game server.
package testengine

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/proboj/internal/core/observability/log"
	"github.com/zeusync/proboj/sdk/go/client"
	"github.com/zeusync/proboj/sdk/go/models"
	"github.com/zeusync/proboj/sdk/go/turn"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBotExited   = errors.New("bot exited before answering")
	ErrBadSentinel = errors.New("bot wrote a bad sentinel")
)

// BotProcess runs a bot on the given stdin and stdout until stdin is
// exhausted. It stands in for the bot executable.
type BotProcess func(stdin io.Reader, stdout io.Writer) error

// Tick is one exchange between the judge and the bot.
type Tick struct {
	Round  int
	State  []byte
	Digest uint64
	Raw    []byte
	Turns  []turn.Turn
}

// Engine is a scripted judge.
type Engine struct {
	logger log.Log
}

// New creates an engine. A nil logger discards output.
func New(logger log.Log) *Engine {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Engine{logger: logger.With(log.String("component", "testengine"))}
}

// Run sends each state to bot in order, reads one turn batch per state and
// then closes the bot's stdin. It returns once the bot has exited. If the bot
// fails, its error is returned.
func (e *Engine) Run(ctx context.Context, states [][]byte, bot BotProcess) ([]Tick, error) {
	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()

	stop := context.AfterFunc(ctx, func() {
		_ = stdinW.CloseWithError(ctx.Err())
		_ = stdoutR.CloseWithError(ctx.Err())
	})
	defer stop()

	g := &errgroup.Group{}
	g.Go(func() error {
		err := bot(stdinR, stdoutW)
		if err == nil {
			err = ErrBotExited
		}
		_ = stdinR.CloseWithError(err)
		_ = stdoutW.CloseWithError(err)
		if errors.Is(err, ErrBotExited) {
			return nil
		}
		return err
	})

	ticks := make([]Tick, 0, len(states))
	g.Go(func() error {
		defer stdinW.Close()

		out := bufio.NewReader(stdoutR)
		for i, state := range states {
			tick, err := e.exchange(out, stdinW, state)
			if err != nil {
				return fmt.Errorf("tick %d: %w", i, err)
			}
			ticks = append(ticks, tick)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ticks, ctxErr
		}
		return ticks, err
	}
	return ticks, nil
}

func (e *Engine) exchange(out *bufio.Reader, in io.Writer, state []byte) (Tick, error) {
	tick := Tick{State: state, Digest: xxhash.Sum64(state)}

	var header struct {
		Map struct {
			Round int `json:"round"`
		} `json:"map"`
	}
	if err := json.Unmarshal(state, &header); err == nil {
		tick.Round = header.Map.Round
	}

	if _, err := in.Write(frame(state)); err != nil {
		return tick, err
	}

	raw, err := readLine(out)
	if err != nil {
		return tick, err
	}
	sentinel, err := readLine(out)
	if err != nil {
		return tick, err
	}
	if string(sentinel) != client.Sentinel {
		return tick, fmt.Errorf("%w: %q", ErrBadSentinel, sentinel)
	}

	tick.Raw = raw
	if tick.Turns, err = turn.Decode(raw); err != nil {
		return tick, err
	}

	e.logger.Debug("Tick exchanged",
		log.Int("round", tick.Round),
		log.Uint64("digest", tick.Digest),
		log.Int("turns", len(tick.Turns)))
	return tick, nil
}

// EncodeState renders a snapshot as a state line. Map entries become slots
// at their key, and gaps are filled with null.
func EncodeState(s *models.Snapshot) ([]byte, error) {
	return json.Marshal(client.StateMessage{
		Map: client.MapState{
			Radius:    s.Radius,
			Ships:     slots(s.Ships),
			Asteroids: slots(s.Asteroids),
			Wormholes: slots(s.Wormholes),
			Players:   slots(s.Players),
			Round:     s.Round,
		},
		PlayerID: s.PlayerID,
	})
}

func slots[K ~int, V any](m map[K]V) []*V {
	size := 0
	for k := range m {
		size = max(size, int(k)+1)
	}
	out := make([]*V, size)
	for k, v := range m {
		out[k] = &v
	}
	return out
}

func frame(state []byte) []byte {
	msg := make([]byte, 0, len(state)+3)
	msg = append(msg, state...)
	return append(msg, "\n"+client.Sentinel+"\n"...)
}

func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBotExited
		}
		return nil, err
	}
	return bytes.TrimSuffix(line, []byte("\n")), nil
}

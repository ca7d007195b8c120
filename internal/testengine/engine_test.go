package testengine

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/proboj/internal/core/observability/log"
	"github.com/zeusync/proboj/pkg/physics"
	"github.com/zeusync/proboj/sdk/go/client"
	"github.com/zeusync/proboj/sdk/go/models"
	"github.com/zeusync/proboj/sdk/go/turn"
)

func testSnapshot(round int) *models.Snapshot {
	mother := models.Ship{
		ID:       0,
		PlayerID: 0,
		Position: physics.Vec2{X: 10, Y: 10},
		Health:   100,
		Fuel:     1000,
		Type:     models.ShipTypeMother,
		Rock:     1000,
	}
	return &models.Snapshot{
		Radius: 15000,
		Ships: map[models.ShipID]models.Ship{
			2: {ID: 2, PlayerID: 0, Position: physics.Vec2{X: 5, Y: 5}, Health: 100, Fuel: 100, Type: models.ShipTypeDrill},
		},
		Asteroids: map[models.AsteroidID]models.Asteroid{
			1: {ID: 1, Position: physics.Vec2{X: 100}, Type: models.AsteroidTypeRock, Size: 30, OwnerID: models.Unclaimed},
		},
		Wormholes: map[models.WormholeID]models.Wormhole{
			0: {ID: 0, TargetID: 1, Position: physics.Vec2{X: -50, Y: 50}},
			1: {ID: 1, TargetID: 0, Position: physics.Vec2{X: 500, Y: -500}},
		},
		Players: map[models.PlayerID]models.Player{
			0: {ID: 0, Name: "x", Color: "red", Mothership: mother, Alive: true},
		},
		Round:    round,
		PlayerID: 0,
	}
}

func clientBot(bot client.Bot) BotProcess {
	return func(stdin io.Reader, stdout io.Writer) error {
		return client.New(stdin, stdout, client.DefaultConfig(), log.NewNop()).Loop(bot)
	}
}

func TestEncodeState_RoundTrip(t *testing.T) {
	want := testSnapshot(7)

	line, err := EncodeState(want)
	require.NoError(t, err)
	assert.Contains(t, string(line), `"ships":[null,null,{`)
	assert.Contains(t, string(line), `"asteroids":[null,{`)

	got, err := client.ParseState(line)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEngine_Run(t *testing.T) {
	var states [][]byte
	for round := 1; round <= 3; round++ {
		line, err := EncodeState(testSnapshot(round))
		require.NoError(t, err)
		states = append(states, line)
	}

	bot := client.BotFunc(func(s *models.Snapshot) []turn.Turn {
		turns := []turn.Turn{turn.Buy(models.ShipTypeDrill)}
		for _, ship := range s.OwnShips() {
			turns = append(turns, turn.Move(ship.ID, physics.Vec2{X: float64(s.Round)}))
		}
		return turns
	})

	ticks, err := New(nil).Run(context.Background(), states, clientBot(bot))
	require.NoError(t, err)
	require.Len(t, ticks, 3)

	for i, tick := range ticks {
		assert.Equal(t, i+1, tick.Round)
		assert.Equal(t, xxhash.Sum64(states[i]), tick.Digest)
		assert.Equal(t, []turn.Turn{
			turn.Buy(models.ShipTypeDrill),
			turn.Move(2, physics.Vec2{X: float64(i + 1)}),
		}, tick.Turns)
	}
	assert.Equal(t, `[{"type":0,"data":{"type":2}},{"type":1,"data":{"ship_id":2,"vector":{"x":1.0,"y":0.0}}}]`, string(ticks[0].Raw))
}

func TestEngine_Run_NoStates(t *testing.T) {
	called := false
	bot := client.BotFunc(func(*models.Snapshot) []turn.Turn {
		called = true
		return nil
	})

	ticks, err := New(nil).Run(context.Background(), nil, clientBot(bot))
	require.NoError(t, err)
	assert.Empty(t, ticks)
	assert.False(t, called)
}

func TestEngine_Run_BotError(t *testing.T) {
	state, err := EncodeState(testSnapshot(1))
	require.NoError(t, err)

	_, err = New(nil).Run(context.Background(), [][]byte{[]byte(`{"map":{}}`), state}, clientBot(client.BotFunc(func(*models.Snapshot) []turn.Turn {
		return nil
	})))
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrSchemaMismatch)
}

func TestEngine_Run_BotExitsEarly(t *testing.T) {
	state, err := EncodeState(testSnapshot(1))
	require.NoError(t, err)

	quitter := func(stdin io.Reader, stdout io.Writer) error {
		return nil
	}

	_, err = New(nil).Run(context.Background(), [][]byte{state}, quitter)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBotExited)
}

func TestEngine_Run_BadSentinel(t *testing.T) {
	state, err := EncodeState(testSnapshot(1))
	require.NoError(t, err)

	sloppy := func(stdin io.Reader, stdout io.Writer) error {
		buf := make([]byte, len(state)+3)
		if _, err := io.ReadFull(stdin, buf); err != nil {
			return err
		}
		_, err := io.WriteString(stdout, "[]\n..\n")
		return err
	}

	_, err = New(nil).Run(context.Background(), [][]byte{state}, sloppy)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadSentinel)
}

func TestEngine_Run_ContextCancel(t *testing.T) {
	state, err := EncodeState(testSnapshot(1))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	stuck := func(stdin io.Reader, stdout io.Writer) error {
		_, err := io.ReadAll(stdin)
		return err
	}

	_, err = New(nil).Run(ctx, [][]byte{state}, stuck)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

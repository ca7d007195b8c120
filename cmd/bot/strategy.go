package main

import (
	"github.com/zeusync/proboj/pkg/physics"
	"github.com/zeusync/proboj/sdk/go/models"
	"github.com/zeusync/proboj/sdk/go/rules"
	"github.com/zeusync/proboj/sdk/go/turn"
)

var rallyPoint = physics.Vec2{X: 100, Y: 100}

type rallyBot struct {
	target          physics.Vec2
	maxAcceleration float64
}

func newRallyBot(constants rules.Constants) *rallyBot {
	return &rallyBot{
		target:          rallyPoint,
		maxAcceleration: constants.ShipMovementFreeSize,
	}
}

// Turn buys a drill and accelerates each own ship except the mothership
// toward the target, using no more than the fuel-free acceleration.
func (b *rallyBot) Turn(state *models.Snapshot) []turn.Turn {
	turns := []turn.Turn{turn.Buy(models.ShipTypeDrill)}

	mothership := state.Mothership().ID
	for _, ship := range state.OwnShips() {
		if ship.ID == mothership {
			continue
		}
		acceleration := b.target.Sub(ship.Position).ClampMagnitude(b.maxAcceleration)
		turns = append(turns, turn.Move(ship.ID, acceleration))
	}
	return turns
}

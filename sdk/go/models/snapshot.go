package models

import (
	"cmp"
	"slices"
)

// Snapshot is the complete world state of one tick as seen by this bot.
type Snapshot struct {
	Radius    float64
	Ships     map[ShipID]Ship
	Asteroids map[AsteroidID]Asteroid
	Wormholes map[WormholeID]Wormhole
	Players   map[PlayerID]Player
	Round     int
	// PlayerID is the id of the player this bot controls.
	PlayerID PlayerID
}

// Me returns the player controlled by this bot.
func (s *Snapshot) Me() Player {
	return s.Players[s.PlayerID]
}

// Mothership returns this bot's mothership as embedded in its player record.
func (s *Snapshot) Mothership() Ship {
	return s.Me().Mothership
}

// OwnShips returns the ships owned by this bot ordered by id.
func (s *Snapshot) OwnShips() []Ship {
	return s.ShipsOf(s.PlayerID)
}

// ShipsOf returns the ships owned by player ordered by id.
func (s *Snapshot) ShipsOf(player PlayerID) []Ship {
	ships := make([]Ship, 0)
	for _, ship := range s.Ships {
		if ship.PlayerID == player {
			ships = append(ships, ship)
		}
	}
	slices.SortFunc(ships, func(a, b Ship) int { return cmp.Compare(a.ID, b.ID) })
	return ships
}

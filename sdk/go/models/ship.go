package models

import "github.com/zeusync/proboj/pkg/physics"

// ShipType is the ship class discriminant used on the wire.
type ShipType int

const (
	ShipTypeMother ShipType = 0
	ShipTypeSucker ShipType = 1
	ShipTypeDrill  ShipType = 2
	ShipTypeTanker ShipType = 3
	ShipTypeTruck  ShipType = 4
	ShipTypeBattle ShipType = 5
)

// ShipTypes lists every ship class in discriminant order.
var ShipTypes = []ShipType{
	ShipTypeMother,
	ShipTypeSucker,
	ShipTypeDrill,
	ShipTypeTanker,
	ShipTypeTruck,
	ShipTypeBattle,
}

// Valid reports whether t is one of the known ship classes.
func (t ShipType) Valid() bool {
	return t >= ShipTypeMother && t <= ShipTypeBattle
}

func (t ShipType) String() string {
	switch t {
	case ShipTypeMother:
		return "mother"
	case ShipTypeSucker:
		return "sucker"
	case ShipTypeDrill:
		return "drill"
	case ShipTypeTanker:
		return "tanker"
	case ShipTypeTruck:
		return "truck"
	case ShipTypeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Ship is a single vessel on the map.
type Ship struct {
	ID          ShipID       `json:"id"`
	PlayerID    PlayerID     `json:"player"`
	Position    physics.Vec2 `json:"position"`
	Velocity    physics.Vec2 `json:"vector"`
	Health      int          `json:"health"`
	Fuel        float64      `json:"fuel"`
	Type        ShipType     `json:"type"`
	Rock        int          `json:"rock"`
	IsDestroyed bool         `json:"is_destroyed"`
}

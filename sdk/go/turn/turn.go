// Package turn defines the actions a bot submits each tick.
//
// Every action is one of six variants, each carrying a fixed wire
// discriminant. A batch is transmitted exactly as given: no deduplication,
// reordering or legality checks happen here, the judge alone decides what is
// allowed.
package turn

import (
	"github.com/zeusync/proboj/pkg/physics"
	"github.com/zeusync/proboj/sdk/go/models"
)

// Type is the wire discriminant of a turn variant.
type Type int

// Discriminants are part of the wire contract and are assigned explicitly.
const (
	TypeBuy    Type = 0
	TypeMove   Type = 1
	TypeLoad   Type = 2
	TypeSiphon Type = 3
	TypeShoot  Type = 4
	TypeRepair Type = 5
)

func (t Type) String() string {
	switch t {
	case TypeBuy:
		return "buy"
	case TypeMove:
		return "move"
	case TypeLoad:
		return "load"
	case TypeSiphon:
		return "siphon"
	case TypeShoot:
		return "shoot"
	case TypeRepair:
		return "repair"
	default:
		return "unknown"
	}
}

// Turn is one action. The set of implementations is closed to this package.
type Turn interface {
	Type() Type
	turn()
}

// BuyTurn purchases a new ship of the given class at the mothership.
type BuyTurn struct {
	ShipType models.ShipType `json:"type"`
}

// MoveTurn adds Acceleration to the ship's velocity.
type MoveTurn struct {
	ShipID       models.ShipID `json:"ship_id"`
	Acceleration physics.Vec2  `json:"vector"`
}

// LoadTurn moves rock between two ships.
type LoadTurn struct {
	SourceID      models.ShipID `json:"source_id"`
	DestinationID models.ShipID `json:"destination_id"`
	Amount        int           `json:"amount"`
}

// SiphonTurn moves fuel between two ships.
type SiphonTurn struct {
	SourceID      models.ShipID `json:"source_id"`
	DestinationID models.ShipID `json:"destination_id"`
	Amount        int           `json:"amount"`
}

// ShootTurn fires from SourceID at DestinationID.
type ShootTurn struct {
	SourceID      models.ShipID `json:"source_id"`
	DestinationID models.ShipID `json:"destination_id"`
}

// RepairTurn repairs a ship.
type RepairTurn struct {
	ShipID models.ShipID `json:"ship_id"`
}

func (BuyTurn) Type() Type    { return TypeBuy }
func (MoveTurn) Type() Type   { return TypeMove }
func (LoadTurn) Type() Type   { return TypeLoad }
func (SiphonTurn) Type() Type { return TypeSiphon }
func (ShootTurn) Type() Type  { return TypeShoot }
func (RepairTurn) Type() Type { return TypeRepair }

func (BuyTurn) turn()    {}
func (MoveTurn) turn()   {}
func (LoadTurn) turn()   {}
func (SiphonTurn) turn() {}
func (ShootTurn) turn()  {}
func (RepairTurn) turn() {}

// Buy returns a turn purchasing a ship of type shipType.
func Buy(shipType models.ShipType) Turn {
	return BuyTurn{ShipType: shipType}
}

// Move returns a turn accelerating ship by acceleration.
func Move(ship models.ShipID, acceleration physics.Vec2) Turn {
	return MoveTurn{ShipID: ship, Acceleration: acceleration}
}

// Load returns a turn transferring amount rock from source to destination.
func Load(source, destination models.ShipID, amount int) Turn {
	return LoadTurn{SourceID: source, DestinationID: destination, Amount: amount}
}

// Siphon returns a turn transferring amount fuel from source to destination.
func Siphon(source, destination models.ShipID, amount int) Turn {
	return SiphonTurn{SourceID: source, DestinationID: destination, Amount: amount}
}

// Shoot returns a turn firing from source at destination.
func Shoot(source, destination models.ShipID) Turn {
	return ShootTurn{SourceID: source, DestinationID: destination}
}

// Repair returns a turn repairing ship.
func Repair(ship models.ShipID) Turn {
	return RepairTurn{ShipID: ship}
}

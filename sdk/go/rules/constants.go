// Package rules carries the game constant table published with the judge.
//
// The table is data only. The judge enforces every rule; bots read these
// values to plan moves that the judge will accept.
package rules

// Version identifies the revision of the constant table below.
const Version = "2025.1"

// Constants is the versioned game constant table.
type Constants struct {
	Version string `json:"version" yaml:"version"`

	Radius float64 `json:"radius" yaml:"radius"`

	MaxAsteroidSize float64 `json:"max_asteroid_size" yaml:"max_asteroid_size"`
	MinAsteroidSize float64 `json:"min_asteroid_size" yaml:"min_asteroid_size"`
	AsteroidCount   int     `json:"asteroid_count" yaml:"asteroid_count"`
	WormholeCount   int     `json:"wormhole_count" yaml:"wormhole_count"`

	WormholeRadius           float64 `json:"wormhole_radius" yaml:"wormhole_radius"`
	WormholeTeleportDistance float64 `json:"wormhole_teleport_distance" yaml:"wormhole_teleport_distance"`

	ShipMiningDistance     float64 `json:"ship_mining_distance" yaml:"ship_mining_distance"`
	ShipMiningAmount       float64 `json:"ship_mining_amount" yaml:"ship_mining_amount"`
	ShipConqueringDistance float64 `json:"ship_conquering_distance" yaml:"ship_conquering_distance"`
	ShipConqueringRate     float64 `json:"ship_conquering_rate" yaml:"ship_conquering_rate"`

	ShipMaxHealth        int     `json:"ship_max_health" yaml:"ship_max_health"`
	ShipStartFuel        float64 `json:"ship_start_fuel" yaml:"ship_start_fuel"`
	ShipRockPrice        int     `json:"ship_rock_price" yaml:"ship_rock_price"`
	ShipMovementFreeSize float64 `json:"ship_movement_free_size" yaml:"ship_movement_free_size"`
	ShipMovementMaxSize  float64 `json:"ship_movement_max_size" yaml:"ship_movement_max_size"`
	ShipTransferDistance float64 `json:"ship_transfer_distance" yaml:"ship_transfer_distance"`
	ShipShootDistance    float64 `json:"ship_shoot_distance" yaml:"ship_shoot_distance"`
	ShipShootDamage      int     `json:"ship_shoot_damage" yaml:"ship_shoot_damage"`
	ShipRepairDistance   float64 `json:"ship_repair_distance" yaml:"ship_repair_distance"`
	ShipRepairAmount     int     `json:"ship_repair_amount" yaml:"ship_repair_amount"`
	ShipRepairRockCost   int     `json:"ship_repair_rock_cost" yaml:"ship_repair_rock_cost"`
}

// Default returns the constant table of the current Version.
func Default() Constants {
	const maxAsteroidSize = 50.0
	const wormholeRadius = 5.0

	return Constants{
		Version: Version,

		Radius: 15000,

		MaxAsteroidSize: maxAsteroidSize,
		MinAsteroidSize: maxAsteroidSize / 7 * 5,
		AsteroidCount:   500,
		WormholeCount:   25,

		WormholeRadius:           wormholeRadius,
		WormholeTeleportDistance: wormholeRadius * 2,

		ShipMiningDistance:     maxAsteroidSize,
		ShipMiningAmount:       10,
		ShipConqueringDistance: maxAsteroidSize,
		ShipConqueringRate:     10,

		ShipMaxHealth:        100,
		ShipStartFuel:        100,
		ShipRockPrice:        100,
		ShipMovementFreeSize: 1,
		ShipMovementMaxSize:  10000,
		ShipTransferDistance: 20,
		ShipShootDistance:    500,
		ShipShootDamage:      25,
		ShipRepairDistance:   50,
		ShipRepairAmount:     30,
		ShipRepairRockCost:   15,
	}
}

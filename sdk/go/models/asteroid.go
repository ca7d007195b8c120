package models

import "github.com/zeusync/proboj/pkg/physics"

// AsteroidType is the asteroid material discriminant used on the wire.
type AsteroidType int

const (
	AsteroidTypeRock AsteroidType = 0
	AsteroidTypeFuel AsteroidType = 1
)

// Valid reports whether t is one of the known asteroid materials.
func (t AsteroidType) Valid() bool {
	return t == AsteroidTypeRock || t == AsteroidTypeFuel
}

func (t AsteroidType) String() string {
	switch t {
	case AsteroidTypeRock:
		return "rock"
	case AsteroidTypeFuel:
		return "fuel"
	default:
		return "unknown"
	}
}

// Asteroid is a minable and conquerable body. OwnerID is Unclaimed until a
// player conquers it; Surface is the conquered surface area.
type Asteroid struct {
	ID       AsteroidID   `json:"id"`
	Position physics.Vec2 `json:"position"`
	Type     AsteroidType `json:"type"`
	Size     float64      `json:"size"`
	OwnerID  int          `json:"owner_id"`
	Surface  float64      `json:"surface"`
}

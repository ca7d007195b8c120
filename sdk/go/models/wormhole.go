package models

import "github.com/zeusync/proboj/pkg/physics"

// Wormhole teleports ships to its paired wormhole. Pairing is symmetric: the
// wormhole at TargetID points back at ID.
type Wormhole struct {
	ID       WormholeID   `json:"id"`
	TargetID WormholeID   `json:"target_id"`
	Position physics.Vec2 `json:"position"`
}

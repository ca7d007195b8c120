// Package models holds the world entities of one game tick.
//
// Records are plain values decoded from the judge's snapshot. Identifiers are
// distinct named types per entity kind and are only meaningful within the
// snapshot that produced them.
package models

// ShipID identifies a ship within one snapshot.
type ShipID int

// AsteroidID identifies an asteroid within one snapshot.
type AsteroidID int

// WormholeID identifies a wormhole within one snapshot.
type WormholeID int

// PlayerID identifies a player within one snapshot.
type PlayerID int

// Unclaimed is the asteroid owner id used while nobody holds the asteroid.
const Unclaimed = -1

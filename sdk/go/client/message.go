package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/zeusync/proboj/sdk/go/models"
)

// StateMessage is the wire shape of the first line of an inbound message.
type StateMessage struct {
	Map      MapState        `json:"map"`
	PlayerID models.PlayerID `json:"player_id"`
}

// MapState holds the per-kind entity arrays. A nil element is an absent
// slot; the element index is the entity id.
type MapState struct {
	Radius    float64            `json:"radius"`
	Ships     []*models.Ship     `json:"ships"`
	Asteroids []*models.Asteroid `json:"asteroids"`
	Wormholes []*models.Wormhole `json:"wormholes"`
	Players   []*models.Player   `json:"players"`
	Round     int                `json:"round"`
}

var stateMessageType = reflect.TypeOf(StateMessage{})

// ParseState decodes one state line into a Snapshot. Any mismatch with the
// expected message shape is returned as a schema *Error.
func ParseState(data []byte) (*models.Snapshot, error) {
	var msg StateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, schemaError("failed to decode state message", err)
	}
	if err := checkRequired(data, stateMessageType, "message"); err != nil {
		return nil, schemaError("state message is incomplete", err)
	}

	snapshot := &models.Snapshot{
		Radius:    msg.Map.Radius,
		Ships:     index[models.ShipID](msg.Map.Ships),
		Asteroids: index[models.AsteroidID](msg.Map.Asteroids),
		Wormholes: index[models.WormholeID](msg.Map.Wormholes),
		Players:   index[models.PlayerID](msg.Map.Players),
		Round:     msg.Map.Round,
		PlayerID:  msg.PlayerID,
	}
	if err := validate(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// index turns a sparse slot array into a map keyed by slot index, dropping
// absent slots.
func index[K ~int, V any](slots []*V) map[K]V {
	m := make(map[K]V, len(slots))
	for i, v := range slots {
		if v != nil {
			m[K(i)] = *v
		}
	}
	return m
}

func validate(s *models.Snapshot) error {
	for id, ship := range s.Ships {
		if err := checkShip(fmt.Sprintf("ship %d", id), ship); err != nil {
			return err
		}
	}
	for id, player := range s.Players {
		if player.ID < 0 {
			return negativeID(fmt.Sprintf("player %d", id), "id", int(player.ID))
		}
		if err := checkShip(fmt.Sprintf("mothership of player %d", id), player.Mothership); err != nil {
			return err
		}
	}
	for id, asteroid := range s.Asteroids {
		if asteroid.ID < 0 {
			return negativeID(fmt.Sprintf("asteroid %d", id), "id", int(asteroid.ID))
		}
		if !asteroid.Type.Valid() {
			return schemaError(fmt.Sprintf("asteroid %d has unknown type %d", id, asteroid.Type), nil)
		}
	}
	for id, wormhole := range s.Wormholes {
		if wormhole.ID < 0 {
			return negativeID(fmt.Sprintf("wormhole %d", id), "id", int(wormhole.ID))
		}
		if wormhole.TargetID < 0 {
			return negativeID(fmt.Sprintf("wormhole %d", id), "target_id", int(wormhole.TargetID))
		}
		target, ok := s.Wormholes[wormhole.TargetID]
		if !ok || wormhole.TargetID == id || target.TargetID != wormhole.ID {
			return schemaError(fmt.Sprintf("wormhole %d is not paired with wormhole %d", id, wormhole.TargetID), nil)
		}
	}
	if s.PlayerID < 0 {
		return negativeID("message", "player_id", int(s.PlayerID))
	}
	if _, ok := s.Players[s.PlayerID]; !ok {
		return schemaError(fmt.Sprintf("player_id %d is not among the players", s.PlayerID), nil)
	}
	return nil
}

// checkShip rejects negative ids and unknown types. Ids index the sparse
// arrays, so they are never negative.
func checkShip(name string, ship models.Ship) error {
	if ship.ID < 0 {
		return negativeID(name, "id", int(ship.ID))
	}
	if ship.PlayerID < 0 {
		return negativeID(name, "player", int(ship.PlayerID))
	}
	if !ship.Type.Valid() {
		return schemaError(fmt.Sprintf("%s has unknown type %d", name, ship.Type), nil)
	}
	return nil
}

func negativeID(name, field string, value int) *Error {
	return schemaError(fmt.Sprintf("%s has negative %s %d", name, field, value), nil)
}

// checkRequired verifies that every json-tagged field of t is present in
// data and is not null. Pointer-typed values may be null.
func checkRequired(data []byte, t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Pointer:
		if isNull(data) {
			return nil
		}
		return checkRequired(data, t.Elem(), path)

	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for i, item := range items {
			if err := checkRequired(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}

	case reflect.Struct:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, optional := jsonField(f)
			if name == "" || optional {
				continue
			}
			raw, ok := fields[name]
			if !ok || (isNull(raw) && f.Type.Kind() != reflect.Pointer) {
				return fmt.Errorf("%s: missing field %q", path, name)
			}
			if err := checkRequired(raw, f.Type, path+"."+name); err != nil {
				return err
			}
		}
	}
	return nil
}

func jsonField(f reflect.StructField) (name string, optional bool) {
	if !f.IsExported() {
		return "", false
	}
	name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		name = f.Name
	}
	return name, strings.Contains(opts, "omitempty")
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

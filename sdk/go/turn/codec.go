package turn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNilTurn     = errors.New("nil turn")
	ErrUnknownType = errors.New("unknown turn type")
	ErrMissingData = errors.New("missing turn data")
)

// Container is the tagged wire form of a single turn.
type Container struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Encode renders turns as a single JSON array, preserving order. An empty or
// nil batch encodes as [].
func Encode(turns []Turn) ([]byte, error) {
	containers := make([]Container, 0, len(turns))
	for i, t := range turns {
		if t == nil {
			return nil, fmt.Errorf("turn %d: %w", i, ErrNilTurn)
		}
		data, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("turn %d (%s): %w", i, t.Type(), err)
		}
		containers = append(containers, Container{Type: t.Type(), Data: data})
	}
	return json.Marshal(containers)
}

// Decode parses a JSON array of tagged turns.
func Decode(data []byte) ([]Turn, error) {
	var containers []Container
	if err := json.Unmarshal(data, &containers); err != nil {
		return nil, fmt.Errorf("failed to decode turn batch: %w", err)
	}

	turns := make([]Turn, 0, len(containers))
	for i, c := range containers {
		t, err := DecodeContainer(c)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// DecodeContainer resolves a single container into its typed variant.
func DecodeContainer(c Container) (Turn, error) {
	switch c.Type {
	case TypeBuy:
		return decodeData[BuyTurn](c.Data)
	case TypeMove:
		return decodeData[MoveTurn](c.Data)
	case TypeLoad:
		return decodeData[LoadTurn](c.Data)
	case TypeSiphon:
		return decodeData[SiphonTurn](c.Data)
	case TypeShoot:
		return decodeData[ShootTurn](c.Data)
	case TypeRepair:
		return decodeData[RepairTurn](c.Data)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownType, c.Type)
}

func decodeData[T Turn](data json.RawMessage) (Turn, error) {
	var t T
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, t.Type())
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode %s data: %w", t.Type(), err)
	}
	return t, nil
}

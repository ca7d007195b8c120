package models

// Player is a competitor together with its mothership.
type Player struct {
	ID         PlayerID `json:"id"`
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	Mothership Ship     `json:"mothership"`
	Alive      bool     `json:"alive"`
	Score      int      `json:"score"`
}

package client

import (
	"strconv"
	"strings"
)

const (
	motherJSON    = `{"id":0,"player":0,"position":{"x":10.0,"y":10.0},"vector":{"x":0.0,"y":0.0},"health":100,"fuel":1000.0,"type":0,"rock":1000,"is_destroyed":false}`
	drillJSON     = `{"id":1,"player":0,"position":{"x":1.5,"y":-2.0},"vector":{"x":0.5,"y":0.0},"health":80,"fuel":42.5,"type":2,"rock":7,"is_destroyed":false}`
	asteroidJSON  = `{"id":0,"position":{"x":100.0,"y":0.0},"type":1,"size":40.0,"owner_id":-1,"surface":0.0}`
	wormholesJSON = `{"id":0,"target_id":1,"position":{"x":-50.0,"y":50.0}},{"id":1,"target_id":0,"position":{"x":500.0,"y":-500.0}}`
	playerJSON    = `{"id":0,"name":"x","color":"red","mothership":` + motherJSON + `,"alive":true,"score":0}`
)

type stateFixture struct {
	ships     string
	asteroids string
	wormholes string
	players   string
	round     int
	playerID  int
}

func defaultFixture() stateFixture {
	return stateFixture{
		ships:     "null," + drillJSON + ",null",
		asteroids: asteroidJSON,
		wormholes: wormholesJSON,
		players:   playerJSON,
		round:     1,
		playerID:  0,
	}
}

func (f stateFixture) line() string {
	var b strings.Builder
	b.WriteString(`{"map":{"radius":15000.0,"ships":[`)
	b.WriteString(f.ships)
	b.WriteString(`],"asteroids":[`)
	b.WriteString(f.asteroids)
	b.WriteString(`],"wormholes":[`)
	b.WriteString(f.wormholes)
	b.WriteString(`],"players":[`)
	b.WriteString(f.players)
	b.WriteString(`],"round":`)
	b.WriteString(strconv.Itoa(f.round))
	b.WriteString(`},"player_id":`)
	b.WriteString(strconv.Itoa(f.playerID))
	b.WriteString(`}`)
	return b.String()
}

func (f stateFixture) message() string {
	return f.line() + "\n.\n"
}

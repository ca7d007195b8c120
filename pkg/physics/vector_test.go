package physics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

var samples = []Vec2{
	{0, 0},
	{1, 0},
	{0, -1},
	{3, 4},
	{-120.5, 33.25},
	{1e-3, -7e-4},
	{15000, -15000},
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{-3, 5}

	assert.Equal(t, Vec2{-2, 7}, a.Add(b))
	assert.Equal(t, Vec2{4, -3}, a.Sub(b))
	assert.Equal(t, Vec2{2.5, 5}, a.Scale(2.5))
	assert.Equal(t, a.Scale(-4), Mul(-4, a), "scalar multiplication must commute")
	assert.Equal(t, 13.0, a.Dot(b))
	assert.Equal(t, Vec2{}, Zero)
}

func TestVec2_DistanceAndMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, Vec2{3, 4}.Magnitude())
	assert.Equal(t, 5.0, Vec2{1, 1}.Distance(Vec2{4, 5}))
	assert.Equal(t, 0.0, Zero.Magnitude())

	for _, v := range samples {
		assert.InDelta(t, v.Magnitude(), v.Distance(Zero), tolerance)
	}
}

func TestVec2_Normalize(t *testing.T) {
	for _, v := range samples {
		if v.IsZero() {
			continue
		}
		n := v.Normalize()
		assert.InDelta(t, 1.0, n.Magnitude(), tolerance, "normalize(%v)", v)
		assert.InDelta(t, v.Angle(), n.Angle(), tolerance)
	}

	n := Zero.Normalize()
	assert.False(t, n.IsFinite(), "zero vector has no direction")
}

func TestVec2_Rotate(t *testing.T) {
	for _, v := range samples {
		r := v.Rotate(0)
		assert.InDelta(t, v.X, r.X, tolerance)
		assert.InDelta(t, v.Y, r.Y, tolerance)

		for _, angle := range []float64{math.Pi / 6, math.Pi / 2, math.Pi, -2.5, 10} {
			assert.InDelta(t, v.Magnitude(), v.Rotate(angle).Magnitude(), 1e-6)
		}
	}

	quarter := Vec2{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, quarter.X, tolerance)
	assert.InDelta(t, 1, quarter.Y, tolerance)
}

func TestVec2_ClampMagnitude(t *testing.T) {
	caps := []float64{0, 0.5, 1, 5, 100, 1e6}
	for _, v := range samples {
		for _, m := range caps {
			c := v.ClampMagnitude(m)
			if v.Magnitude() <= m {
				assert.Equal(t, v, c, "clamp(%v, %v) must not touch short vectors", v, m)
				continue
			}
			assert.InDelta(t, m, c.Magnitude(), 1e-6, "clamp(%v, %v)", v, m)
		}
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi, 2)
	assert.InDelta(t, -2, v.X, tolerance)
	assert.InDelta(t, 0, v.Y, tolerance)
}

func TestVec2_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want string
	}{
		{"integral", Vec2{1, 0}, `{"x":1.0,"y":0.0}`},
		{"fractional", Vec2{-2.5, 0.125}, `{"x":-2.5,"y":0.125}`},
		{"large", Vec2{15000, -15000}, `{"x":15000.0,"y":-15000.0}`},
		{"tiny", Vec2{1e-9, 0}, `{"x":1e-9,"y":0.0}`},
		{"huge", Vec2{1e21, 0}, `{"x":1e+21,"y":0.0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Vec2
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestVec2_MarshalJSON_NonFinite(t *testing.T) {
	_, err := json.Marshal(Vec2{math.NaN(), 0})
	assert.Error(t, err)

	_, err = json.Marshal(Vec2{0, math.Inf(1)})
	assert.Error(t, err)
}

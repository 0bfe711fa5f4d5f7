package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveScore(t *testing.T) {
	tests := []struct {
		name   string
		sleep  int
		energy int
		mood   int
		stress int
		want   int
	}{
		{"best possible day", 10, 10, 10, 1, 100},
		{"worst possible day", 1, 1, 1, 10, 10},
		{"all middling", 5, 5, 5, 5, 53},
		{"stress inverts", 5, 5, 5, 1, 63},
		{"green boundary", 7, 7, 7, 4, 70},
		{"rounds half up", 1, 1, 1, 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveScore(tt.sleep, tt.energy, tt.mood, tt.stress))
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusGreen, DeriveStatus(100))
	assert.Equal(t, StatusGreen, DeriveStatus(70))
	assert.Equal(t, StatusYellow, DeriveStatus(69))
	assert.Equal(t, StatusYellow, DeriveStatus(45))
	assert.Equal(t, StatusRed, DeriveStatus(44))
	assert.Equal(t, StatusRed, DeriveStatus(0))
}

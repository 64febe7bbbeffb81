package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDomeCapacity(t *testing.T) {
	tests := []struct {
		rows       int
		seatsInRow int
		expected   int
	}{
		{5, 10, 50},
		{1, 1, 1},
		{20, 30, 600},
	}
	for _, test := range tests {
		dome := PlanetariumDome{Rows: test.rows, SeatsInRow: test.seatsInRow}
		assert.Equal(t, test.expected, dome.Capacity())
	}
}

func TestSessionString(t *testing.T) {
	showTime := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)
	session := ShowSession{
		AstronomyShow: &AstronomyShow{Title: "Journey to Mars"},
		ShowTime:      showTime,
	}
	assert.Equal(t, "Journey to Mars 2025-06-01T19:30:00Z", session.String())
}

func TestSessionStringWithoutShow(t *testing.T) {
	session := ShowSession{ShowTime: time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)}
	assert.Equal(t, "? 2025-06-01T19:30:00Z", session.String())
}

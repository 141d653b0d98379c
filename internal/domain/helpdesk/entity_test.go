package helpdesk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusClosed, true},
		{StatusOpen, StatusResolved, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusClosed, true},
		{StatusInProgress, StatusOpen, false},
		{StatusResolved, StatusClosed, true},
		{StatusResolved, StatusInProgress, true},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusInProgress, false},
		{StatusOpen, StatusOpen, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

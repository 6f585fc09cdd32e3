package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnboardingPaging(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		step     func(*OnboardingData)
		wantPage int
		wantLast bool
	}{
		{"next from first", 0, (*OnboardingData).NextPage, 1, false},
		{"next onto last", 1, (*OnboardingData).NextPage, 2, true},
		{"next stops at last", 2, (*OnboardingData).NextPage, 2, true},
		{"previous from last", 2, (*OnboardingData).PreviousPage, 1, false},
		{"previous stops at first", 0, (*OnboardingData).PreviousPage, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &OnboardingData{Page: tt.start, Pages: 3}
			tt.step(o)
			assert.Equal(t, tt.wantPage, o.Page)
			assert.Equal(t, tt.wantLast, o.LastPage())
		})
	}
}

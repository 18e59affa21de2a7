package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		logs       []Log
		want       int
	}{
		{
			name:       "no categories yields zero",
			categories: nil,
			logs:       nil,
			want:       0,
		},
		{
			name:       "category without logs yields zero",
			categories: []Category{{ID: 1, Name: "a", Weight: 1}},
			logs:       nil,
			want:       0,
		},
		{
			name:       "perfect ratings yield 100",
			categories: []Category{{ID: 1, Name: "a", Weight: 1}},
			logs:       []Log{{CategoryID: 1, Rating: 10}},
			want:       100,
		},
		{
			name:       "average rating scales linearly",
			categories: []Category{{ID: 1, Name: "a", Weight: 1}},
			logs: []Log{
				{CategoryID: 1, Rating: 6},
				{CategoryID: 1, Rating: 8},
			},
			want: 70,
		},
		{
			name: "weights shift the blend",
			categories: []Category{
				{ID: 1, Name: "heavy", Weight: 3},
				{ID: 2, Name: "light", Weight: 1},
			},
			logs: []Log{
				{CategoryID: 1, Rating: 10},
				{CategoryID: 2, Rating: 2},
			},
			// (1.0*3 + 0.2*1) / 4 = 0.8
			want: 80,
		},
		{
			name: "unlogged category drags the score down",
			categories: []Category{
				{ID: 1, Name: "logged", Weight: 1},
				{ID: 2, Name: "silent", Weight: 1},
			},
			logs: []Log{{CategoryID: 1, Rating: 10}},
			want: 50,
		},
		{
			name:       "zero total weight falls back to one",
			categories: []Category{{ID: 1, Name: "weightless", Weight: 0}},
			logs:       []Log{{CategoryID: 1, Rating: 10}},
			want:       0,
		},
		{
			name:       "result rounds to nearest integer",
			categories: []Category{{ID: 1, Name: "a", Weight: 1}},
			logs: []Log{
				{CategoryID: 1, Rating: 7},
				{CategoryID: 1, Rating: 7},
				{CategoryID: 1, Rating: 6},
			},
			// avg 6.666... -> 66.66... -> 67
			want: 67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.categories, tt.logs))
		})
	}
}

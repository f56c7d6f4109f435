package service

import (
	"VibeCheck/internal/model"
	"reflect"
	"testing"
)

func votesOf(indexes ...int) []*model.Vote {
	votes := make([]*model.Vote, 0, len(indexes))
	for _, i := range indexes {
		votes = append(votes, &model.Vote{OptionIndex: i})
	}
	return votes
}

func TestTallyAndWinner(t *testing.T) {
	tests := []struct {
		name       string
		votes      []*model.Vote
		size       int
		wantTally  model.Tally
		wantWinner int
		wantOK     bool
	}{
		{
			name:       "empty",
			votes:      nil,
			size:       5,
			wantTally:  model.Tally{0, 0, 0, 0, 0},
			wantWinner: model.NoWinner,
			wantOK:     false,
		},
		{
			name:       "clear winner",
			votes:      votesOf(0, 0, 2),
			size:       5,
			wantTally:  model.Tally{2, 0, 1, 0, 0},
			wantWinner: 0,
			wantOK:     true,
		},
		{
			name:       "tie goes to lowest index",
			votes:      votesOf(1, 3),
			size:       5,
			wantTally:  model.Tally{0, 1, 0, 1, 0},
			wantWinner: 1,
			wantOK:     true,
		},
		{
			name:       "out of range ignored",
			votes:      votesOf(-1, 5, 9, 4),
			size:       5,
			wantTally:  model.Tally{0, 0, 0, 0, 1},
			wantWinner: 4,
			wantOK:     true,
		},
		{
			name:       "nil votes skipped",
			votes:      []*model.Vote{nil, {OptionIndex: 2}},
			size:       3,
			wantTally:  model.Tally{0, 0, 1},
			wantWinner: 2,
			wantOK:     true,
		},
		{
			name:       "empty catalog",
			votes:      votesOf(0),
			size:       0,
			wantTally:  model.Tally{},
			wantWinner: model.NoWinner,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := Tally(tt.votes, tt.size)
			if !reflect.DeepEqual(tally, tt.wantTally) {
				t.Errorf("Tally = %v, want %v", tally, tt.wantTally)
			}
			idx, ok := Winner(tally)
			if idx != tt.wantWinner || ok != tt.wantOK {
				t.Errorf("Winner = (%d, %v), want (%d, %v)", idx, ok, tt.wantWinner, tt.wantOK)
			}
		})
	}
}

func TestWinner_ZeroVoteIndexZeroIsNotAWinner(t *testing.T) {
	idx, ok := Winner(model.Tally{0, 0, 0})
	if ok {
		t.Fatalf("Winner reported index %d for all-zero tally", idx)
	}
	idx, ok = Winner(model.Tally{1, 0, 0})
	if !ok || idx != 0 {
		t.Fatalf("Winner = (%d, %v), want (0, true)", idx, ok)
	}
}

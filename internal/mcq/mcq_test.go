package mcq

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		q    MCQ
		want bool
	}{
		{
			name: "answer among options",
			q:    MCQ{Question: "q", Options: []string{"a", "b"}, Answer: "b"},
			want: true,
		},
		{
			name: "answer missing from options",
			q:    MCQ{Question: "q", Options: []string{"a", "b"}, Answer: "c"},
			want: false,
		},
		{
			name: "empty question",
			q:    MCQ{Options: []string{"a"}, Answer: "a"},
			want: false,
		},
		{
			name: "no options",
			q:    MCQ{Question: "q", Answer: "a"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnswerIndexTracksCurrentOrder(t *testing.T) {
	q := MCQ{Question: "q", Options: []string{"a", "b", "c"}, Answer: "c"}
	if got := q.AnswerIndex(); got != 2 {
		t.Errorf("AnswerIndex() = %d, want 2", got)
	}

	q.Options[0], q.Options[2] = q.Options[2], q.Options[0]
	if got := q.AnswerIndex(); got != 0 {
		t.Errorf("AnswerIndex() after swap = %d, want 0", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	q := MCQ{Question: "q", Options: []string{"a", "b"}, Answer: "a"}
	c := q.Clone()
	c.Options[0] = "changed"

	if q.Options[0] != "a" {
		t.Error("mutating the clone leaked into the original")
	}
}

package models

import "testing"

func TestQuizSession_Key(t *testing.T) {
	tests := []struct {
		name    string
		chatID  int64
		session int64
		want    int64
	}{
		{
			name:    "Small values",
			chatID:  7,
			session: 1000,
			want:    1007,
		},
		{
			name:    "Negative group id",
			chatID:  -1001234, // supergroup ids are negative
			session: 1700000000000,
			want:    1699998998766,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &QuizSession{ChatID: tt.chatID, Session: tt.session}
			if got := s.Key(); got != tt.want {
				t.Errorf("Key() = %d, want %d", got, tt.want)
			}
		})
	}
}

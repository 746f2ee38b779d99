package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mayones/quizbot/internal/models"
	"github.com/mayones/quizbot/pkg/utils"
)

// Fixed reply texts, kept byte-for-byte compatible with the original bot.
const (
	MsgGameInProgress = "Sedang ada game yang berlangsung. Tungguin dlu ya ~"
	MsgNoRoom         = "Belum ada room di grup ini. Klik /join untuk ikutan!"
	MsgNoSession      = "Belum ada game di grup ini."
	MsgNoScores       = "Belum ada yang dapat skor."
	MsgSlowDown       = "Pelan-pelan ya, banyak banget perintahnya ~"
)

// JoinMessage lists the room's players one per line and closes with the
// literal /join call to action.
func JoinMessage(players []models.Player) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, utils.DisplayName(p.Username, p.FirstName))
	}

	return "DOTA siap dimulai. Pemain:\n\t" + strings.Join(names, "\n") + "\n\n\tKlik /join untuk ikutan!\n\t"
}

// QuestionMessage announces a quiz question to the group.
func QuestionMessage(question string) string {
	return "Pertanyaan:\n\n" + question
}

// StartMessage opens a round with its first question.
func StartMessage(question string) string {
	return "Game dimulai!\n\n" + QuestionMessage(question)
}

// CorrectAnswerMessage congratulates the scoring player.
func CorrectAnswerMessage(name string) string {
	return fmt.Sprintf("Benar! +1 untuk %s", name)
}

// ScoreboardMessage renders the tally, highest first. Ties keep a stable
// alphabetical order so repeated renders agree.
func ScoreboardMessage(scores map[string]int64) string {
	if len(scores) == 0 {
		return MsgNoScores
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	sb.WriteString("Skor:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "%s: %d\n", name, scores[name])
	}
	return strings.TrimRight(sb.String(), "\n")
}

// GameOverMessage closes a round with the final tally.
func GameOverMessage(scores map[string]int64) string {
	return "Game selesai!\n\n" + ScoreboardMessage(scores)
}

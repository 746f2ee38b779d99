package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeText cleans player-supplied text (usernames, free-form
// answers) before it is stored or echoed into a group reply.
func SanitizeText(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	input = htmlPolicy.Sanitize(input)

	if len(input) > 255 {
		input = input[:255]
	}

	return input
}

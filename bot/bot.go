/* bot.go
 * Contains the Bot struct and the shared input parsing helpers. Requires a discord bot
 * token and an api pointer, both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"

	"racketlon-bot/api/api"
	"racketlon-bot/api/shared"

	"github.com/go-andiamo/splitter"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

// NewBot creates a bot bound to the given api instance
func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("api is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// splitArgs splits a command message into its arguments, honouring double quoted player
// names, and drops the leading command token
func splitArgs(content string) ([]string, error) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	tokens, err := spaceSplitter.Split(content)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	args := make([]string, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		token = strings.ReplaceAll(token, "\"", "")
		token = strings.ReplaceAll(token, "“", "")
		token = strings.ReplaceAll(token, "”", "")
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		args = append(args, token)
	}
	return args, nil
}

// parseMatchArgs turns command arguments into engine input.
// Expected form: four score tokens in sport order (table tennis, badminton, squash,
// tennis), using "-" or "x" for a sport not yet played, optionally followed by two
// player names.
func parseMatchArgs(args []string) (shared.MatchInput, error) {
	if len(args) != 4 && len(args) != 6 {
		return shared.MatchInput{}, fmt.Errorf("expected 4 scores (use - or x for an unplayed sport), optionally followed by 2 player names, but got %d arguments", len(args))
	}

	input := shared.MatchInput{Scores: make(map[shared.Sport]string, len(shared.SportOrder))}
	for i, sport := range shared.SportOrder {
		raw := args[i]
		if strings.EqualFold(raw, "x") {
			raw = ""
		}
		input.Scores[sport] = raw
	}

	if len(args) == 6 {
		input.PlayerA = args[4]
		input.PlayerB = args[5]
	}
	return input, nil
}

// startsWith checks if the input string starts with the given command prefix
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}

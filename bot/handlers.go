/* handlers.go
 * Contains testable handler methods that accept the DiscordSession interface
 */

package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"racketlon-bot/api/shared"

	"github.com/bwmarrin/discordgo"
)

// helpMessageHandler handles the $help command
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Racketlon Bot\n")
	res.WriteString("Scores are given in sport order: table tennis, badminton, squash, tennis. Use `-` or `x` for a sport not yet played. Names with spaces need double quotes.\n")
	res.WriteString("`$match 21-15 21-15 21-15 x \"Anna\" \"Ben\"`: analyse a live match: current standing, what score clinches it and when a gummiarm point looms\n")
	res.WriteString("`$save 21-15 18-21 21-12 14-21 \"Anna\" \"Ben\"`: analyse and save the match to the club history\n")
	res.WriteString("`$history \"Anna\"`: show the saved matches involving a player. Names are fuzzy matched\n")
	res.WriteString("`$record \"Anna\" \"Ben\"`: show the head to head record between two players\n")
	res.WriteString("`$scan <image-url>`: read a scorecard photo and analyse what it shows\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// matchHandler handles the $match command: parse the scores and reply with the full
// analysis report
func (b *Bot) matchHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Could not read that command")
		return
	}

	input, err := parseMatchArgs(args)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Invalid match: %s", err))
		return
	}

	session.ChannelMessageSend(message.ChannelID, b.APIPtr.ReportMatch(input))
}

// saveMatchHandler handles the $save command: analyse and persist under the invoking user
func (b *Bot) saveMatchHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Could not read that command")
		return
	}

	input, err := parseMatchArgs(args)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Invalid match: %s", err))
		return
	}

	result, err := b.APIPtr.SaveMatch(user, input)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("An error occurred saving %s's match", user.Username))
		return
	}

	session.ChannelMessageSend(message.ChannelID, "Match saved\n"+result.Report())
}

// historyHandler handles the $history command
func (b *Bot) historyHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) != 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $history \"Player Name\"")
		return
	}

	lines, err := b.APIPtr.MatchHistory(args[0])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not fetch history: %s", err))
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Saved matches for %s:\n", args[0]))
	for _, line := range lines {
		res.WriteString(line)
		res.WriteString("\n")
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// recordHandler handles the $record command
func (b *Bot) recordHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) != 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $record \"Player A\" \"Player B\"")
		return
	}

	summary, err := b.APIPtr.HeadToHead(args[0], args[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not fetch the record: %s", err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, summary)
}

// scanHandler handles the $scan command: run a scorecard photo through the OCR service
// and report what it showed. OCR problems are reported here; they never reach the engine.
func (b *Bot) scanHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) != 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $scan <image-url>")
		return
	}

	imported, err := b.APIPtr.ImportScorecard(context.Background(), args[0])
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "Could not read that scorecard")
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Scorecard read with %.0f%% confidence\n", imported.Guess.Confidence*100))
	res.WriteString(imported.Result.Report())
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// newMessageHandler routes messages to the appropriate handler.
// botUserID is the bot's user ID to prevent self-responses.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$match"):
		b.matchHandler(session, message)

	case startsWith(message.Content, "$save"):
		b.saveMatchHandler(session, message)

	case startsWith(message.Content, "$history"):
		b.historyHandler(session, message)

	case startsWith(message.Content, "$record"):
		b.recordHandler(session, message)

	case startsWith(message.Content, "$scan"):
		b.scanHandler(session, message)
	}
}

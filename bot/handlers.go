/* handlers.go
 * Contains testable handler methods that accept the DiscordSession interface.
 * The runtime wrapper in bot_runtime.go adapts these onto a live discordgo
 * session.
 */

package bot

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"flagbot/api/charts"
	"flagbot/api/logic"
	"flagbot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
	"go.mongodb.org/mongo-driver/mongo"
)

// newMessageHandler routes messages to the appropriate handler.
// botUserID is the bot's user ID to prevent self-responses.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	if message.Author.ID == botUserID || message.Author.Bot {
		return
	}
	if !strings.HasPrefix(message.Content, b.Opts.Prefix) {
		return
	}
	if !b.limiter.Allow(message.Author.ID) {
		return
	}

	command, args := b.parseCommand(message.Content)

	switch command {
	case "place", "p":
		b.placeHandler(session, message, args)

	case "edit", "e", "edit-rank":
		b.editRankHandler(session, message, args)

	case "rank", "r":
		b.rankHandler(session, message, args)

	case "leaderboard", "l", "rankings", "leader":
		b.leaderboardHandler(session, message, args)

	case "help", "commands":
		b.helpHandler(session, message)

	case "tips", "tricks":
		b.tipsHandler(session, message)
	}
}

// parseCommand strips the prefix and splits the message into a lowercased
// command name and its arguments. Quoted arguments stay intact so nicknames
// with spaces work, e.g. !rank "the flag king".
func (b *Bot) parseCommand(content string) (string, []string) {
	content = strings.TrimPrefix(content, b.Opts.Prefix)

	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	fields, err := spaceSplitter.Split(content)
	if err != nil {
		fields = strings.Fields(content)
	}

	var parts []string
	for _, field := range fields {
		field = strings.Trim(strings.TrimSpace(field), "\"")
		if field != "" {
			parts = append(parts, field)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// placeHandler handles the place command. Placements are only accepted in the
// window directly after a flag race starts.
func (b *Bot) placeHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	now := b.now().UTC()
	if !logic.InSubmissionWindow(now, b.Opts.RecordWindowMinutes) {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("This command is only usable within the first %d minutes after a flag race.", b.Opts.RecordWindowMinutes))
		return
	}

	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Not a valid placement. Please try again.")
		return
	}

	user := shared.User{UserId: message.Author.ID, Username: b.displayName(message)}
	receipt, err := b.APIPtr.RecordPlacement(user, args[0], now)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrInvalidPlacement):
			session.ChannelMessageSend(message.ChannelID, "Not a valid placement. Please try again.")
		case errors.Is(err, logic.ErrCooldown):
			session.ChannelMessageSend(message.ChannelID, "You have already recorded a placement for this race. Use edit to change it, or wait for the next race.")
		default:
			log.Println(err)
			session.ChannelMessageSend(message.ChannelID, "An unexpected error occured recording your placement")
		}
		return
	}

	res := fmt.Sprintf("You placed %d and earned %d points.", receipt.Rank, receipt.Points)
	if receipt.Rank == logic.NonFinish {
		res = fmt.Sprintf("You did not place and earned %d points.", receipt.Points)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// editRankHandler handles the edit command, replacing the user's most recent
// placement for this week
func (b *Bot) editRankHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Not a valid placement. Please try again.")
		return
	}

	user := shared.User{UserId: message.Author.ID, Username: b.displayName(message)}
	_, err := b.APIPtr.EditLastPlacement(user, args[0], b.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrInvalidPlacement):
			session.ChannelMessageSend(message.ChannelID, "Not a valid placement. Please try again.")
		case errors.Is(err, mongo.ErrNoDocuments), errors.Is(err, logic.ErrNoHistory):
			session.ChannelMessageSend(message.ChannelID, "There are currently no rankings to display.")
		case errors.Is(err, logic.ErrEditWindowClosed):
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You cannot edit your rankings anytime after %d minutes since your ranking placement input.", int(b.APIPtr.EditWindow.Minutes())))
		default:
			log.Println(err)
			session.ChannelMessageSend(message.ChannelID, "An unexpected error occured updating your placement")
		}
		return
	}

	session.ChannelMessageSend(message.ChannelID, "Successfully updated your latest flag placement.")
}

// rankHandler handles the rank command. With no arguments it shows the
// author's weekly standing; -m and -a switch to monthly and all-time stats,
// and a trailing nickname looks up another flagger.
func (b *Bot) rankHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	scopeToken := ""
	nameArgs := args
	if len(args) > 0 && strings.HasPrefix(args[0], "-") {
		scopeToken = args[0]
		nameArgs = args[1:]
	}

	scope := logic.ParseScope(scopeToken)
	if scope == logic.ScopeInvalid {
		session.ChannelMessageSend(message.ChannelID, "Valid ranking types are: weekly (-w), monthly (-m), or all-time (-a)")
		return
	}

	now := b.now().UTC()
	userID := message.Author.ID
	if len(nameArgs) > 0 {
		query := strings.Join(nameArgs, " ")
		matched, err := b.APIPtr.FindFlaggerByName(query, now)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No flagger found matching \"%s\".", query))
			} else {
				log.Println(err)
				session.ChannelMessageSend(message.ChannelID, "An unexpected error occured looking up that flagger")
			}
			return
		}
		userID = matched
	}

	if scope == logic.ScopeWeekly {
		b.sendWeeklyStats(session, message.ChannelID, userID, now)
		return
	}
	b.sendAggregateStats(session, message.ChannelID, userID, scope, now)
}

// sendWeeklyStats builds and sends the weekly standing embed for one user
func (b *Bot) sendWeeklyStats(session DiscordSession, channelID string, userID string, now time.Time) {
	stats, err := b.APIPtr.GetWeeklyStats(userID, now)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			session.ChannelMessageSend(channelID, "There are currently no rankings to display.")
		} else {
			log.Println(err)
			session.ChannelMessageSend(channelID, "An unexpected error occured getting weekly stats")
		}
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Weekly Stats", stats.Nickname),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Weekly Guild Rank", Value: fmt.Sprintf("%d", stats.Rank), Inline: true},
			{Name: "Points", Value: fmt.Sprintf("%d", stats.WeeklyPoints), Inline: true},
			{Name: "Placements", Value: formatPlacements(stats.Placements), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Week of %s", stats.Week)},
	}
	session.ChannelMessageSendEmbed(channelID, embed)
}

// sendAggregateStats builds and sends the monthly or all-time stats embed,
// with a donut chart of the placement distribution attached
func (b *Bot) sendAggregateStats(session DiscordSession, channelID string, userID string, scope logic.Scope, now time.Time) {
	stats, err := b.APIPtr.GetAggregateStats(userID, scope, now)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			session.ChannelMessageSend(channelID, "There are currently no rankings to display.")
		} else {
			log.Println(err)
			session.ChannelMessageSend(channelID, "An unexpected error occured getting stats")
		}
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Stats (%s)", stats.Stats.Nickname, stats.Label),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Points", Value: fmt.Sprintf("%d", stats.Stats.TotalPoints), Inline: true},
			{Name: "Races", Value: fmt.Sprintf("%d", stats.Stats.TotalRaces), Inline: true},
			{Name: "Avg Points / Race", Value: stats.Stats.AvgPointsPerRace, Inline: true},
			{Name: "Median Placement", Value: placementLabel(stats.Stats.MedianPlacement), Inline: true},
			{Name: "Best Week", Value: fmt.Sprintf("%s (%d points)", stats.Stats.BestWeek, stats.Stats.BestWeekPoints), Inline: true},
		},
	}

	png, err := charts.RenderPlacementChart(stats.Stats.Placements)
	if err != nil {
		log.Println("failed to render placement chart:", err)
		session.ChannelMessageSendEmbed(channelID, embed)
		return
	}

	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://placements.png"}
	session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embed: embed,
		Files: []*discordgo.File{
			{Name: "placements.png", ContentType: "image/png", Reader: bytes.NewReader(png)},
		},
	})
}

// leaderboardHandler handles the leaderboard command. Defaults to the weekly
// board; -m and -a switch scope.
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	scopeToken := ""
	if len(args) > 0 {
		scopeToken = args[0]
	}

	scope := logic.ParseScope(scopeToken)
	if scope == logic.ScopeInvalid {
		session.ChannelMessageSend(message.ChannelID, "Valid ranking types are: weekly (-w), monthly (-m), or all-time (-a)")
		return
	}

	board, err := b.APIPtr.GetLeaderboard(scope, b.Opts.LeaderboardSize, b.now().UTC())
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occurred getting the leaderboard")
		return
	}

	if len(board.Entries) == 0 {
		session.ChannelMessageSend(message.ChannelID, "There are currently no rankings to display.")
		return
	}

	var rows strings.Builder
	for _, entry := range board.Entries {
		rows.WriteString(fmt.Sprintf("%d. %s - %d points\n", entry.Rank, entry.Nickname, entry.Points))
	}

	title := fmt.Sprintf("%s Flag Leaderboard", titleCase(board.ScopeName))
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Color:       embedColor,
		Description: rows.String(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d flaggers, %d points total", board.Flaggers, board.TotalPoints),
		},
	}
	if board.Week != "" {
		embed.Footer.Text = fmt.Sprintf("Week of %s • %s", board.Week, embed.Footer.Text)
	}
	session.ChannelMessageSendEmbed(message.ChannelID, embed)
}

// helpHandler prints the command reference
func (b *Bot) helpHandler(session DiscordSession, message *discordgo.MessageCreate) {
	p := b.Opts.Prefix
	var res strings.Builder
	res.WriteString("Flag Race Bot\n")
	res.WriteString(fmt.Sprintf("`%splace <placement>`: Records your placement for the current flag race. Use `afk`, `out` or `dnf` if you did not finish. Only usable within the first %d minutes after a race.\n", p, b.Opts.RecordWindowMinutes))
	res.WriteString(fmt.Sprintf("`%sedit <placement>`: Corrects your most recent placement, within %d minutes of recording it.\n", p, int(b.APIPtr.EditWindow.Minutes())))
	res.WriteString(fmt.Sprintf("`%srank [-w|-m|-a] [nickname]`: Shows weekly, monthly or all-time stats for you or another flagger. Nicknames with spaces need quotes (e.g. \"flag king\").\n", p))
	res.WriteString(fmt.Sprintf("`%sleaderboard [-w|-m|-a]`: Shows the top %d flaggers for the chosen period.\n", p, b.Opts.LeaderboardSize))
	res.WriteString(fmt.Sprintf("`%stips`: Links some flag race guides.\n", p))
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// tipsHandler links flag race guides
func (b *Bot) tipsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("**12/7PM (Short) Flag Guide:** https://youtu.be/sTnh6OTjSQw\n")
	res.WriteString("**Beginner 9PM+ Flag Guide:** https://youtu.be/agcgzoS4QZw\n")
	res.WriteString("**Intermediate 9PM+ Flag Guide with detailed guide:** https://youtu.be/tOBe0Hh7po4\n")
	res.WriteString("**Advanced (Snowshoe) 9PM+ Flag with key inputs:** https://youtu.be/E4a36F1qtzc\n")
	res.WriteString("Also check out the #tips-and-tricks channel!\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

const embedColor = 0x00b0f4

// displayName prefers the author's guild nickname over their account name
func (b *Bot) displayName(message *discordgo.MessageCreate) string {
	if message.Member != nil && message.Member.Nick != "" {
		return message.Member.Nick
	}
	return message.Author.Username
}

// formatPlacements renders a placement history for display, with the
// non-finish marker shown as afk/out
func formatPlacements(placements []int) string {
	if len(placements) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(placements))
	for _, rank := range placements {
		labels = append(labels, placementLabel(rank))
	}
	return strings.Join(labels, ", ")
}

func placementLabel(rank int) string {
	if rank == logic.NonFinish {
		return "afk/out"
	}
	return fmt.Sprintf("%d", rank)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

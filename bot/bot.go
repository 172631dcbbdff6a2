/* bot.go
 * Contains the Bot struct and constructor. Runtime wiring against a real
 * discordgo session lives in bot_runtime.go; the command handlers in
 * handlers.go accept the DiscordSession interface so they can be tested with
 * a mock session.
 */

package bot

import (
	"fmt"
	"time"

	"flagbot/api/api"
)

// Options carries the guild-specific settings the bot needs beyond its token.
type Options struct {
	Prefix              string // command prefix, e.g. "!"
	FlagChannelID       string // channel race reminders are sent to
	FlagRoleID          string // role pinged by race reminders
	RecordWindowMinutes int    // minutes after a race hour that place is usable
	LeaderboardSize     int    // how many entries a leaderboard displays
}

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Opts     Options

	limiter *commandLimiter
	now     func() time.Time // swapped out in tests
}

// NewBot validates the token and applies option defaults
func NewBot(botToken string, apiPtr *api.API, opts Options) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	if opts.Prefix == "" {
		opts.Prefix = "!"
	}
	if opts.RecordWindowMinutes == 0 {
		opts.RecordWindowMinutes = 15
	}
	if opts.LeaderboardSize == 0 {
		opts.LeaderboardSize = 15
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		Opts:     opts,
		limiter:  newCommandLimiter(1, 3),
		now:      time.Now,
	}, nil
}

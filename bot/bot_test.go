/* bot_test.go
 * Contains unit tests for bot construction, option defaults and the
 * reminder scheduler
 */

package bot

import (
	"testing"

	"flagbot/api/api"
	"flagbot/api/logic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region NewBot tests

func TestNewBot_RequiresToken(t *testing.T) {
	_, err := NewBot("", &api.API{}, Options{})
	assert.Error(t, err)
}

func TestNewBot_RequiresAPI(t *testing.T) {
	_, err := NewBot("test_token", nil, Options{})
	assert.Error(t, err)
}

func TestNewBot_AppliesDefaults(t *testing.T) {
	b, err := NewBot("test_token", &api.API{}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "!", b.Opts.Prefix)
	assert.Equal(t, 15, b.Opts.RecordWindowMinutes)
	assert.Equal(t, 15, b.Opts.LeaderboardSize)
}

func TestNewBot_KeepsProvidedOptions(t *testing.T) {
	b, err := NewBot("test_token", &api.API{}, Options{
		Prefix:              "?",
		RecordWindowMinutes: 20,
		LeaderboardSize:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, "?", b.Opts.Prefix)
	assert.Equal(t, 20, b.Opts.RecordWindowMinutes)
	assert.Equal(t, 10, b.Opts.LeaderboardSize)
}

// endregion

// region reminder tests

func TestStartReminders_SchedulesAllRaces(t *testing.T) {
	b, err := NewBot("test_token", &api.API{}, Options{
		FlagChannelID: "chan123",
		FlagRoleID:    "role456",
	})
	require.NoError(t, err)

	scheduler, err := b.StartReminders(NewMockDiscordSession())
	require.NoError(t, err)
	require.NotNil(t, scheduler)
	defer scheduler.Stop()

	assert.Len(t, scheduler.Entries(), len(flagReminders))
}

func TestStartReminders_DisabledWithoutChannel(t *testing.T) {
	b, err := NewBot("test_token", &api.API{}, Options{})
	require.NoError(t, err)

	scheduler, err := b.StartReminders(NewMockDiscordSession())
	require.NoError(t, err)
	assert.Nil(t, scheduler)
}

func TestFlagReminders_MatchRaceHours(t *testing.T) {
	for _, reminder := range flagReminders {
		assert.Equal(t, 55, reminder.Minute, "reminder %s should fire 5 minutes before the hour", reminder.Name)
		raceHour := (reminder.Hour + 1) % 24
		assert.True(t, logic.IsFlagHour(raceHour), "reminder %s does not precede a race hour", reminder.Name)
	}
}

// endregion

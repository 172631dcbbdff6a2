/* reminders.go
 * Sets up the recurring race reminders. Each flag race gets a cron entry five
 * minutes before its start that pings the flag role in the flag channel.
 */

package bot

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// flagReminder is one scheduled reminder, five minutes before a race hour.
type flagReminder struct {
	Name   string
	Hour   int // UTC
	Minute int
}

// List out flag race times
var flagReminders = []flagReminder{
	{Name: "12pm UTC Flag", Hour: 11, Minute: 55},
	{Name: "7pm UTC Flag", Hour: 18, Minute: 55},
	{Name: "9pm UTC Flag", Hour: 20, Minute: 55},
	{Name: "10pm UTC Flag", Hour: 21, Minute: 55},
	{Name: "11pm UTC Flag", Hour: 22, Minute: 55},
}

// StartReminders creates the cron jobs that send race reminders and starts
// the scheduler. The returned cron can be stopped on shutdown. Reminders are
// skipped entirely when no flag channel is configured.
// Preconditions: Receives the session used to send the reminder messages
// Postconditions: Returns the running scheduler, or an error if a cron entry is invalid
func (b *Bot) StartReminders(session DiscordSession) (*cron.Cron, error) {
	if b.Opts.FlagChannelID == "" {
		log.Println("no flag channel configured, race reminders disabled")
		return nil, nil
	}

	scheduler := cron.New(cron.WithLocation(time.UTC))

	log.Println("Setting up flag reminders...")
	for _, reminder := range flagReminders {
		reminder := reminder
		spec := fmt.Sprintf("%d %d * * *", reminder.Minute, reminder.Hour)
		_, err := scheduler.AddFunc(spec, func() {
			message := fmt.Sprintf("🔔 Reminder 🔔 <@&%s> %s in 5 minutes!", b.Opts.FlagRoleID, reminder.Name)
			if _, err := session.ChannelMessageSend(b.Opts.FlagChannelID, message); err != nil {
				log.Println("failed to send flag reminder:", err)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to schedule reminder %q: %w", reminder.Name, err)
		}
	}

	scheduler.Start()
	return scheduler, nil
}

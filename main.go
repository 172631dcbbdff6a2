/* main.go
 * The "main" method for running the bot. For details about the bot see `readme.md`
 * Usage: go run main.go -config="<path>" [-test="true"]
 */

package main

import (
	"context"
	"flag"
	"log"

	"flagbot/api/api"
	"flagbot/bot"
	"flagbot/config"
	"flagbot/web"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, env vars may come from the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	// Flags
	configPtr := flag.String("config", "config.yaml", "Path to the yaml configuration file")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}

	cfg, err := config.LoadConfig(*configPtr)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	discordToken := cfg.Discord.Token
	if useTestBot {
		discordToken = cfg.Discord.BetaToken
	}

	apiPtr, err := api.NewAPI(cfg.Mongo.Database, cfg.Mongo.URI, cfg.Races.SubmissionCooldown, cfg.Races.EditWindow)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// Serve the leaderboard over HTTP when an address is configured
	if cfg.Web.Addr != "" {
		go func() {
			webCfg := web.Config{
				Addr:            cfg.Web.Addr,
				API:             apiPtr,
				LeaderboardSize: cfg.Discord.LeaderboardSize,
			}
			if err := web.Start(webCfg); err != nil {
				log.Println("web server stopped:", err)
			}
		}()
	}

	// Init bot and run
	b, err := bot.NewBot(discordToken, apiPtr, bot.Options{
		Prefix:              cfg.Discord.Prefix,
		FlagChannelID:       cfg.Discord.FlagChannelID,
		FlagRoleID:          cfg.Discord.FlagRoleID,
		RecordWindowMinutes: cfg.Races.RecordWindowMinutes,
		LeaderboardSize:     cfg.Discord.LeaderboardSize,
	})
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}

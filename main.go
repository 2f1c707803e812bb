/* main.go
 * The "main" method for running the bot and the HTTP server. For details about the bot
 * see `readme.md`
 * Usage: go run main.go -addr="<addr>" -test="<true|false>"
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"racketlon-bot/api/api"
	"racketlon-bot/bot"
	"racketlon-bot/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()

	//Flags
	addrPtr := flag.String("addr", ":8080", "Listen address for the HTTP server, e.g. :8080")
	dbPtr := flag.String("db", "racketlon", "Name of the MongoDB database to use")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Fatal("Error loading .env file")
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}

	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_PROD_URI"), os.Getenv("OCR_API_URL"), os.Getenv("OCR_API_KEY"))
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	//Run the HTTP server alongside the bot; the bot blocks until interrupted
	go func() {
		if err := web.Start(web.Config{Addr: *addrPtr, API: apiPtr}); err != nil {
			log.Fatalf("web server stopped: %v", err)
		}
	}()

	b, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}

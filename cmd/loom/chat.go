package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/loom/pkg/bots"
	"github.com/go-go-golems/loom/pkg/chat"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [bot-name]",
		Short: "Chat with one of your bots",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return err
			}

			fmt.Println(bannerStyle.Render(banner))
			fmt.Println()

			loom := bots.NewLoom(s.BotsFile)
			collection, err := ensureCollection(loom, s.BotsFile)
			if err != nil {
				return err
			}

			var bot bots.Bot
			if len(args) == 1 {
				bot, err = loom.FindByName(args[0])
				if err != nil {
					return err
				}
			} else {
				bot, err = pickBot(collection)
				if err != nil {
					return err
				}
			}

			builder := chat.NewBuilder(chat.NewOpenAICompleter(s.OpenAIAPIKey), s.Model)
			return chatLoop(cmd, builder, bot)
		},
	}
}

// ensureCollection loads the bots file, bootstrapping the sample bot on a
// first run so the picker is never empty.
func ensureCollection(loom *bots.Loom, path string) ([]bots.Bot, error) {
	if loom.FileExists() {
		collection, err := loom.LoadAll()
		if err != nil {
			return nil, err
		}
		if len(collection) > 0 {
			fmt.Println(infoStyle.Render(fmt.Sprintf("Bots found in %s", path)))
			return collection, nil
		}
	}

	fmt.Println(warnStyle.Render(fmt.Sprintf("No bots found at %s", path)))
	fmt.Println(warnStyle.Render("Creating new bots file..."))
	if _, err := loom.BootstrapSampleBot(); err != nil {
		return nil, err
	}
	return loom.LoadAll()
}

func pickBot(collection []bots.Bot) (bots.Bot, error) {
	for i, bot := range collection {
		fmt.Printf("  %d. %s\n", i+1, bot)
	}
	fmt.Print(promptStyle.Render("Pick a bot: "))

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return bots.Bot{}, err
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(collection) {
		return bots.Bot{}, fmt.Errorf("invalid choice %q", strings.TrimSpace(line))
	}
	return collection[choice-1], nil
}

func chatLoop(cmd *cobra.Command, builder *chat.Builder, bot bots.Bot) error {
	// Ctrl-C during a session is a clean exit, not an error.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		<-interrupt
		fmt.Println(errorStyle.Render("\nExiting..."))
		os.Exit(0)
	}()

	fmt.Println(infoStyle.Render(fmt.Sprintf("Chatting with %s. Type 'exit' to quit.", bot.Name)))
	fmt.Println()

	var history []chat.Turn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("You: "))
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply, err := builder.Converse(cmd.Context(), bot, message, history)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", botStyle.Render(bot.Name+":"), reply)
		history = append(history, chat.Turn{UserText: message, BotText: reply})
	}

	return scanner.Err()
}

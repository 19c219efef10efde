package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/loom/pkg/bots"
)

func newAddCommand() *cobra.Command {
	var name, description, entrypoint string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new bot to the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if s.BotsFile == "" {
				return fmt.Errorf("no bots file configured (set BOTS_FILE)")
			}

			loom := bots.NewLoom(s.BotsFile)
			bot := bots.NewBot(name, description, entrypoint)
			if err := loom.AddBot(bot); err != nil {
				return err
			}

			fmt.Println(infoStyle.Render(fmt.Sprintf("Added %s", bot)))
			fmt.Println(faintStyle.Render(bot.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name for the bot")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&entrypoint, "entrypoint", "", "System prompt that seeds every conversation")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("entrypoint")

	return cmd
}

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-go-golems/loom/pkg/bots"
)

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id-or-name>",
		Short: "Remove a bot from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if s.BotsFile == "" {
				return fmt.Errorf("no bots file configured (set BOTS_FILE)")
			}

			loom := bots.NewLoom(s.BotsFile)
			bot, err := loom.FindByID(args[0])
			if errors.Is(err, bots.ErrNotFound) {
				bot, err = loom.FindByName(args[0])
			}
			if err != nil {
				return err
			}

			if err := loom.RemoveBot(bot); err != nil {
				return err
			}
			fmt.Println(infoStyle.Render(fmt.Sprintf("Removed %s", bot)))
			return nil
		},
	}
}

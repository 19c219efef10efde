package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-go-golems/loom/pkg/bots"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bots in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if s.BotsFile == "" {
				return fmt.Errorf("no bots file configured (set BOTS_FILE)")
			}

			loom := bots.NewLoom(s.BotsFile)
			if !loom.FileExists() {
				fmt.Println(warnStyle.Render(fmt.Sprintf("No bots file at %s", s.BotsFile)))
				return nil
			}

			collection, err := loom.LoadAll()
			if err != nil {
				return err
			}
			if len(collection) == 0 {
				fmt.Println(warnStyle.Render("The bots file is empty"))
				return nil
			}

			for _, bot := range collection {
				fmt.Printf("%s  %s\n", botStyle.Render(bot.Name), faintStyle.Render(bot.ID))
				if bot.Description != "" {
					fmt.Printf("    %s\n", bot.Description)
				}
			}
			return nil
		},
	}
}

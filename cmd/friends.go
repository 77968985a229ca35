package cmd

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/eatnsplit/internal/friends"
	"github.com/zhubert/eatnsplit/internal/logger"
	"github.com/zhubert/eatnsplit/internal/ui"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Print the starting friend list",
	Long: `Print the friends every session starts with, one per line, with the
same balance line the TUI shows.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.InitConsole(os.Stderr)
		defer logger.Close()

		roster := friends.NewRoster(friends.Seed())
		logger.WithComponent("cmd").Debug("Listing friends", "count", roster.Len())
		return printFriends(cmd.OutOrStdout(), roster.Friends())
	},
}

func init() {
	rootCmd.AddCommand(friendsCmd)
}

// printFriends writes one line per friend. Colors are downsampled to
// what w supports.
func printFriends(w io.Writer, list []friends.Friend) error {
	for _, f := range list {
		msg := ui.BalanceStyle(friends.ToneOf(f.Balance)).Render(friends.BalanceMessage(f))
		line := fmt.Sprintf("%-8s %-12s %s", f.ID, f.Name, msg)
		if _, err := lipgloss.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

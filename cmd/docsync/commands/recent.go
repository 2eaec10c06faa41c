package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/docsync/internal/ui/style"
)

func (c *CLI) newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently watched files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clearList, _ := cmd.Flags().GetBool("clear")

			manager := c.components.Manager
			if err := manager.ReadSettings(); err != nil {
				return err
			}

			if clearList {
				manager.ClearRecentFiles()
				return manager.SaveSettings()
			}

			out := cmd.OutOrStdout()
			for _, entry := range manager.RecentFiles() {
				line := style.Path.Render(entry.Path)
				if entry.EditorID != "" {
					line += " " + style.Muted.Render("("+entry.EditorID+")")
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().Bool("clear", false, "Clear the recent files list")
	return cmd
}

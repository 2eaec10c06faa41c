package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/ui/style"
	"go.trai.ch/zerr"

	"go.trai.ch/docsync/internal/adapters/document"
)

// jsonSwitcher is the optional logger capability the --json and --verbose
// flags use; the default logger adapter provides it.
type jsonSwitcher interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Watch files and report and reconcile external changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			behavior, _ := cmd.Flags().GetString("behavior")
			debounce, _ := cmd.Flags().GetDuration("debounce")
			jsonOut, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if sw, ok := c.components.Logger.(jsonSwitcher); ok {
				sw.SetJSON(jsonOut)
				if verbose {
					sw.SetLevel(slog.LevelDebug)
				}
			}

			def, err := parseBehavior(behavior)
			if err != nil {
				return err
			}

			manager := c.components.Manager
			manager.SetDefaultBehavior(def)
			if debounce > 0 {
				manager.SetDebounceWindow(debounce)
			}

			if err := manager.ReadSettings(); err != nil {
				c.components.Logger.Warn("could not read settings", "error", err)
			}

			out := cmd.OutOrStdout()
			manager.Events().OnFilesChangedExternally(func(paths []string) {
				for _, path := range paths {
					_, _ = fmt.Fprintf(out, "%s %s\n",
						style.Muted.Render(style.Dot),
						style.Path.Render(path))
				}
			})
			manager.Events().OnDocumentsClosed(func(docs []ports.Document) {
				for _, doc := range docs {
					_, _ = fmt.Fprintf(out, "%s %s\n",
						style.Muted.Render(style.Cross),
						style.Path.Render(doc.FilePath()))
				}
			})

			var docs []ports.Document
			for _, path := range args {
				doc, err := document.Open(path)
				if err != nil {
					return zerr.Wrap(err, "cannot open file")
				}
				doc.SetReloadBehavior(domain.BehaviorSilent)
				docs = append(docs, doc)
				manager.AddToRecentFiles(doc.FilePath(), "")
			}
			manager.AddDocuments(docs)

			if err := manager.SaveSettings(); err != nil {
				c.components.Logger.Warn("could not save settings", "error", err)
			}

			c.components.Logger.Info("watching", "files", len(docs))
			return manager.Run(cmd.Context())
		},
	}
	cmd.Flags().StringP("behavior", "b", "ask", "Reconciliation policy: ask, reload, or ignore")
	cmd.Flags().DurationP("debounce", "d", 0, "Debounce window for change bursts")
	cmd.Flags().Bool("json", false, "Log as JSON instead of pretty output")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	return cmd
}

func parseBehavior(s string) (domain.DefaultBehavior, error) {
	switch s {
	case "ask", "":
		return domain.AlwaysAsk, nil
	case "reload":
		return domain.ReloadUnmodified, nil
	case "ignore":
		return domain.IgnoreAll, nil
	default:
		return domain.AlwaysAsk, errors.New("invalid behavior: " + s + " (want ask, reload, or ignore)")
	}
}

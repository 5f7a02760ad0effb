package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iammorganparry/clive/apps/todo/internal/lists"
	"github.com/iammorganparry/clive/apps/todo/internal/sessions"
	"github.com/iammorganparry/clive/apps/todo/internal/store"
)

func newExportCmd(a *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a session's lists as YAML",
		Long: `Print the lists stored for one session as YAML. The session ID is the value
of the session cookie in the browser.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Open(a.cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			sess, err := sessions.NewSessionStore(db).GetByID(sessionID)
			if err != nil {
				return err
			}
			if sess == nil {
				return fmt.Errorf("session %q not found", sessionID)
			}
			return lists.WriteYAML(cmd.OutOrStdout(), sess.Lists)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID to export")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

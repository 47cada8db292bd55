package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/api"
)

// NewRootCommand builds the portfolio-admin command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "portfolio-admin",
		Short:         "Manage portfolio projects, skills, messages and short links",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.yes, "yes", "y", false, "skip confirmation prompts")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newStatusCommand(a),
		newProjectsCommand(a),
		newSkillsCommand(a),
		newMessagesCommand(a),
		newURLsCommand(a),
		newUploadCommand(a),
		newDevServerCommand(a),
	)
	return root
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		return 1
	}
	return 0
}

// errorLine formats err for the terminal, adding the HTTP status when the
// backend answered with one
func errorLine(err error) string {
	if code := api.StatusCode(err); code != 0 {
		return fmt.Sprintf("Error: %v (HTTP %d %s)", err, code, http.StatusText(code))
	}
	return "Error: " + err.Error()
}

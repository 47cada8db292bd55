package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/screens"
	"portfolio-admin/internal/upload"
)

type projectFlags struct {
	name, description, demo, source string
	thumbnail, thumbnailFile        string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "project name")
	cmd.Flags().StringVar(&f.description, "description", "", "project description")
	cmd.Flags().StringVar(&f.demo, "demo", "", "live demo URL")
	cmd.Flags().StringVar(&f.source, "source", "", "source code URL")
	cmd.Flags().StringVar(&f.thumbnail, "thumbnail", "", "thumbnail image URL")
	cmd.Flags().StringVar(&f.thumbnailFile, "thumbnail-file", "", "local thumbnail image to upload")
	cmd.MarkFlagsMutuallyExclusive("thumbnail", "thumbnail-file")
}

// apply copies the flags the operator set onto form
func (f *projectFlags) apply(cmd *cobra.Command, form screens.ProjectForm) screens.ProjectForm {
	changed := cmd.Flags().Changed
	if changed("name") {
		form.Name = f.name
	}
	if changed("description") {
		form.Description = f.description
	}
	if changed("demo") {
		form.DemoLink = f.demo
	}
	if changed("source") {
		form.SourceCodeLink = f.source
	}
	if changed("thumbnail") {
		form.ThumbnailURL = f.thumbnail
	}
	return form
}

func (f *projectFlags) fill(cmd *cobra.Command, s *screens.ProjectsScreen) error {
	s.SetForm(f.apply(cmd, s.Form()))
	if f.thumbnailFile == "" {
		return nil
	}
	file, err := upload.Open(f.thumbnailFile)
	if err != nil {
		return err
	}
	return s.SetThumbnailFile(file)
}

func newProjectsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage portfolio projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.authed(cmd, func(context.Context) error {
				return printProjects(a.out, a.dash.Projects())
			})
		},
	}

	var addFlags projectFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.authed(cmd, func(ctx context.Context) error {
				s := screens.NewProjectsScreen(a.dash, a.confirmer(), a.previews)
				s.OpenCreate()
				defer s.Close()
				if err := addFlags.fill(cmd, s); err != nil {
					return err
				}
				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Project created.")
				return printProjects(a.out, a.dash.Projects())
			})
		},
	}
	addFlags.register(add)

	var updateFlags projectFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a project; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context) error {
				s := screens.NewProjectsScreen(a.dash, a.confirmer(), a.previews)
				if err := s.OpenEdit(args[0]); err != nil {
					return fmt.Errorf("project %s: %w", args[0], err)
				}
				defer s.Close()
				if err := updateFlags.fill(cmd, s); err != nil {
					return err
				}
				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Project updated.")
				return nil
			})
		},
	}
	updateFlags.register(update)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context) error {
				s := screens.NewProjectsScreen(a.dash, a.confirmer(), a.previews)
				if err := s.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Project deleted.")
				return nil
			})
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

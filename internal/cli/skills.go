package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/screens"
	"portfolio-admin/internal/upload"
)

type skillFlags struct {
	name, image, imageFile string
}

func (f *skillFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "skill name")
	cmd.Flags().StringVar(&f.image, "image", "", "badge image URL")
	cmd.Flags().StringVar(&f.imageFile, "image-file", "", "local badge image to upload")
	cmd.MarkFlagsMutuallyExclusive("image", "image-file")
}

func (f *skillFlags) fill(cmd *cobra.Command, s *screens.SkillsScreen) error {
	form := s.Form()
	if cmd.Flags().Changed("name") {
		form.Name = f.name
	}
	if cmd.Flags().Changed("image") {
		form.ImageURL = f.image
	}
	s.SetForm(form)

	if f.imageFile == "" {
		return nil
	}
	file, err := upload.Open(f.imageFile)
	if err != nil {
		return err
	}
	return s.SetImageFile(file)
}

func newSkillsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "skills",
		Aliases: []string{"skill"},
		Short:   "Manage skill badges",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.authed(cmd, func(context.Context) error {
				return printSkills(a.out, a.dash.Skills())
			})
		},
	}

	var addFlags skillFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a skill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.authed(cmd, func(ctx context.Context) error {
				s := screens.NewSkillsScreen(a.dash, a.confirmer(), a.previews)
				s.OpenCreate()
				defer s.Close()
				if err := addFlags.fill(cmd, s); err != nil {
					return err
				}
				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Skill created.")
				return printSkills(a.out, a.dash.Skills())
			})
		},
	}
	addFlags.register(add)

	var updateFlags skillFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a skill; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context) error {
				s := screens.NewSkillsScreen(a.dash, a.confirmer(), a.previews)
				if err := s.OpenEdit(args[0]); err != nil {
					return fmt.Errorf("skill %s: %w", args[0], err)
				}
				defer s.Close()
				if err := updateFlags.fill(cmd, s); err != nil {
					return err
				}
				if err := s.Submit(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Skill updated.")
				return nil
			})
		},
	}
	updateFlags.register(update)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context) error {
				s := screens.NewSkillsScreen(a.dash, a.confirmer(), a.previews)
				if err := s.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Skill deleted.")
				return nil
			})
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

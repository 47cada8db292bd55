package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"portfolio-admin/internal/dashboard"
	"portfolio-admin/internal/entities"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printOverview(w io.Writer, o dashboard.Overview) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Projects\t%d\n", o.Projects)
	fmt.Fprintf(tw, "Skills\t%d\n", o.Skills)
	fmt.Fprintf(tw, "Messages\t%d (%d unread)\n", o.Messages, o.UnreadMessages)
	fmt.Fprintf(tw, "Short links\t%d\n", o.ShortenedURLs)
	return tw.Flush()
}

func printProjects(w io.Writer, projects []entities.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDEMO\tSOURCE")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, orDash(p.DemoLink), orDash(p.SourceCodeLink))
	}
	return tw.Flush()
}

func printSkills(w io.Writer, skills []entities.Skill) error {
	if len(skills) == 0 {
		_, err := fmt.Fprintln(w, "No skills.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tIMAGE")
	for _, s := range skills {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, orDash(s.Image))
	}
	return tw.Flush()
}

func printMessages(w io.Writer, messages []entities.ContactMessage) error {
	if len(messages) == 0 {
		_, err := fmt.Fprintln(w, "No messages.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFROM\tSUBJECT\tRECEIVED\t")
	for _, m := range messages {
		received := "-"
		if m.CreatedAt != nil {
			received = m.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		marker := ""
		if !m.IsRead {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s <%s>\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Subject, received, marker)
	}
	return tw.Flush()
}

func printMessage(w io.Writer, m entities.ContactMessage) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "From\t%s <%s>\n", m.Name, m.Email)
	if m.PhoneNo != "" {
		fmt.Fprintf(tw, "Phone\t%s\n", m.PhoneNo)
	}
	fmt.Fprintf(tw, "Subject\t%s\n", m.Subject)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", m.Message)
	return err
}

func printURLPage(w io.Writer, page entities.URLPage, link func(entities.ShortenedURL) string) error {
	p := page.Pagination
	if len(page.URLs) == 0 {
		_, err := fmt.Fprintln(w, "No short links.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSHORT LINK\tTARGET\tCLICKS\tSTATUS")
	for _, u := range page.URLs {
		status := "active"
		if u.IsDeleted {
			status = "deleted"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", u.ID, link(u), u.FullURL, u.Clicks, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d, %d links in total\n", p.CurrentPage, p.TotalPages, p.TotalItems)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

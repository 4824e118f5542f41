package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/socialcli/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func printPost(w io.Writer, p models.Post) {
	var flags []string
	if p.Liked {
		flags = append(flags, "liked")
	}
	if p.Edited {
		flags = append(flags, "edited")
	}
	extra := ""
	if len(flags) > 0 {
		extra = " (" + strings.Join(flags, ", ") + ")"
	}

	fmt.Fprintf(w, "#%s  %s  %s  likes: %d%s\n", p.ID, p.Author.DisplayName(), formatTime(p.Created), p.LikesCount, extra)
	printIndented(w, p.Body, "    ")
}

func printComment(w io.Writer, c models.Comment) {
	fmt.Fprintf(w, "    > #%s  %s  %s\n", c.ID, c.Author.DisplayName(), formatTime(c.Created))
	printIndented(w, c.Body, "      ")
}

func printFeed(w io.Writer, items []models.FeedItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no posts yet")
		return
	}
	for _, it := range items {
		printPost(w, it.Post)
		for _, c := range it.Comments {
			printComment(w, c)
		}
		fmt.Fprintln(w)
	}
}

func printUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "#%s  %s <%s>\n", u.ID, u.Username, u.Email)
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		fmt.Fprintf(w, "name:   %s\n", name)
	}
	if u.Bio != "" {
		fmt.Fprintf(w, "bio:    %s\n", u.Bio)
	}
	if u.Avatar != "" {
		fmt.Fprintf(w, "avatar: %s\n", u.Avatar)
	}
	fmt.Fprintf(w, "joined: %s\n", formatTime(u.Created))
}

func printIndented(w io.Writer, text, indent string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(w, indent+line)
	}
}

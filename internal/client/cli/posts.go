package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialcli/internal/client/models"
)

// Feed lists posts; "-c" also loads their comments.
func (a *App) Feed(ctx context.Context, args []string) error {
	withComments := false
	for _, arg := range args {
		if arg == "-c" || arg == "--comments" {
			withComments = true
		}
	}
	return a.showFeed(ctx, withComments)
}

func (a *App) showFeed(ctx context.Context, withComments bool) error {
	items, err := a.feedService.Load(ctx, withComments)
	if err != nil {
		return err
	}
	printFeed(a.out, items)
	return nil
}

// Post creates a post from the arguments, or prompts for a body when none
// are given.
func (a *App) Post(ctx context.Context, args []string) error {
	body, err := a.textArg(args, "Write your post")
	if err != nil {
		return err
	}
	p, err := a.postService.Create(ctx, a.userID(), body)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "posted #%s\n", p.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("edit <post-id> [text]")
	}
	body, err := a.textArg(args[1:], "New text")
	if err != nil {
		return err
	}
	p, err := a.postService.Update(ctx, models.ID(args[0]), a.userID(), body)
	if err != nil {
		return err
	}
	printPost(a.out, p)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <post-id>")
	}
	if err := a.postService.Delete(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted #%s\n", args[0])
	return nil
}

// Like toggles the like on a post.
func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("like <post-id>")
	}
	p, err := a.postService.Get(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	p, err = a.postService.ToggleLike(ctx, p)
	if err != nil {
		return err
	}

	verb := "unliked"
	if p.Liked {
		verb = "liked"
	}
	fmt.Fprintf(a.out, "%s #%s (likes: %d)\n", verb, p.ID, p.LikesCount)
	return nil
}

func (a *App) Comments(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("comments <post-id>")
	}
	comments, err := a.commentService.List(ctx, models.ID(args[0]))
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Fprintln(a.out, "no comments yet")
		return nil
	}
	for _, c := range comments {
		printComment(a.out, c)
	}
	return nil
}

func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("comment <post-id> [text]")
	}
	body, err := a.textArg(args[1:], "Write your comment")
	if err != nil {
		return err
	}
	c, err := a.commentService.Create(ctx, models.ID(args[0]), a.userID(), body)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "commented #%s on #%s\n", c.ID, args[0])
	return nil
}

func (a *App) Uncomment(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("uncomment <post-id> <comment-id>")
	}
	if err := a.commentService.Delete(ctx, models.ID(args[0]), models.ID(args[1])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted comment #%s\n", args[1])
	return nil
}

// textArg joins args, or asks for multi-line input when args is empty.
func (a *App) textArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return getMultiline(a.reader, prompt, a.out)
}

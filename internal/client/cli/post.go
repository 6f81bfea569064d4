package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/annakovaleva/blogview/internal/client/models"
)

// listPageSize is the page fetched by the list command.
const listPageSize = 10

// List fetches the first page of posts and prints a short line per post.
func (a *App) List(ctx context.Context) error {
	a.postService.List(ctx, 1, listPageSize)
	if msg := a.posts.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}
	for _, p := range a.posts.Posts() {
		printPostLine(p)
	}
	return nil
}

// View fetches a single post by id and prints it in full.
func (a *App) View(ctx context.Context) error {
	id, err := a.promptID("Enter post id to view")
	if err != nil {
		return err
	}

	post := a.postService.Get(ctx, id)
	if post == nil {
		printlnFn(a.posts.Err())
		return nil
	}
	printPost(*post)
	return nil
}

// Create collects a new post from the user and submits it. Validation is
// local; nothing goes over the wire until the form passes.
func (a *App) Create(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	form, err := a.promptForm(ctx, models.PostForm{})
	if err != nil {
		return err
	}
	if issues := form.Validate(); len(issues) > 0 {
		printIssues(issues)
		return nil
	}

	res := a.postService.Create(ctx, form)
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}
	printlnFn(fmt.Sprintf("Created post %d", res.Data.ID))
	return nil
}

// Edit collects a full replacement for an existing post and submits it.
// Current values are offered as defaults when the post is in the loaded list.
func (a *App) Edit(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	id, err := a.promptID("Enter post id to edit")
	if err != nil {
		return err
	}

	var base models.PostForm
	if existing, ok := a.posts.Find(id); ok {
		base = models.PostForm{Title: existing.Title, Body: existing.Body, Tags: existing.Tags}
	}

	form, err := a.promptForm(ctx, base)
	if err != nil {
		return err
	}
	if issues := form.Validate(); len(issues) > 0 {
		printIssues(issues)
		return nil
	}

	res := a.postService.Update(ctx, id, form)
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}
	printlnFn(fmt.Sprintf("Updated post %d", res.Data.ID))
	return nil
}

// Delete removes a post by id, prompting the user for the id.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	id, err := a.promptID("Enter post id to delete")
	if err != nil {
		return err
	}

	res := a.postService.Delete(ctx, id)
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}
	printlnFn(fmt.Sprintf("Deleted post %d", res.Data))
	return nil
}

// Search prompts for a query and prints the matching posts from the loaded
// list. A blank query prints everything.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	matched := a.postService.Search(query)
	if len(matched) == 0 {
		printlnFn("No posts found")
		return nil
	}
	for _, p := range matched {
		printPostLine(p)
	}
	return nil
}

// FilterTag prompts for a tag and prints the posts carrying it.
func (a *App) FilterTag(ctx context.Context) error {
	tag, err := getSimpleText(a.reader, "Filter by tag", os.Stdout)
	if err != nil {
		return err
	}

	matched := a.postService.FilterByTag(tag)
	if len(matched) == 0 {
		printlnFn("No posts found")
		return nil
	}
	for _, p := range matched {
		printPostLine(p)
	}
	return nil
}

// ToggleTheme flips between light and dark and reports the new value.
func (a *App) ToggleTheme(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Theme set to %s", a.themes.Toggle()))
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Invalid id:", raw)
		return 0, err
	}
	return id, nil
}

// promptForm collects the three post fields. Empty answers fall back to the
// base value, which lets edits keep fields unchanged.
func (a *App) promptForm(ctx context.Context, base models.PostForm) (models.PostForm, error) {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return base, err
	}
	if err := ctx.Err(); err != nil {
		return base, err
	}

	body, err := GetMultiline(a.reader, "Enter content (double Enter to finish):", os.Stdout)
	if err != nil {
		return base, err
	}

	tags, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return base, err
	}

	form := base
	if title != "" {
		form.Title = title
	}
	if body != "" {
		form.Body = body
	}
	if tags != "" {
		form.Tags = tags
	}
	return form, nil
}

func printPostLine(p models.Post) {
	author := ""
	if p.Author != nil {
		author = p.Author.Name
	}
	printlnFn(fmt.Sprintf("#%d [%s] %s (%s)", p.ID, p.Tags, p.Title, author))
}

func printPost(p models.Post) {
	printPostLine(p)
	printlnFn(fmt.Sprintf("Published %s", p.CreatedAt.Format("2006-01-02 15:04")))
	printlnFn(p.Body)
}

func printIssues(issues map[string]string) {
	for field, msg := range issues {
		printlnFn(fmt.Sprintf("%s: %s", field, msg))
	}
}

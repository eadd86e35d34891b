// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// command is a single CLI subcommand.
type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App is the command-line client.
type App struct {
	notes     adapter.NotesClient
	buildInfo models.AppBuildInfo
	out       io.Writer

	commands map[string]command

	logger *logger.Logger
}

// NewApp creates the client over notes. Results are written to out.
func NewApp(notes adapter.NotesClient, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		notes:     notes,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}

	a.commands = map[string]command{
		"register": {"register -name NAME -email EMAIL -password PASSWORD", a.register},
		"login":    {"login -email EMAIL -password PASSWORD", a.login},
		"me":       {"me", a.me},
		"add":      {"add -title TITLE -content CONTENT [-tags a,b]", a.add},
		"update":   {"update -id ID [-title T] [-content C] [-tags a,b] [-pinned=true|false]", a.update},
		"delete":   {"delete -id ID", a.delete},
		"pin":      {"pin -id ID [-unpin]", a.pin},
		"list":     {"list", a.list},
		"search":   {"search -query QUERY", a.search},
		"version":  {"version", a.version},
	}

	return a
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

// Usage lists the available subcommands.
func (a *App) Usage() string {
	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range []string{"register", "login", "me", "add", "update", "delete", "pin", "list", "search", "version"} {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	return b.String()
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, a.Usage())
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"name": *name, "email": *email, "password": *password}); err != nil {
		return err
	}

	auth, err := a.notes.Register(ctx, models.User{FullName: *name, Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return a.print(auth)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"email": *email, "password": *password}); err != nil {
		return err
	}

	auth, err := a.notes.Login(ctx, models.User{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return a.print(auth)
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.notes.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	return a.print(user)
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := newFlagSet("add")
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	note, err := a.notes.AddNote(ctx, models.Note{Title: *title, Content: *content, Tags: parseTags(*tags)})
	if err != nil {
		return fmt.Errorf("add note: %w", err)
	}
	return a.print(note)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	id := fs.String("id", "", "note ID")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	tags := fs.String("tags", "", "new comma-separated tags")
	pinned := fs.Bool("pinned", false, "new pinned flag")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"id": *id}); err != nil {
		return err
	}

	// only flags given on the command line are sent
	update := models.NoteUpdate{NoteID: *id}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = title
		case "content":
			update.Content = content
		case "tags":
			t := parseTags(*tags)
			update.Tags = &t
		case "pinned":
			update.IsPinned = pinned
		}
	})

	note, err := a.notes.UpdateNote(ctx, update)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return a.print(note)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "note ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"id": *id}); err != nil {
		return err
	}

	if err := a.notes.DeleteNote(ctx, *id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	fmt.Fprintf(a.out, "note %s deleted\n", *id)
	return nil
}

func (a *App) pin(ctx context.Context, args []string) error {
	fs := newFlagSet("pin")
	id := fs.String("id", "", "note ID")
	unpin := fs.Bool("unpin", false, "unpin instead of pin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"id": *id}); err != nil {
		return err
	}

	note, err := a.notes.SetPinned(ctx, *id, !*unpin)
	if err != nil {
		return fmt.Errorf("set pinned: %w", err)
	}
	return a.print(note)
}

func (a *App) list(ctx context.Context, _ []string) error {
	notes, err := a.notes.AllNotes(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	return a.print(notes)
}

func (a *App) search(ctx context.Context, args []string) error {
	fs := newFlagSet("search")
	query := fs.String("query", "", "text to look for in titles and contents")
	if err := fs.Parse(args); err != nil {
		return err
	}

	notes, err := a.notes.SearchNotes(ctx, *query)
	if err != nil {
		return fmt.Errorf("search notes: %w", err)
	}
	return a.print(notes)
}

func (a *App) version(ctx context.Context, _ []string) error {
	fmt.Fprint(a.out, a.buildInfo.String())

	serverVersion, err := a.notes.Version(ctx)
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}
	fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
	return nil
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// required returns ErrMissingFlag listing every empty flag.
func required(flags map[string]string) error {
	var missing []string
	for name, value := range flags {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return fmt.Errorf("%w: %s", ErrMissingFlag, strings.Join(missing, ", "))
}

// parseTags splits a comma-separated list, dropping blank entries.
func parseTags(s string) models.Tags {
	tags := models.Tags{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

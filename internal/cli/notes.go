package cli

import (
	"context"
	"fmt"
	"os"
)

// List prints the current account's notes, newest first.
func (a *App) List(ctx context.Context) error {
	list := a.core.ListNotes(ctx, a.sess.ID)
	if len(list) == 0 {
		printlnFn("No notes yet, try 'add'")
		return nil
	}

	for _, n := range list {
		printlnFn(fmt.Sprintf("%s  %s  %s", n.ID, n.CreatedAt, n.Title))
	}
	return nil
}

// AddNote prompts for a title and a multiline body and creates the note.
func (a *App) AddNote(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter body", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.core.CreateNote(ctx, a.sess.ID, title, body); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Note saved")
	return nil
}

// EditNote prompts for a note id and replacement title/body.
func (a *App) EditNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter new body", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.core.UpdateNote(ctx, a.sess.ID, id, title, body); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Note updated")
	return nil
}

// DeleteNote prompts for a note id and removes it. Unknown ids are a no-op.
func (a *App) DeleteNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.core.DeleteNote(ctx, a.sess.ID, id); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Note deleted")
	return nil
}

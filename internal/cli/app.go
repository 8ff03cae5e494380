// Package cli is the terminal front end for notekeeper. It only invokes the
// operations of the app facade and renders their results; no persistence
// logic lives here.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"notekeeper/internal/app"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
)

// App drives the interactive session.
type App struct {
	core   *app.App
	log    logging.Logger
	sess   *models.Session
	reader *bufio.Reader
}

// NewApp returns a CLI bound to the given core.
func NewApp(core *app.App, log logging.Logger) *App {
	return &App{core: core, log: log, reader: bufio.NewReader(os.Stdin)}
}

// Run resumes a persisted session, if any, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.core.Close() }()

	a.sess = a.core.ResumeSession(ctx)
	if a.sess != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s", a.sess.Username))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sess != nil
}

func (a *App) status() string {
	if a.sess == nil {
		return "logged out"
	}
	return a.sess.Username
}

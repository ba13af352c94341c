package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/passgen"
	"github.com/dmitrijs2005/passvault/internal/services"
	"github.com/dmitrijs2005/passvault/internal/session"
)

// Options configures an App. Auth and Accounts are required.
type Options struct {
	Auth     services.AuthService
	Accounts services.AccountService
	Session  *session.Session
	Logger   logging.Logger

	In  io.Reader
	Out io.Writer

	Generator     *passgen.Generator
	DefaultLength uint
}

// App is the interactive menu.
type App struct {
	auth          services.AuthService
	accounts      services.AccountService
	session       *session.Session
	log           logging.Logger
	reader        *bufio.Reader
	out           io.Writer
	fd            int
	generator     *passgen.Generator
	defaultLength uint
}

// NewApp builds an App from opts, filling in stdin/stdout, a fresh session,
// a no-op logger and the crypto/rand generator where they are unset.
func NewApp(opts Options) *App {
	a := &App{
		auth:          opts.Auth,
		accounts:      opts.Accounts,
		session:       opts.Session,
		log:           opts.Logger,
		out:           opts.Out,
		generator:     opts.Generator,
		defaultLength: opts.DefaultLength,
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	a.fd = TerminalFd(in)
	a.reader = bufio.NewReader(in)

	if a.out == nil {
		a.out = os.Stdout
	}
	if a.session == nil {
		a.session = session.New()
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	if a.generator == nil {
		a.generator = passgen.New(nil)
	}
	if a.defaultLength == 0 {
		a.defaultLength = 16
	}
	return a
}

// Session returns the session the menu logs clients into.
func (a *App) Session() *session.Session { return a.session }

// Run shows the login prompt and the main menu until the user exits, input
// ends or ctx is cancelled. End of input is not an error.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to passvault")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if _, ok := a.session.Current(); !ok {
			err = a.Login(ctx)
		} else {
			var quit bool
			quit, err = a.menu(ctx)
			if quit {
				return nil
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(a.out)
			return nil
		default:
			return err
		}
	}
}

// logger returns the app logger tagged with the current session.
func (a *App) logger() logging.Logger {
	if sid := a.session.ID(); sid != "" {
		return a.log.With("session_id", sid)
	}
	return a.log
}

// TerminalFd returns the file descriptor behind r, or -1 when r is not a file.
func TerminalFd(r io.Reader) int {
	if f, ok := r.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fgmedic-cli/internal/api"
	"fgmedic-cli/internal/session"
)

// App bundles everything the commands share.
type App struct {
	api     *api.Client
	session *session.Store
	log     zerolog.Logger
}

func New(client *api.Client, st *session.Store, log zerolog.Logger) *App {
	return &App{api: client, session: st, log: log}
}

// Root builds the command tree. Every command surfaces one user-facing
// error line and a nonzero exit; nothing panics across this boundary.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "fgmedic",
		Short:         "Book and manage appointments with the FG Medic practice",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		a.loginCmd(),
		a.registerCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.profileCmd(),
		a.doctorsCmd(),
		a.slotsCmd(),
		a.bookCmd(),
		a.appointmentsCmd(),
		a.attendCmd(),
		a.missCmd(),
		a.calendarCmd(),
	)
	return root
}

// friendly folds transport failures into the one generic connectivity
// message; service rejections already carry the service's own words.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	if api.IsTransport(err) {
		return errors.New("could not connect to the server, please try again")
	}
	return err
}

// confirm asks a yes/no question on in and accepts y/yes (any case).
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rollcall-app/rollcall/internal/auth"
	"github.com/rollcall-app/rollcall/internal/config"
	"github.com/rollcall-app/rollcall/internal/demosrv"
	"github.com/rollcall-app/rollcall/internal/logging"
	"github.com/rollcall-app/rollcall/internal/session"
	"github.com/rollcall-app/rollcall/internal/tui"
	"github.com/rollcall-app/rollcall/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to a file under the state dir; the TUI owns stdout.
func newLogger(cfg config.Config) (zerolog.Logger, func()) {
	w, err := logging.FileWriter(cfg.StateDir)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	return logging.New(w), func() { w.Close() } //nolint:errcheck
}

func run() error {
	cfg := config.Load()
	log, closeLog := newLogger(cfg)
	defer closeLog()

	slot := session.NewFileSlot(cfg.TokenPath)
	store := session.NewStore(slot, log)
	store.LoadFromStorage()

	c := client.New(cfg.APIBaseURL, store)
	c.SetTimeout(cfg.HTTPTimeout)
	svc := auth.NewService(store, c, log)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("rollcall " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "login":
			return runLogin(svc)
		case "logout":
			return runLogout(svc)
		case "demo":
			return runDemo(cfg, log)
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}

	// Only the token survives a restart; ask the backend who it belongs to.
	// Offline or expired is fine, the TUI starts at the sign-in form then.
	if err := svc.Resume(context.Background()); err != nil {
		log.Debug().Err(err).Msg("session resume failed")
	}

	app := tui.NewApp(c, store, svc, cfg.StateDir)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// A 401 anywhere tears down the session; drop the TUI back at sign-in.
	c.SetUnauthorizedHook(func() {
		p.Send(tui.SessionExpiredMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runLogin signs in from the terminal without starting the TUI.
func runLogin(svc *auth.Service) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read email: %w", err)
	}
	fmt.Print("password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	user, err := svc.Login(context.Background(), strings.TrimSpace(email), strings.TrimSpace(password))
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(svc *auth.Service) error {
	svc.Logout()
	fmt.Println("signed out")
	return nil
}

// runDemo serves the bundled demo backend until interrupted.
func runDemo(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("demo backend on %s (point ROLLCALL_API_URL at it)\n", cfg.DemoAddr)
	srv := demosrv.New(cfg.DemoJWTSecret, log)
	return srv.ListenAndServe(ctx, cfg.DemoAddr)
}

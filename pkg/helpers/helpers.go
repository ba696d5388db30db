package helpers

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/bombahead/client/pkg/bot"
	"github.com/bombahead/client/pkg/client"
	"github.com/bombahead/client/pkg/logger"
	"github.com/bombahead/client/pkg/render"
	"github.com/bombahead/client/tui"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	// ServerURLEnv overrides the default server address when -s is not given.
	ServerURLEnv   = "BOMBERMAN_SERVER_URL"
	DefaultAddress = "ws://localhost:8038/ws"
)

// Flags holds common CLI flags for bots.
type Flags struct {
	Address     string
	Verbose     bool
	Interactive bool
	EnvFile     string
	Bots        int
}

// RegisterFlags registers the standard CLI flags on the default flag set.
func RegisterFlags(f *Flags) {
	RegisterFlagSet(flag.CommandLine, f)
}

// RegisterFlagSet registers the standard CLI flags on fs.
func RegisterFlagSet(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.Address, "s", "", "server address (ws:// or wss://), defaults to $"+ServerURLEnv+" or "+DefaultAddress)
	fs.BoolVar(&f.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&f.Interactive, "i", false, "interactive terminal UI")
	fs.StringVar(&f.EnvFile, "env", ".env", "dotenv file to load before connecting (missing file is ignored)")
	fs.IntVar(&f.Bots, "n", 1, "number of bots to run in this process")
}

// LoadEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ResolveAddress fills in the server address from the environment or the
// default when no -s flag was given.
func (f *Flags) ResolveAddress() string {
	if f.Address == "" {
		f.Address = os.Getenv(ServerURLEnv)
	}
	if f.Address == "" {
		f.Address = DefaultAddress
	}
	return f.Address
}

// NewClient creates a client from parsed flags with a terminal renderer and
// the auth token from the environment.
func NewClient(f Flags, agent bot.Agent) *client.Client {
	c := client.New(f.ResolveAddress(), agent)
	applyFlags(c, f)
	c.Sink = render.NewTerminal(c.Logger)
	return c
}

func applyFlags(c *client.Client, f Flags) {
	c.Logger = logger.Default()
	c.Logger.SetVerbose(f.Verbose)
	c.AuthToken = os.Getenv(client.AuthTokenEnv)
}

// NewSwarm creates n clients, each with its own agent from newAgent. Only the
// first one draws to the terminal.
func NewSwarm(f Flags, n int, newAgent func() bot.Agent) *client.Swarm {
	s := client.NewSwarm()
	addr := f.ResolveAddress()
	for i := range n {
		c := s.NewClient(addr, newAgent())
		applyFlags(c, f)
		if i == 0 {
			c.Sink = render.NewTerminal(c.Logger)
		}
	}
	return s
}

// Run connects and runs the client until the context is cancelled or the
// connection ends. In interactive mode the client runs behind a TUI, and
// quitting the TUI closes the connection normally.
func Run(ctx context.Context, c *client.Client, interactive bool) error {
	if !interactive {
		return c.Run(ctx)
	}

	program, writer, sink := tui.Start(c)
	c.Logger.SetOutput(writer)
	c.Sink = sink

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer program.Quit()
		return c.Run(ctx)
	})
	g.Go(func() error {
		// the program may exit before Run has started
		_, err := program.Run()
		cancel()
		return err
	})
	return g.Wait()
}

// ExitCode maps a Run result to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// Main parses the standard flags, loads the env file and runs one client, or a
// swarm when -n is greater than one. configure may register handlers on each
// client before it connects.
func Main(newAgent func() bot.Agent, configure ...func(*client.Client)) int {
	var f Flags
	RegisterFlags(&f)
	flag.Parse()

	if err := LoadEnv(f.EnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", f.EnvFile, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f.Bots > 1 {
		s := NewSwarm(f, f.Bots, newAgent)
		for _, c := range s.Clients() {
			for _, fn := range configure {
				fn(c)
			}
		}
		return ExitCode(s.Start(ctx))
	}

	c := NewClient(f, newAgent())
	for _, fn := range configure {
		fn(c)
	}
	return ExitCode(Run(ctx, c, f.Interactive))
}

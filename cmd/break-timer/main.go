package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/break-timer/pkg/config"
	flag "github.com/spf13/pflag"
)

const (
	// exitUsage is used for --help as well as bad arguments, matching the
	// exit status scripts written against earlier versions expect.
	exitUsage       = 2
	exitFatal       = 2
	exitConfig      = 1
	exitInterrupted = 130
)

const (
	commandDiagnostic = "Error running screensaver-command. Make sure you have screensaver-command installed for your desktop environment."
	dbusDiagnostic    = "Error querying org.freedesktop.ScreenSaver. Make sure a screensaver service is running in your session."
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, NewDependencies))
}

// options holds the parsed command line
type options struct {
	help       bool
	configPath string
	desktop    string
	activeTime int
	grace      int
	backend    string
	notifier   string
	quiet      bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	defaults := config.DefaultConfig()

	fs := flag.NewFlagSet("break-timer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&opts.help, "help", "h", false, "Show help options")
	fs.StringVarP(&opts.desktop, "desktop", "d", defaults.Desktop,
		`Name of the desktop environment (e.g. "gnome", "cinnamon")`)
	fs.IntVarP(&opts.activeTime, "active-time", "t", defaults.ActiveTime,
		"Time in minutes before the screen lock notification is shown after unlock")
	fs.IntVarP(&opts.grace, "grace-period", "p", defaults.GracePeriod,
		"Time in seconds between the notification and the screen lock")
	fs.StringVar(&opts.backend, "backend", defaults.Backend,
		"Lock state backend: command or dbus")
	fs.StringVar(&opts.notifier, "notifier", defaults.Notifier,
		"Notification method: notify-send, dbus or stdout")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print the startup line")
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to config file")

	return fs
}

// run is main without the process exit, so tests can drive it
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newDeps dependencyFactory) int {
	var opts options
	fs := newFlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stdout, fs)
		return exitUsage
	}

	if opts.help {
		printUsage(stdout, fs)
		return exitUsage
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitConfig
	}

	applyFlags(cfg, fs, &opts)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stdout, fs)
		return exitUsage
	}

	deps, err := newDeps(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
		return exitConfig
	}
	defer deps.Close()

	deps.Reporter.Debugf("config: desktop=%s active_time=%d grace_period=%d backend=%s notifier=%s",
		cfg.Desktop, cfg.ActiveTime, cfg.GracePeriod, cfg.Backend, cfg.Notifier)

	err = NewApplication(deps).Run(ctx)
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return exitInterrupted
	}

	// Run only returns on a failed lock-state query
	if cfg.Backend == config.BackendDBus {
		fmt.Fprintln(stdout, dbusDiagnostic)
	} else {
		fmt.Fprintln(stdout, commandDiagnostic)
	}
	fmt.Fprintf(stderr, "break-timer: %v\n", err)
	return exitFatal
}

// applyFlags overrides cfg with every flag given on the command line
func applyFlags(cfg *config.Config, fs *flag.FlagSet, opts *options) {
	if fs.Changed("desktop") {
		cfg.Desktop = opts.desktop
	}
	if fs.Changed("active-time") {
		cfg.ActiveTime = opts.activeTime
	}
	if fs.Changed("grace-period") {
		cfg.GracePeriod = opts.grace
	}
	if fs.Changed("backend") {
		cfg.Backend = opts.backend
	}
	if fs.Changed("notifier") {
		cfg.Notifier = opts.notifier
	}
	if fs.Changed("quiet") {
		cfg.Quiet = opts.quiet
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "break-timer - lock the screen after a stretch of active time")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: break-timer [OPTION...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  BREAK_TIMER_DESKTOP        Desktop environment name")
	fmt.Fprintln(w, "  BREAK_TIMER_ACTIVE_TIME    Active minutes before a break")
	fmt.Fprintln(w, "  BREAK_TIMER_GRACE_PERIOD   Seconds between notification and lock")
	fmt.Fprintln(w, "  BREAK_TIMER_BACKEND        Lock state backend (command, dbus)")
	fmt.Fprintln(w, "  BREAK_TIMER_NOTIFIER       Notification method (notify-send, dbus, stdout)")
	fmt.Fprintln(w, "  BREAK_TIMER_QUIET          Suppress per-minute status lines (true/false)")
	fmt.Fprintln(w, "  BREAK_TIMER_CONFIG         Path to config file")
	fmt.Fprintln(w, "  BREAK_TIMER_DEBUG          Set to 1 for debug output on stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/break-timer/config.yaml")
}

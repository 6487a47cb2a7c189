package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/iudanet/fieldops/internal/client/iocli"
	"github.com/iudanet/fieldops/internal/config"
	"github.com/iudanet/fieldops/internal/logging"
)

// BuildInfo version information set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type rootFlags struct {
	envFile  string
	backend  string
	driver   string
	dbPath   string
	logLevel string
	offline  bool
}

// App is the fieldops command tree with its lazily built services.
type App struct {
	root    *cobra.Command
	io      iocli.IO
	cli     *Cli
	closers []func() error
	flags   rootFlags
	info    BuildInfo
}

// NewApp builds the command tree. Services are created on first command run.
func NewApp(info BuildInfo, out iocli.IO) *App {
	a := &App{io: out, info: info}
	a.root = a.rootCommand()
	return a
}

// Execute runs the command selected by args and releases services afterwards.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)

	var result *multierror.Error
	if err != nil {
		result = multierror.Append(result, err)
	}
	for _, closeFn := range a.closers {
		if cerr := closeFn(); cerr != nil {
			result = multierror.Append(result, fmt.Errorf("cleanup: %w", cerr))
		}
	}
	a.closers = nil

	return result.ErrorOrNil()
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fieldops",
		Short: "Offline-first field operations client",
		Long: `fieldops queues backend mutations while the network is down and
replays them in order once it is back, fetches road routes through a
throttled cache, and relays incident reports between devices as QR codes.`,
		Version:           a.info.Version,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.SetVersionTemplate(fmt.Sprintf("fieldops %s (built %s, commit %s)\n",
		a.info.Version, a.info.BuildDate, a.info.GitCommit))

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "dotenv file with FIELDOPS_* settings")
	pf.StringVar(&a.flags.backend, "backend", "", "backend base URL (overrides FIELDOPS_BACKEND_URL)")
	pf.StringVar(&a.flags.driver, "storage", "", "queue storage driver: bolt or sqlite")
	pf.StringVar(&a.flags.dbPath, "db", "", "path to the queue database")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.flags.offline, "offline", false, "do not contact the backend, queue every mutation")

	root.AddCommand(
		a.queueCommand(),
		a.watchCommand(),
		a.routeCommand(),
		a.relayCommand(),
		a.versionCommand(),
	)

	return root
}

// setup загружает конфигурацию, применяет флаги и собирает сервисы
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.cli != nil || cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.flags.envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.flags.backend != "" {
		cfg.BackendURL = a.flags.backend
	}
	if a.flags.driver != "" {
		// Путь по умолчанию следует за драйвером, явно заданный путь сохраняется
		if cfg.StoragePath == config.DefaultStoragePath(cfg.StorageDriver) {
			cfg.StoragePath = config.DefaultStoragePath(a.flags.driver)
		}
		cfg.StorageDriver = a.flags.driver
	}
	if a.flags.dbPath != "" {
		cfg.StoragePath = a.flags.dbPath
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, closeLog)

	c, closeStore, err := bootstrap(cmd.Context(), cfg, a.io, logger, a.flags.offline)
	if err != nil {
		return err
	}
	// Хранилище закрываем раньше файла журнала
	a.closers = append([]func() error{closeStore}, a.closers...)
	a.cli = c

	return nil
}

func (a *App) queueCommand() *cobra.Command {
	queue := &cobra.Command{
		Use:   "queue",
		Short: "Manage mutations waiting for the backend",
	}

	var add addOptions
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Send a mutation, queueing it if the backend is unreachable",
		Example: `  fieldops queue add --method POST --url /api/tasks/42/verify \
    --body '{"verified":true}' --label "verify task 42"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runQueueAdd(cmd.Context(), add)
		},
	}
	f := addCmd.Flags()
	f.StringVar(&add.Method, "method", "POST", "HTTP method")
	f.StringVar(&add.URL, "url", "", "absolute URL or path relative to the backend")
	f.StringVar(&add.Label, "label", "", "human readable description")
	f.StringVar(&add.Body, "body", "", "request body")
	f.StringVar(&add.BodyFile, "body-file", "", "read request body from file")
	f.StringArrayVarP(&add.Headers, "header", "H", nil, "request header 'Name: value' (repeatable)")
	f.BoolVar(&add.QueueOnly, "queue-only", false, "queue without trying the backend")
	_ = addCmd.MarkFlagRequired("url")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List queued mutations in replay order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runQueueList(cmd.Context())
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show connectivity and queue counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runQueueStatus(cmd.Context())
		},
	}

	drainCmd := &cobra.Command{
		Use:   "drain",
		Short: "Replay all queued mutations now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runQueueDrain(cmd.Context())
		},
	}

	retryCmd := &cobra.Command{
		Use:   "retry <id>",
		Short: "Replay a single queued mutation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			return a.cli.runQueueRetry(cmd.Context(), id)
		},
	}

	var force bool
	discardCmd := &cobra.Command{
		Use:   "discard <id>",
		Short: "Drop a queued mutation without replaying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			return a.cli.runQueueDiscard(cmd.Context(), id, force)
		},
	}
	discardCmd.Flags().BoolVarP(&force, "yes", "y", false, "do not ask for confirmation")

	queue.AddCommand(addCmd, listCmd, statusCmd, drainCmd, retryCmd, discardCmd)
	return queue
}

func (a *App) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Probe the backend and replay the queue whenever it comes back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runWatch(cmd.Context())
		},
	}
}

func (a *App) routeCommand() *cobra.Command {
	var (
		style    string
		geometry bool
		follow   bool
	)

	cmd := &cobra.Command{
		Use:   "route [lat,lng]...",
		Short: "Fetch road geometry through two or more waypoints",
		Example: `  fieldops route 18.5204,73.8567 18.5314,73.8446
  fieldops route --follow --style evacuation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if follow {
				return a.cli.runRouteFollow(cmd.Context(), style, geometry)
			}
			if len(args) < 2 {
				return fmt.Errorf("at least two waypoints are required")
			}
			return a.cli.runRoute(cmd.Context(), args, style, geometry)
		},
	}
	cmd.Flags().StringVar(&style, "style", "default", "render style, part of the cache key")
	cmd.Flags().BoolVar(&geometry, "geometry", false, "print every route point")
	cmd.Flags().BoolVar(&follow, "follow", false, "read waypoint sets from stdin, redrawing on each line")

	return cmd
}

func (a *App) relayCommand() *cobra.Command {
	relayCmd := &cobra.Command{
		Use:   "relay",
		Short: "Move incident reports between devices as QR codes",
	}

	var enc encodeOptions
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a report into QR code chunks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runRelayEncode(enc)
		},
	}
	f := encodeCmd.Flags()
	f.StringVar(&enc.Text, "text", "", "report text")
	f.StringVar(&enc.Source, "source", "", "device or operator id")
	f.Float64Var(&enc.Lat, "lat", 0, "latitude")
	f.Float64Var(&enc.Lng, "lng", 0, "longitude")
	f.Float64Var(&enc.Accuracy, "accuracy", 0, "location accuracy in meters")
	f.StringVar(&enc.Category, "category", "", "incident category: fire, flood, rubble, medical")
	f.IntVar(&enc.Severity, "severity", 0, "severity 0-10")
	f.Float64Var(&enc.Confidence, "confidence", 0, "classifier confidence 0-1")
	f.StringSliceVar(&enc.Tags, "tags", nil, "comma separated tags")
	f.StringVar(&enc.ImagePath, "image", "", "attach an image (downscaled before encoding)")
	f.StringVar(&enc.PNGDir, "png", "", "write one PNG QR code per chunk into this directory")
	f.BoolVarP(&enc.Interactive, "interactive", "i", false, "page through QR codes in the terminal")
	_ = encodeCmd.MarkFlagRequired("text")

	decodeCmd := &cobra.Command{
		Use:   "decode [file]...",
		Short: "Reassemble a report from scanned chunks, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.cli.runRelayDecode([]io.Reader{cmd.InOrStdin()})
			}

			inputs := make([]io.Reader, 0, len(args))
			for _, name := range args {
				file, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", name, err)
				}
				defer file.Close()
				inputs = append(inputs, file)
			}
			return a.cli.runRelayDecode(inputs)
		},
	}

	relayCmd.AddCommand(encodeCmd, decodeCmd)
	return relayCmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.io.Println("FieldOps Client")
			a.io.Printf("Version:    %s\n", a.info.Version)
			a.io.Printf("Build Date: %s\n", a.info.BuildDate)
			a.io.Printf("Git Commit: %s\n", a.info.GitCommit)
		},
	}
}

func parseEntryID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}

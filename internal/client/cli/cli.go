package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/fieldops/internal/client/iocli"
	"github.com/iudanet/fieldops/internal/client/mutation"
	"github.com/iudanet/fieldops/internal/client/network"
	"github.com/iudanet/fieldops/internal/client/routing"
	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/internal/relay"
)

//go:generate moq -out queueservice_mock.go . QueueService
//go:generate moq -out routeservice_mock.go . RouteService

// QueueService is the mutation queue as seen by the CLI.
type QueueService interface {
	Submit(ctx context.Context, req *models.MutationRequest) (*mutation.SubmitResult, error)
	Enqueue(ctx context.Context, req *models.MutationRequest) (uint64, error)
	Drain(ctx context.Context) (*mutation.DrainResult, error)
	RetryOne(ctx context.Context, id uint64) error
	Discard(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]*models.QueueEntry, error)
	PendingCount(ctx context.Context) int
	FailedCount(ctx context.Context) int
	LastDrain(ctx context.Context) (time.Time, error)
	Subscribe(fn func(mutation.Event)) func()
	Run(ctx context.Context) error
}

// RouteService resolves road geometry.
type RouteService interface {
	Route(ctx context.Context, waypoints []models.Coordinate, style string) (*routing.Route, error)
}

// Cli runs commands over injected services.
type Cli struct {
	io            iocli.IO
	queue         QueueService
	routes        RouteService
	monitor       *network.Monitor
	prober        network.Prober
	encoder       *relay.Encoder
	receiver      *relay.Receiver
	logger        *slog.Logger
	probeInterval time.Duration
}

// Deps collects the services the CLI runs on.
type Deps struct {
	IO            iocli.IO
	Queue         QueueService
	Routes        RouteService
	Monitor       *network.Monitor
	Prober        network.Prober
	Encoder       *relay.Encoder
	Receiver      *relay.Receiver
	Logger        *slog.Logger
	ProbeInterval time.Duration
}

func New(deps Deps) *Cli {
	return &Cli{
		io:            deps.IO,
		queue:         deps.Queue,
		routes:        deps.Routes,
		monitor:       deps.Monitor,
		prober:        deps.Prober,
		encoder:       deps.Encoder,
		receiver:      deps.Receiver,
		logger:        deps.Logger,
		probeInterval: deps.ProbeInterval,
	}
}

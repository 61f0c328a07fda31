package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/handler"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/metrics"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every configured address. A listener that
// fails to bind releases the ones opened before it.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, errMissingHandler
		}
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			servers.closeListeners()
			return nil, errMissingHandler
		}
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.closeListeners()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}

	metrics.SetStoreDisconnected()
}

// run serves until ctx is done or any server stops serving on its own, then
// shuts every server down and waits for the serving goroutines to return.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Go(func() {
			defer cancel()
			s.httpServer.RunServer()
		})
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		wg.Go(func() {
			defer cancel()
			s.gRPCServer.RunServer()
		})
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		_ = s.httpServer.listener.Close()
	}
	if s.gRPCServer != nil {
		_ = s.gRPCServer.gRPCNetListener.Close()
	}
}

package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/museum-user-api/internal/config"
	myGRPC "github.com/MKhiriev/museum-user-api/internal/handler/grpc"
	"github.com/MKhiriev/museum-user-api/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.Addr().String()).Msg("gRPC server listening")
	g.handler.SetServing()
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.SetNotServing()
	g.server.GracefulStop()
}

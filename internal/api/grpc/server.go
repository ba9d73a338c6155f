package grpc

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Server can start grpc server handling insights requests.
type Server struct {
	service ServiceServer
	address string
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(service ServiceServer, address string, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		l:       l.WithField("component", "grpcServer"),
	}
}

// Run runs the grpc server until ctx is done.
// Returns error when failing to open tcp connection.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return errors.Wrap(err, "starting tcp listener")
	}

	srv := s.newGRPCServer()

	errc := make(chan error, 1)
	go func() {
		s.l.Infof("starting grpc server, listening on %s", s.address)
		if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			errc <- errors.Wrap(err, "serving grpc")
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	srv.GracefulStop()
	s.l.Info("grpc server shut down")

	return nil
}

func (s *Server) newGRPCServer() *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(s.logInterceptor))
	RegisterServiceServer(srv, s.service)
	return srv
}

func (s *Server) logInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	entry := s.l.WithFields(logrus.Fields{
		"method":   info.FullMethod,
		"code":     status.Code(err).String(),
		"duration": time.Since(start),
	})
	if err != nil {
		entry.Warnf("call failed: %v", err)
		return resp, err
	}
	entry.Info("call finished")

	return resp, nil
}

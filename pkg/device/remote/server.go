package remote

import (
	"bytes"
	"context"
	"image/png"
	"net"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"speedscreen/pkg/proto"
)

// Proxy serves dev over net/rpc on srv for the lifetime of the fx app.
func Proxy(dev proto.Control, srv *http.Server, lifecycle fx.Lifecycle, logger *zap.Logger) error {
	server, err := NewServer(dev)
	if err != nil {
		return err
	}
	srv.Handler = server

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.With(zap.String("addr", ln.Addr().String())).Info("proxy listening")
			go func() {
				if err := srv.Serve(ln); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Error("proxy stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

// NewServer registers a Service for dev on a fresh rpc server.
func NewServer(dev proto.Control) (*rpc.Server, error) {
	server := rpc.NewServer()
	if err := server.Register(&Service{dev: dev}); err != nil {
		return nil, err
	}
	return server, nil
}

type Service struct {
	dev proto.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "on":
		return s.dev.PowerOn()
	case "off":
		return s.dev.PowerOff()
	}

	return errors.Errorf("unknown command %q", name)
}

func (s *Service) SetContrast(contrast uint8, _ *EmptyResponse) error {
	return s.dev.SetContrast(contrast)
}

func (s *Service) SetInvert(invert bool, _ *EmptyResponse) error {
	return s.dev.SetInvert(invert)
}

func (s *Service) SetRotate(rotated bool, _ *EmptyResponse) error {
	return s.dev.SetRotate(rotated)
}

func (s *Service) DrawText(text proto.Text, _ *EmptyResponse) error {
	return s.dev.DrawText(text)
}

func (s *Service) DrawBitmap(req *DrawBitmapRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.DrawBitmap(req.X, req.Y, img)
}

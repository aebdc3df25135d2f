package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"crinkbot/internal/domain"
)

// DefaultWorkers is used when Service.Workers is not positive.
const DefaultWorkers = 8

// Service drains a Transport into a MessageHandler.
type Service struct {
	transport domain.Transport
	handler   domain.MessageHandler
	log       *zap.Logger
	workers   int
}

// New constructs a dispatcher. workers <= 0 selects DefaultWorkers.
func New(log *zap.Logger, transport domain.Transport, handler domain.MessageHandler, workers int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Service{transport: transport, handler: handler, log: log, workers: workers}
}

// Run opens the transport and handles messages until ctx is cancelled or
// the inbound stream closes. It waits for in-flight handlers and closes
// the transport before returning.
func (s *Service) Run(ctx context.Context) (err error) {
	if err := s.transport.Open(ctx); err != nil {
		return fmt.Errorf("open transport: %w", err)
	}
	defer func() {
		if cerr := s.transport.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close transport: %w", cerr))
		}
	}()

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	s.log.Info("dispatcher running", zap.Int("workers", s.workers))

	in := s.transport.Inbound()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case m, ok := <-in:
			if !ok {
				break loop
			}
			m.Message.RequestID = uuid.NewString()
			// Go blocks while the limit is reached.
			g.Go(func() error {
				s.handle(ctx, m)
				return nil
			})
		}
	}

	_ = g.Wait()
	s.log.Info("dispatcher stopped")
	return nil
}

func (s *Service) handle(ctx context.Context, m domain.Inbound) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("handler panicked",
				zap.String("request_id", m.Message.RequestID),
				zap.Any("panic", r))
		}
	}()
	s.handler.Handle(ctx, m.Message, m.Reply)
}

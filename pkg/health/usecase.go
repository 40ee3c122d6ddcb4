package health

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const statusOK = "ok"

// Checker probes one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Report maps each dependency name to "ok" or its failure text.
type Report map[string]string

// ReadinessUseCase probes every dependency the API needs to serve traffic.
type ReadinessUseCase interface {
	Ready(ctx context.Context) (Report, error)
}

type service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready probes all dependencies concurrently. Every failure is reported,
// not just the first; the error joins them, each prefixed with its name.
func (s *service) Ready(ctx context.Context) (Report, error) {
	var (
		mu     sync.Mutex
		report = make(Report, len(s.checkers))
		failed []error
		g      errgroup.Group
	)
	for _, ch := range s.checkers {
		g.Go(func() error {
			err := ch.Check(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report[ch.Name()] = err.Error()
				failed = append(failed, fmt.Errorf("%s: %w", ch.Name(), err))
				return nil
			}
			report[ch.Name()] = statusOK
			return nil
		})
	}
	_ = g.Wait()
	return report, errors.Join(failed...)
}

// Package progress assembles the dashboard and records daily activity.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/interview"
	"github.com/artem13815/prepai/pkg/logger"
	"github.com/artem13815/prepai/pkg/resume"
	"github.com/artem13815/prepai/pkg/streak"
	"github.com/artem13815/prepai/pkg/submission"
)

const (
	// RecentLimit caps each list on the dashboard.
	RecentLimit = 5
	maxAttempts = 5
)

// State is the persisted streak of one user.
type State struct {
	CurrentStreak  int
	LastActivityAt *time.Time
}

// StreakStore reads and conditionally writes the streak fields.
type StreakStore interface {
	GetStreak(ctx context.Context, userID uuid.UUID) (State, error)
	// CompareAndSetStreak writes next only if the stored state still equals
	// prev, and reports whether it did.
	CompareAndSetStreak(ctx context.Context, userID uuid.UUID, prev, next State) (bool, error)
}

type Overview struct {
	ResumeReviews  []resume.Review         `json:"resumeReviews"`
	ChatSessions   []interview.Session     `json:"chatSessions"`
	DsaSubmissions []submission.Submission `json:"dsaSubmissions"`
	CurrentStreak  int                     `json:"currentStreak"`
}

type UseCase interface {
	Overview(ctx context.Context, userID uuid.UUID) (Overview, error)
	RecordActivity(ctx context.Context, userID uuid.UUID) (int, error)
}

type service struct {
	streaks     StreakStore
	reviews     resume.Repository
	sessions    interview.Repository
	submissions submission.Repository
	loc         *time.Location
	log         *logger.Logger
	now         func() time.Time
}

func NewService(
	streaks StreakStore,
	reviews resume.Repository,
	sessions interview.Repository,
	submissions submission.Repository,
	loc *time.Location,
	log *logger.Logger,
) UseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &service{
		streaks:     streaks,
		reviews:     reviews,
		sessions:    sessions,
		submissions: submissions,
		loc:         loc,
		log:         log.With("service", "progress"),
		now:         time.Now,
	}
}

func (s *service) Overview(ctx context.Context, userID uuid.UUID) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.streaks.GetStreak(gctx, userID)
		if err != nil {
			return err
		}
		out.CurrentStreak = streak.Current(st.CurrentStreak, st.LastActivityAt, s.now(), s.loc)
		return nil
	})
	g.Go(func() (err error) {
		out.ResumeReviews, err = s.reviews.ListByUser(gctx, userID, RecentLimit, 0)
		return err
	})
	g.Go(func() (err error) {
		out.ChatSessions, err = s.sessions.ListByUser(gctx, userID, RecentLimit, 0)
		return err
	})
	g.Go(func() (err error) {
		out.DsaSubmissions, err = s.submissions.ListByUser(gctx, userID, RecentLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Overview{}, err
		}
		s.log.Error("load progress failed", "user_id", userID.String(), "error", err)
		return Overview{}, apperr.Persistence("load progress", err)
	}
	if out.ResumeReviews == nil {
		out.ResumeReviews = []resume.Review{}
	}
	if out.ChatSessions == nil {
		out.ChatSessions = []interview.Session{}
	}
	if out.DsaSubmissions == nil {
		out.DsaSubmissions = []submission.Submission{}
	}
	return out, nil
}

// ErrConflict is returned when concurrent updates kept winning the race.
var ErrConflict = fmt.Errorf("%w: streak update", apperr.ErrConflict)

// RecordActivity applies one activity to the streak with optimistic
// concurrency: read, compute, then write only if nothing changed in between.
func (s *service) RecordActivity(ctx context.Context, userID uuid.UUID) (int, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		prev, err := s.streaks.GetStreak(ctx, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return 0, err
			}
			return 0, apperr.Persistence("read streak", err)
		}
		now := s.now().UTC()
		next := State{
			CurrentStreak:  streak.Next(prev.CurrentStreak, prev.LastActivityAt, now, s.loc),
			LastActivityAt: &now,
		}
		ok, err := s.streaks.CompareAndSetStreak(ctx, userID, prev, next)
		if err != nil {
			return 0, apperr.Persistence("update streak", err)
		}
		if ok {
			return next.CurrentStreak, nil
		}
		s.log.Debug("streak changed concurrently, retrying", "user_id", userID.String(), "attempt", attempt)
	}
	s.log.Warn("streak update gave up", "user_id", userID.String())
	return 0, ErrConflict
}

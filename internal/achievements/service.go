package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/store"
)

// progressStats summarizes completed work for the unlock rules.
type progressStats struct {
	completed      int
	total          int
	perfect        bool
	trackRemaining map[curriculum.Track]int
	trackSize      map[curriculum.Track]int
}

// definition pairs an achievement with its unlock rule.
type definition struct {
	Achievement
	unlocked func(progressStats) bool
}

func definitions(catalog *curriculum.Catalog) []definition {
	defs := []definition{
		{
			Achievement: Achievement{
				ID:          FirstSteps,
				Title:       "First Steps",
				Description: "Complete your first session",
				Icon:        "🌱",
			},
			unlocked: func(s progressStats) bool { return s.completed >= 1 },
		},
		{
			Achievement: Achievement{
				ID:          Momentum,
				Title:       "Momentum",
				Description: "Complete five sessions",
				Icon:        "⚡",
			},
			unlocked: func(s progressStats) bool { return s.completed >= 5 },
		},
		{
			Achievement: Achievement{
				ID:          Perfectionist,
				Title:       "Perfectionist",
				Description: "Finish a session with a perfect score",
				Icon:        "💎",
			},
			unlocked: func(s progressStats) bool { return s.perfect },
		},
	}

	for _, t := range curriculum.AllTracks() {
		track := t
		name := curriculum.TrackDisplayName(track)
		defs = append(defs, definition{
			Achievement: Achievement{
				ID:          TrackComplete(string(track)),
				Title:       fmt.Sprintf("%s Complete", name),
				Description: fmt.Sprintf("Finish every session in the %s track", name),
				Icon:        "🏅",
			},
			unlocked: func(s progressStats) bool {
				return s.trackSize[track] > 0 && s.trackRemaining[track] == 0
			},
		})
	}

	defs = append(defs, definition{
		Achievement: Achievement{
			ID:          Maestro,
			Title:       "Maestro",
			Description: "Complete the entire curriculum",
			Icon:        "🏆",
		},
		unlocked: func(s progressStats) bool { return s.total > 0 && s.completed == s.total },
	})
	return defs
}

// Definitions returns every achievement that can be unlocked, in
// display order.
func Definitions(catalog *curriculum.Catalog) []Achievement {
	defs := definitions(catalog)
	out := make([]Achievement, len(defs))
	for i, d := range defs {
		out[i] = d.Achievement
	}
	return out
}

// Service evaluates progression state against the achievement rules
// and persists new unlocks.
type Service struct {
	catalog *curriculum.Catalog
	repo    store.AchievementRepo
	now     func() time.Time

	// SessionAwards accumulates achievements unlocked during the
	// current process session, for UI display.
	SessionAwards []Achievement
}

// NewService creates an achievement service. repo may be nil, in which
// case unlocks are not persisted and every run starts fresh.
func NewService(catalog *curriculum.Catalog, repo store.AchievementRepo) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
		now:     time.Now,
	}
}

// Evaluate checks the rules against the given sessions and returns the
// achievements newly unlocked by this call.
func (s *Service) Evaluate(ctx context.Context, sessions []progression.Session) ([]Achievement, error) {
	stats := s.stats(sessions)

	already, err := s.unlockedSet(ctx)
	if err != nil {
		return nil, err
	}

	var fresh []Achievement
	for _, def := range definitions(s.catalog) {
		if already[def.ID] || !def.unlocked(stats) {
			continue
		}
		if s.repo != nil {
			row := store.AchievementRow{
				ID:          string(def.ID),
				Title:       def.Title,
				Description: def.Description,
				UnlockedAt:  s.now(),
			}
			if err := s.repo.Save(ctx, row); err != nil {
				return fresh, fmt.Errorf("persist achievement %s: %w", def.ID, err)
			}
		}
		fresh = append(fresh, def.Achievement)
	}

	s.SessionAwards = append(s.SessionAwards, fresh...)
	return fresh, nil
}

// Unlocked returns all persisted achievements in unlock order.
func (s *Service) Unlocked(ctx context.Context) ([]Achievement, error) {
	if s.repo == nil {
		return append([]Achievement(nil), s.SessionAwards...), nil
	}
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	out := make([]Achievement, len(rows))
	for i, r := range rows {
		out[i] = Achievement{
			ID:          ID(r.ID),
			Title:       r.Title,
			Description: r.Description,
			Icon:        iconFor(ID(r.ID)),
		}
	}
	return out, nil
}

func (s *Service) unlockedSet(ctx context.Context) (map[ID]bool, error) {
	set := make(map[ID]bool)
	for _, a := range s.SessionAwards {
		set[a.ID] = true
	}
	if s.repo == nil {
		return set, nil
	}
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	for _, r := range rows {
		set[ID(r.ID)] = true
	}
	return set, nil
}

func (s *Service) stats(sessions []progression.Session) progressStats {
	stats := progressStats{
		total:          s.catalog.Len(),
		trackRemaining: make(map[curriculum.Track]int),
		trackSize:      make(map[curriculum.Track]int),
	}
	for _, t := range curriculum.AllTracks() {
		n := len(s.catalog.ByTrack(t))
		stats.trackSize[t] = n
		stats.trackRemaining[t] = n
	}

	for _, sess := range sessions {
		if sess.Record.Status != progression.StatusCompleted {
			continue
		}
		stats.completed++
		stats.trackRemaining[sess.Item.Track]--
		if sess.Record.Score != nil && *sess.Record.Score == 100 {
			stats.perfect = true
		}
	}
	return stats
}

func iconFor(id ID) string {
	for _, d := range definitions(curriculum.Default()) {
		if d.ID == id {
			return d.Icon
		}
	}
	return "🏅"
}

package domain

import "context"

// HomeView aggregates everything the landing page renders in one
// response. Profile may be nil when no row exists yet.
type HomeView struct {
	Profile      *ProfileView      `json:"profile"`
	Highlights   []HighlightView   `json:"highlights"`
	Achievements []AchievementView `json:"achievements"`
	Conferences  []ConferenceView  `json:"conferences"`
	Research     []ResearchView    `json:"research"`
}

type HomeUsecase interface {
	// Get issues the underlying reads concurrently; any failure fails
	// the aggregate.
	Get(ctx context.Context, lang Language) (*HomeView, error)
}

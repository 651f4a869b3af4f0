package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"golang.org/x/sync/errgroup"
)

// HomeLimits caps each teaser section of the landing page aggregate.
// A zero value means no cap.
type HomeLimits struct {
	Highlights   int
	Achievements int
	Conferences  int
	Research     int
}

type homeUsecase struct {
	profileRepo     domain.ProfileRepository
	highlightRepo   domain.HighlightRepository
	achievementRepo domain.AchievementRepository
	conferenceRepo  domain.ConferenceRepository
	researchRepo    domain.ResearchRepository
	limits          HomeLimits
}

func NewHomeUsecase(
	profileRepo domain.ProfileRepository,
	highlightRepo domain.HighlightRepository,
	achievementRepo domain.AchievementRepository,
	conferenceRepo domain.ConferenceRepository,
	researchRepo domain.ResearchRepository,
	limits HomeLimits,
) domain.HomeUsecase {
	return &homeUsecase{
		profileRepo:     profileRepo,
		highlightRepo:   highlightRepo,
		achievementRepo: achievementRepo,
		conferenceRepo:  conferenceRepo,
		researchRepo:    researchRepo,
		limits:          limits,
	}
}

func (u *homeUsecase) Get(ctx context.Context, lang domain.Language) (*domain.HomeView, error) {
	var (
		profile      *domain.Profile
		highlights   []domain.Highlight
		achievements []domain.Achievement
		conferences  []domain.Conference
		research     []domain.Research
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = u.profileRepo.Get(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		highlights, err = u.highlightRepo.Fetch(gctx, u.limits.Highlights)
		return err
	})
	g.Go(func() error {
		var err error
		achievements, err = u.achievementRepo.Fetch(gctx, u.limits.Achievements)
		return err
	})
	g.Go(func() error {
		var err error
		conferences, err = u.conferenceRepo.Fetch(gctx, u.limits.Conferences)
		return err
	})
	g.Go(func() error {
		var err error
		research, err = u.researchRepo.Fetch(gctx, u.limits.Research)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &domain.HomeView{
		Highlights:   []domain.HighlightView{},
		Achievements: []domain.AchievementView{},
		Conferences:  []domain.ConferenceView{},
		Research:     []domain.ResearchView{},
	}
	if profile != nil {
		p := profile.Localize(lang)
		view.Profile = &p
	}
	for i := range highlights {
		view.Highlights = append(view.Highlights, highlights[i].Localize(lang))
	}
	for i := range achievements {
		view.Achievements = append(view.Achievements, achievements[i].Localize(lang))
	}
	for i := range conferences {
		view.Conferences = append(view.Conferences, conferences[i].Localize(lang))
	}
	for i := range research {
		view.Research = append(view.Research, research[i].Localize(lang))
	}
	return view, nil
}

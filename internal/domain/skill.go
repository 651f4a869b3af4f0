package domain

import (
	"context"
	"time"
)

// Skill listing order is category ascending, then order_index ascending
// within the category, so rows arrive pre-grouped.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameJP      string    `json:"name_jp"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SkillInput struct {
	Name        string `json:"name" validate:"required"`
	NameJP      string `json:"name_jp"`
	Category    string `json:"category" validate:"required"`
	Proficiency int    `json:"proficiency" validate:"gte=0,lte=100"`
	OrderIndex  int    `json:"order_index"`
}

type SkillView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	OrderIndex  int    `json:"order_index"`
}

func (s *Skill) Localize(lang Language) SkillView {
	return SkillView{
		ID:          s.ID,
		Name:        lang.Resolve(s.Name, s.NameJP),
		Category:    s.Category,
		Proficiency: s.Proficiency,
		OrderIndex:  s.OrderIndex,
	}
}

// SkillGroup is one category's skills in display order.
type SkillGroup struct {
	Category string      `json:"category"`
	Skills   []SkillView `json:"skills"`
}

// GroupSkills folds an already-ordered skill list (category asc,
// order_index asc) into per-category groups without reordering.
func GroupSkills(skills []Skill, lang Language) []SkillGroup {
	groups := []SkillGroup{}
	for _, s := range skills {
		if len(groups) == 0 || groups[len(groups)-1].Category != s.Category {
			groups = append(groups, SkillGroup{Category: s.Category, Skills: []SkillView{}})
		}
		last := &groups[len(groups)-1]
		last.Skills = append(last.Skills, s.Localize(lang))
	}
	return groups
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
}

type SkillUsecase interface {
	ListGrouped(ctx context.Context, lang Language) ([]SkillGroup, error)
	List(ctx context.Context) ([]Skill, error)
	Create(ctx context.Context, input *SkillInput) (*Skill, error)
	Update(ctx context.Context, id string, input *SkillInput) (*Skill, error)
	Delete(ctx context.Context, id string) error
}

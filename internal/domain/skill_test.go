package domain_test

import (
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestGroupSkills(t *testing.T) {
	t.Run("Folds an ordered list into per-category groups", func(t *testing.T) {
		skills := []domain.Skill{
			{Name: "Go", Category: "Backend", OrderIndex: 0},
			{Name: "Postgres", Category: "Backend", OrderIndex: 1},
			{Name: "React", Category: "Frontend", OrderIndex: 0},
		}

		groups := domain.GroupSkills(skills, domain.LanguageEnglish)
		assert.Len(t, groups, 2)
		assert.Equal(t, "Backend", groups[0].Category)
		assert.Equal(t, []string{"Go", "Postgres"}, []string{groups[0].Skills[0].Name, groups[0].Skills[1].Name})
		assert.Equal(t, "Frontend", groups[1].Category)
	})

	t.Run("Localizes skill names", func(t *testing.T) {
		skills := []domain.Skill{
			{Name: "Japanese", NameJP: "日本語", Category: "Language"},
		}
		groups := domain.GroupSkills(skills, domain.LanguageJapanese)
		assert.Equal(t, "日本語", groups[0].Skills[0].Name)
	})

	t.Run("Empty input yields an empty non-nil slice", func(t *testing.T) {
		groups := domain.GroupSkills(nil, domain.LanguageEnglish)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}

package domain_test

import (
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("English always renders the primary value", func(t *testing.T) {
		assert.Equal(t, "Hello", domain.LanguageEnglish.Resolve("Hello", "こんにちは"))
		assert.Equal(t, "Hello", domain.LanguageEnglish.Resolve("Hello", ""))
	})

	t.Run("Japanese renders the translation when present", func(t *testing.T) {
		assert.Equal(t, "こんにちは", domain.LanguageJapanese.Resolve("Hello", "こんにちは"))
	})

	t.Run("Japanese falls back to the primary when translation is empty", func(t *testing.T) {
		assert.Equal(t, "Hello", domain.LanguageJapanese.Resolve("Hello", ""))
	})

	t.Run("Fallback is per-field, not per-record", func(t *testing.T) {
		blog := domain.Blog{
			Title:   "Title",
			TitleJP: "タイトル",
			Content: "Content",
			// ContentJP intentionally empty
		}
		view := blog.Localize(domain.LanguageJapanese)
		assert.Equal(t, "タイトル", view.Title)
		assert.Equal(t, "Content", view.Content)
	})
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, domain.LanguageJapanese, domain.ParseLanguage("jp"))
	assert.Equal(t, domain.LanguageEnglish, domain.ParseLanguage("en"))
	assert.Equal(t, domain.LanguageEnglish, domain.ParseLanguage(""))
	assert.Equal(t, domain.LanguageEnglish, domain.ParseLanguage("fr"))
}

func TestResearchPaperLinkGate(t *testing.T) {
	t.Run("Accepted papers hide the link", func(t *testing.T) {
		r := domain.Research{Title: "Paper", Status: "Accepted", PaperLink: "https://example.com/paper"}
		view := r.Localize(domain.LanguageEnglish)
		assert.Empty(t, view.PaperLink)
		assert.Equal(t, "Accepted", view.Status)
	})

	t.Run("Published papers expose the link", func(t *testing.T) {
		r := domain.Research{Title: "Paper", Status: "Published", PaperLink: "https://example.com/paper"}
		view := r.Localize(domain.LanguageEnglish)
		assert.Equal(t, "https://example.com/paper", view.PaperLink)
	})
}

func TestProfileListFallback(t *testing.T) {
	profile := domain.Profile{
		Name:   "Owner",
		NameJP: "オーナー",
		Education: []domain.EducationEntry{
			{Institution: "University"},
		},
		EducationJP: []domain.EducationEntry{},
		Experience: []domain.ExperienceEntry{
			{Role: "Engineer"},
		},
		ExperienceJP: []domain.ExperienceEntry{
			{Role: "エンジニア"},
		},
	}

	t.Run("Japanese list replaces the English one only when non-empty", func(t *testing.T) {
		view := profile.Localize(domain.LanguageJapanese)
		assert.Equal(t, "オーナー", view.Name)
		// empty JP list falls back wholesale
		assert.Equal(t, "University", view.Education[0].Institution)
		// non-empty JP list replaces wholesale
		assert.Equal(t, "エンジニア", view.Experience[0].Role)
	})

	t.Run("English ignores the Japanese lists", func(t *testing.T) {
		view := profile.Localize(domain.LanguageEnglish)
		assert.Equal(t, "University", view.Education[0].Institution)
		assert.Equal(t, "Engineer", view.Experience[0].Role)
	})
}

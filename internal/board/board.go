// Package board renders the skills of each theme as a terminal progress board.
package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"skills-api/internal/domain"
	"skills-api/pkg/logger"

	"github.com/fatih/color"
)

const barWidth = 20

// Source is the read side of the API. *apiclient.Client satisfies it.
type Source interface {
	FetchThemes(ctx context.Context) ([]domain.Theme, error)
	FetchSkills(ctx context.Context) ([]domain.Skill, error)
}

// Section is one theme and the skills that reference it.
type Section struct {
	Theme  domain.Theme
	Skills []domain.Skill
}

// Load fetches themes and skills. A failed fetch is logged and treated as
// an empty list so the board still renders.
func Load(ctx context.Context, src Source) []Section {
	themes, err := src.FetchThemes(ctx)
	if err != nil {
		logger.Log.Warn("fetch themes failed", "error", err)
		themes = nil
	}
	skills, err := src.FetchSkills(ctx)
	if err != nil {
		logger.Log.Warn("fetch skills failed", "error", err)
		skills = nil
	}
	return GroupByTheme(themes, skills)
}

// GroupByTheme returns one section per theme in theme order. Skills keep
// their input order; skills whose theme_id matches no theme are dropped.
func GroupByTheme(themes []domain.Theme, skills []domain.Skill) []Section {
	byTheme := make(map[int64][]domain.Skill)
	for _, s := range skills {
		byTheme[s.ThemeID] = append(byTheme[s.ThemeID], s)
	}

	sections := make([]Section, 0, len(themes))
	for _, t := range themes {
		sections = append(sections, Section{Theme: t, Skills: byTheme[t.ID]})
	}
	return sections
}

// Render writes every section with a bar per skill.
func Render(w io.Writer, sections []Section) {
	header := color.New(color.FgCyan, color.Bold)
	muted := color.New(color.Faint)

	if len(sections) == 0 {
		muted.Fprintln(w, "No themes yet.")
		return
	}

	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header.Fprintln(w, sec.Theme.Name)
		if len(sec.Skills) == 0 {
			muted.Fprintln(w, "  (no skills)")
			continue
		}

		nameWidth := 0
		for _, s := range sec.Skills {
			if len(s.Skill) > nameWidth {
				nameWidth = len(s.Skill)
			}
		}
		for _, s := range sec.Skills {
			fmt.Fprintf(w, "  %-*s ", nameWidth, s.Skill)
			levelColor(s.Level).Fprint(w, ProgressBar(s.Level, barWidth))
			fmt.Fprintf(w, " %3d%%\n", clamp(s.Level))
		}
	}
}

// RenderThemes writes the id and name of each theme, the choices for "add".
func RenderThemes(w io.Writer, themes []domain.Theme) {
	if len(themes) == 0 {
		color.New(color.Faint).Fprintln(w, "No themes yet.")
		return
	}
	for _, t := range themes {
		fmt.Fprintf(w, "%4d  %s\n", t.ID, t.Name)
	}
}

// ProgressBar draws level (0-100) as a bar of width cells.
func ProgressBar(level, width int) string {
	filled := clamp(level) * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func levelColor(level int) *color.Color {
	switch {
	case level < 34:
		return color.New(color.FgRed)
	case level < 67:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func clamp(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

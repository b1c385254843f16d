package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"skills-api/internal/board"
	"skills-api/pkg/apiclient"
	"skills-api/pkg/logger"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
)

var (
	app = kingpin.New("skillboard", "Terminal client for the skills and themes API")

	apiURL   = app.Flag("api", "API base URL").Envar("SKILLBOARD_API").Default("http://localhost:4242").String()
	logLevel = app.Flag("log-level", "Log level").Default("warn").String()

	boardCmd = app.Command("board", "Show every theme with its skills").Default()

	themesCmd = app.Command("themes", "List theme ids and names")

	addCmd   = app.Command("add", "Add a skill to a theme")
	addTheme = addCmd.Flag("theme", "Theme ID").Short('t').Int64()
	addSkill = addCmd.Arg("skill", "Skill name").Required().String()
	addLevel = addCmd.Flag("level", "Proficiency 0-100").Short('l').Default("0").Int()

	addThemeCmd  = app.Command("add-theme", "Create a theme")
	addThemeName = addThemeCmd.Arg("name", "Theme name").Required().String()
)

var (
	errNoTheme   = errors.New("Please select a theme (--theme, see 'skillboard themes')")
	errNoSkill   = errors.New("Please enter a skill name")
	errNoName    = errors.New("Please enter a theme name")
	successColor = color.New(color.FgGreen)
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger.InitWithWriter(os.Stderr, *logLevel)
	client := apiclient.New(*apiURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch command {
	case boardCmd.FullCommand():
		board.Render(os.Stdout, board.Load(ctx, client))
	case themesCmd.FullCommand():
		err = listThemes(ctx, client, os.Stdout)
	case addCmd.FullCommand():
		err = addSkillToTheme(ctx, client, os.Stdout, *addTheme, *addSkill, *addLevel)
	case addThemeCmd.FullCommand():
		err = createTheme(ctx, client, os.Stdout, *addThemeName)
	}
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listThemes(ctx context.Context, client *apiclient.Client, w io.Writer) error {
	themes, err := client.FetchThemes(ctx)
	if err != nil {
		return fmt.Errorf("Error fetching themes: %w", err)
	}
	board.RenderThemes(w, themes)
	return nil
}

// addSkillToTheme checks the form locally, creates the skill and redraws the board.
func addSkillToTheme(ctx context.Context, client *apiclient.Client, w io.Writer, themeID int64, skill string, level int) error {
	name := strings.TrimSpace(skill)
	if themeID <= 0 {
		return errNoTheme
	}
	if name == "" {
		return errNoSkill
	}

	if _, err := client.CreateSkill(ctx, name, level, themeID); err != nil {
		return fmt.Errorf("Error adding skill: %w", err)
	}
	successColor.Fprintln(w, "Skill added successfully!")

	board.Render(w, board.Load(ctx, client))
	return nil
}

func createTheme(ctx context.Context, client *apiclient.Client, w io.Writer, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errNoName
	}

	theme, err := client.CreateTheme(ctx, name)
	if err != nil {
		return fmt.Errorf("Error adding theme: %w", err)
	}
	successColor.Fprintf(w, "Theme %q added with id %d\n", theme.Name, theme.ID)
	return nil
}

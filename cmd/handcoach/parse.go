package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handcoach/handtext"
	"github.com/lox/handcoach/internal/config"
)

var (
	// Style definitions
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// ParseCmd parses hand narration from arguments or files
type ParseCmd struct {
	Text   []string `kong:"arg,optional,help='Hand narration to parse'"`
	Files  []string `kong:"short='f',type='existingfile',help='Files of narrations, one hand per line'"`
	Config string   `kong:"short='c',default='handcoach.hcl',help='Config file with extra rewrite rules'"`
	JSON   bool     `kong:"help='Emit JSON instead of styled output'"`
}

func (c *ParseCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	normalizer, err := cfg.Normalizer()
	if err != nil {
		return err
	}

	if len(c.Text) > 0 {
		return c.render(handtext.AnalyzeWith(normalizer, strings.Join(c.Text, " ")))
	}
	if len(c.Files) == 0 {
		return errors.New("provide narration text or --files")
	}

	// Parse files concurrently; each line is one hand.
	results := make([][]handtext.Analysis, len(c.Files))
	g, _ := errgroup.WithContext(context.Background())
	for i, path := range c.Files {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			for _, line := range strings.Split(string(data), "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				results[i] = append(results[i], handtext.AnalyzeWith(normalizer, line))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, analyses := range results {
		if len(c.Files) > 1 {
			fmt.Println(mutedStyle.Render(c.Files[i]))
		}
		for _, a := range analyses {
			if err := c.render(a); err != nil {
				return err
			}
			fmt.Println()
		}
	}
	return nil
}

func (c *ParseCmd) render(a handtext.Analysis) error {
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	printField("Position", a.Fields.Position)
	printField("Stakes", a.Fields.Stakes)
	cards := a.Fields.HeroCards.Text
	if cards != "" && a.Fields.HeroCards.Defaulted {
		cards += " " + mutedStyle.Render("(suits defaulted)")
	}
	printField("Hero cards", cards)
	printField("Board", a.Fields.Board)
	printField("Mode", a.Fields.Mode)
	if a.Fields.EffectiveStack > 0 {
		printField("Stack", fmt.Sprintf("%dbb", a.Fields.EffectiveStack))
	}
	printField("Blinds", a.Fields.Blinds)
	if a.Fields.ICMContext {
		printField("ICM", "yes")
	}
	if a.Hand != nil {
		fmt.Printf("%s  %s\n", labelStyle.Render("Hand:"), handStyle.Render(a.Hand.Label))
	}
	return nil
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s  %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

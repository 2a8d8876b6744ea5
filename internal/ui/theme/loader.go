package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme. Omitted colors fall back
// to the default theme.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Accent string `yaml:"accent"`
	Info   string `yaml:"info"`

	Danger          string `yaml:"danger"`
	Safe            string `yaml:"safe"`
	Warning         string `yaml:"warning"`
	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`
}

// LoadCustomTheme loads a theme from a YAML file.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	d := Default()
	return Theme{
		Name:            yt.Name,
		Base:            color(yt.Base, d.Base),
		Surface:         color(yt.Surface, d.Surface),
		Overlay:         color(yt.Overlay, d.Overlay),
		Text:            color(yt.Text, d.Text),
		Subtext:         color(yt.Subtext, d.Subtext),
		Muted:           color(yt.Muted, d.Muted),
		Accent:          color(yt.Accent, d.Accent),
		Info:            color(yt.Info, d.Info),
		Danger:          color(yt.Danger, d.Danger),
		Safe:            color(yt.Safe, d.Safe),
		Warning:         color(yt.Warning, d.Warning),
		BorderFocused:   color(yt.BorderFocused, d.BorderFocused),
		BorderUnfocused: color(yt.BorderUnfocused, d.BorderUnfocused),
	}, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}

func color(v string, fallback lipgloss.Color) lipgloss.Color {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return lipgloss.Color(v)
}

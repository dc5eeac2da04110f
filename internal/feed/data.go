package feed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The mock backend serves static seed data; it never talks to anything
// external.
//
//go:embed seed.yaml
var rawSeed []byte

// Data holds the static payloads served by the mock backend.
type Data struct {
	Briefing      Briefing       `yaml:"briefing"`
	Announcements []Announcement `yaml:"announcements"`
	Articles      []Article      `yaml:"articles"`
	QuickLinks    []QuickLink    `yaml:"quicklinks"`
	TeamUpdates   []TeamUpdate   `yaml:"team_updates"`
	Events        []Event        `yaml:"events"`
	Spotlight     Spotlight      `yaml:"spotlight"`
}

func loadSeed() (Data, error) {
	var data Data
	if err := yaml.Unmarshal(rawSeed, &data); err != nil {
		return Data{}, fmt.Errorf("decoding seed data: %w", err)
	}
	return data, nil
}

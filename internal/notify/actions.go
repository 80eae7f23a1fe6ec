package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benchguard/slope-engine/internal/models"
)

// ActionPack maps alert escalations onto site mitigation commands loaded
// from a YAML playbook.
type ActionPack struct {
	actions []Action
	logger  *slog.Logger
}

// Action is a single playbook entry.
type Action struct {
	ID       string      `yaml:"id"`
	Match    ActionMatch `yaml:"match"`
	Commands []string    `yaml:"commands"`

	minLevel models.AlertLevel
}

// ActionMatch defines optional attributes narrowing when an action fires.
// Empty fields match everything.
type ActionMatch struct {
	MinLevel string   `yaml:"min_level"`
	Sites    []string `yaml:"sites"`
	Channels []string `yaml:"channels"`
}

// ActionConfigFile is the YAML root structure.
type ActionConfigFile struct {
	Actions []Action `yaml:"actions"`
}

// NewActionPack loads the playbook from the provided path. If path is empty
// or the file does not exist, returns a nil pack; dispatch then falls back
// to the default command.
func NewActionPack(path string, logger *slog.Logger) (*ActionPack, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var cfg ActionConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	for i := range cfg.Actions {
		action := &cfg.Actions[i]
		if action.Match.MinLevel == "" {
			action.minLevel = models.AlertWatch
			continue
		}
		level, err := models.ParseAlertLevel(strings.ToUpper(action.Match.MinLevel))
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", action.ID, err)
		}
		action.minLevel = level
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ActionPack{actions: cfg.Actions, logger: logger}, nil
}

// CommandsFor returns the deduplicated commands every matching action
// contributes for an escalation.
func (p *ActionPack) CommandsFor(siteID string, level models.AlertLevel, dominant []models.ChannelOpinion) []string {
	if p == nil {
		return nil
	}

	matched := make([]string, 0)
	for _, action := range p.actions {
		if level < action.minLevel {
			continue
		}
		if len(action.Match.Sites) > 0 && !siteMatches(action.Match.Sites, siteID) {
			continue
		}
		if len(action.Match.Channels) > 0 && !channelMatches(action.Match.Channels, dominant) {
			continue
		}
		matched = appendUnique(matched, action.Commands...)
	}
	return matched
}

func siteMatches(sites []string, siteID string) bool {
	for _, s := range sites {
		if strings.EqualFold(s, siteID) {
			return true
		}
	}
	return false
}

func channelMatches(channels []string, dominant []models.ChannelOpinion) bool {
	for _, op := range dominant {
		for _, ch := range channels {
			if strings.EqualFold(ch, op.Channel) {
				return true
			}
		}
	}
	return false
}

func appendUnique(existing []string, additions ...string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, cmd := range existing {
		seen[cmd] = struct{}{}
	}
	for _, item := range additions {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		existing = append(existing, item)
		seen[item] = struct{}{}
	}
	return existing
}

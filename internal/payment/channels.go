// Package payment holds the FPX channel reference list and the single-select
// channel picker of the payment form page.
package payment

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed channels.yaml
var channelsYAML []byte

const statusActive = "active"

type Channel struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Code   string `yaml:"code"`
	Status string `yaml:"status"`
}

func (c Channel) Active() bool {
	return strings.EqualFold(c.Status, statusActive)
}

// ClassName projects the card state: active/inactive plus selected.
func (c Channel) ClassName(selected bool) string {
	cls := "fpx-channel-card inactive"
	if c.Active() {
		cls = "fpx-channel-card active"
	}
	if selected {
		cls += " selected"
	}
	return cls
}

type channelFile struct {
	Channels []Channel `yaml:"channels"`
}

// ParseChannels decodes a channel list document.
func ParseChannels(data []byte) ([]Channel, error) {
	var f channelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse channels: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Channels))
	for _, c := range f.Channels {
		if c.ID == "" {
			return nil, fmt.Errorf("parse channels: channel %q has no id", c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("parse channels: duplicate id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return f.Channels, nil
}

// DefaultChannels returns the embedded FPX bank list.
func DefaultChannels() []Channel {
	chans, err := ParseChannels(channelsYAML)
	if err != nil {
		panic(err)
	}
	return chans
}

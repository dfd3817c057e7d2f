package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/boxpaint/dom/style/css"
	"github.com/npillmayer/boxpaint/layout"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// config is the content of a configuration file.
type config struct {
	Viewport struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"viewport"`
	Layout struct {
		DefaultDisplay   string `toml:"default_display"`
		UserAgentDisplay bool   `toml:"user_agent_display"`
	} `toml:"layout"`
}

func defaultConfig() config {
	var c config
	c.Viewport.Width = defaultWidth
	c.Viewport.Height = defaultHeight
	c.Layout.DefaultDisplay = "block"
	return c
}

// loadConfig reads a TOML configuration file. Settings missing from the file
// keep their defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("reading configuration %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, fmt.Errorf("unknown configuration key %q in %s", undecoded[0].String(), path)
	}
	return c, nil
}

// layoutOptions converts the layout settings.
func (c config) layoutOptions() (layout.Options, error) {
	opts := layout.DefaultOptions()
	if c.Layout.DefaultDisplay != "" {
		mode, err := css.ParseDisplay(c.Layout.DefaultDisplay)
		if err != nil {
			return opts, fmt.Errorf("configuration: %w", err)
		}
		opts.DefaultDisplay = mode
	}
	opts.UserAgentDisplay = c.Layout.UserAgentDisplay
	return opts, nil
}

func (c config) viewport() layout.Rect {
	return layout.Rect{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

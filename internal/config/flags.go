package config

import (
	"flag"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagContent    = flag.String("content", "", "Path to the panel content catalog (yaml or json)")
	flagWatch      = flag.Bool("watch", false, "Reload the content catalog when it changes")
	flagHeadless   = flag.Bool("headless", false, "Run the scripted scenario without a window")
	flagDuration   = flag.Duration("duration", 0, "Headless run length")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagDump       = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the --dump-config target, if any.
func DumpPath() string {
	return *flagDump
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagContent != "" {
		cfg.Content.Path = *flagContent
	}
	if *flagWatch {
		cfg.Content.Watch = true
	}
	if *flagHeadless {
		cfg.Run.Headless = true
	}
	if *flagDuration > time.Duration(0) {
		cfg.Run.Duration = *flagDuration
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}

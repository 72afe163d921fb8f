package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/AlvinHon/diffie-hellman-groups/modp"
	"github.com/go-errors/errors"
	ini "gopkg.in/ini.v1"
)

type searchConf struct {
	MaxTrials int           `ini:"max_trials"`
	Timeout   time.Duration `ini:"timeout"`
}

type logConf struct {
	Level string `ini:"level"`
}

type config struct {
	Search searchConf
	Log    logConf
}

func defaultConfig() *config {
	return &config{
		Search: searchConf{MaxTrials: modp.DefaultMaxTrials},
		Log:    logConf{Level: "info"},
	}
}

// loadConfig reads file over the defaults. An empty name yields the
// defaults unchanged. Values that do not parse are errors, not defaults.
func loadConfig(file string) (*config, error) {
	conf := defaultConfig()
	if file == "" {
		return conf, nil
	}
	f, err := ini.Load(file)
	if err != nil {
		return nil, errors.WrapPrefix(err, "loading "+file, 0)
	}
	if err = f.Section("search").StrictMapTo(&conf.Search); err != nil {
		return nil, errors.WrapPrefix(err, "section [search]", 0)
	}
	if err = f.Section("log").StrictMapTo(&conf.Log); err != nil {
		return nil, errors.WrapPrefix(err, "section [log]", 0)
	}
	if conf.Search.MaxTrials <= 0 {
		return nil, errors.Errorf("search.max_trials must be positive, got %d", conf.Search.MaxTrials)
	}
	if conf.Search.Timeout < 0 {
		return nil, errors.Errorf("search.timeout must not be negative, got %s", conf.Search.Timeout)
	}
	if _, err = parseLevel(conf.Log.Level); err != nil {
		return nil, err
	}
	return conf, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", s)
}

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/karlseguin/mcli/outputs"
	"github.com/karlseguin/mcli/statements"
	log "github.com/sirupsen/logrus"
)

type Preferences struct {
	HistoryFile         string   `toml:"history_file"`
	PasswordFile        string   `toml:"password_file"`
	Pager               string   `toml:"pager"`
	PagerCommand        string   `toml:"pager_command"`
	Format              string   `toml:"format"`
	Timing              bool     `toml:"timing"`
	DestructiveWarning  bool     `toml:"destructive_warning"`
	DestructiveKeywords []string `toml:"destructive_keywords"`
	ReadOnlyKeywords    []string `toml:"read_only_keywords"`
}

func defaultPreferences(configDir string) Preferences {
	p := Preferences{
		Pager:               "auto",
		Format:              outputs.FORMAT_TABLE,
		DestructiveWarning:  true,
		DestructiveKeywords: append([]string(nil), statements.DefaultDestructive...),
		ReadOnlyKeywords:    append([]string(nil), statements.DefaultReadOnly...),
	}
	if configDir != "" {
		p.HistoryFile = filepath.Join(configDir, "history")
		p.PasswordFile = filepath.Join(configDir, ".pass")
	}
	return p
}

// loadPreferences reads config.toml from our directory under the user's
// config dir, unless a specific file is given. Problems are logged and the
// defaults used: a broken preference file shouldn't stop anyone from
// connecting.
func loadPreferences(configFile string) Preferences {
	configDir := ""
	if userConfigDir, err := os.UserConfigDir(); err != nil {
		log.WithFields(log.Fields{"context": "failed to load config dir"}).Error(err)
	} else {
		configDir = filepath.Join(userConfigDir, "mcli")
		os.Mkdir(configDir, 0750)
	}

	if configFile == "" {
		if configDir == "" {
			return defaultPreferences("")
		}
		configFile = filepath.Join(configDir, "config.toml")
	}
	return readPreferences(configDir, configFile)
}

func readPreferences(configDir string, configFile string) Preferences {
	preferences := defaultPreferences(configDir)

	meta, err := toml.DecodeFile(configFile, &preferences)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithFields(log.Fields{"context": configFile}).Info("no preference file")
		} else {
			log.WithFields(log.Fields{"context": "read preference file", "path": configFile}).Error(err)
		}
		return defaultPreferences(configDir)
	}

	for _, key := range meta.Undecoded() {
		log.WithFields(log.Fields{"context": configFile, "key": key.String()}).Info("unknown preference key")
	}
	return preferences
}

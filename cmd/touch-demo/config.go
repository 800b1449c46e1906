package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type config struct {
	RegionWidth  int
	RegionHeight int
	Sound        bool
	LogLines     int
}

const configFile = "config.toml"

func defaultConfig() config {
	return config{
		RegionWidth:  40,
		RegionHeight: 12,
		Sound:        true,
		LogLines:     14,
	}
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("Couldn't resolve config directory: %v\n", err)
	}
	return filepath.Join(dir, "touch-demo")
}

func initializeConfigIfNot() {
	conf := defaultConfig()

	configdir := configDir()
	if _, err := os.Stat(configdir); os.IsNotExist(err) {
		if err := os.MkdirAll(configdir, 0700); err != nil {
			log.Fatalf("Couldn't create config directory: %v\n", err)
		}
	}
	tomlfile := filepath.Join(configdir, configFile)
	if _, err := os.Stat(tomlfile); os.IsNotExist(err) {
		writeConfig(&conf)
	}
}

func readConfig() *config {
	f := filepath.Join(configDir(), configFile)
	config := defaultConfig()
	if _, err := toml.DecodeFile(f, &config); err != nil {
		log.Fatalf("Couldn't read config file: %v\n", err)
	}

	if config.RegionWidth < 1 || config.RegionHeight < 1 {
		log.Fatalf("Config region %dx%d is not a usable hit region\n",
			config.RegionWidth, config.RegionHeight)
	}
	if config.LogLines < 1 {
		config.LogLines = defaultConfig().LogLines
	}

	return &config
}

func writeConfig(conf *config) {
	f := filepath.Join(configDir(), configFile)
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(&conf); err != nil {
		log.Fatalf("Couldn't write config file: %v\n", err)
	}
	os.WriteFile(f, buffer.Bytes(), 0644)
}

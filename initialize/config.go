// Package initialize handles the initialization of the blog's configuration and components
package initialize

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/dongdio/OpenBlog/global"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/utility/utils"
)

const (
	// DefaultConfigFileName is the name of the configuration file
	DefaultConfigFileName = "config.json"

	// DefaultFileMode defines the permission for created files
	DefaultFileMode = 0o644

	// DefaultDirMode defines the permission for created directories
	DefaultDirMode = 0o755
)

// PWD returns the program working directory
func PWD() string {
	if global.ForceBinDir {
		ex, err := os.Executable()
		if err != nil {
			log.Fatal(err)
		}
		return filepath.Dir(ex)
	}
	d, err := os.Getwd()
	if err != nil {
		d = "."
	}
	return d
}

// LastLaunchedVersion stores the version from the last launch
var LastLaunchedVersion string

// InitConfig loads configuration from file or creates a default one if not exists,
// then applies environment variables and development overrides
func InitConfig() {
	pwd := PWD()
	if !filepath.IsAbs(global.DataDir) {
		global.DataDir = filepath.Join(pwd, global.DataDir)
	}

	configPath := filepath.Join(global.DataDir, DefaultConfigFileName)
	log.Infof("reading config file: %s", configPath)

	if !utils.Exists(configPath) {
		createDefaultConfig(configPath)
	} else {
		loadExistingConfig(configPath)
	}

	loadFromEnv()

	if global.Dev {
		conf.Conf.ProductionEnv = false
	}

	convertAbsPaths(pwd)
	log.Debugf("config: %+v", conf.Conf)
}

// createDefaultConfig creates a default configuration file at the specified path
func createDefaultConfig(configPath string) {
	log.Info("config file does not exist, creating default config file")

	f, err := utils.CreateNestedFile(configPath)
	if err != nil {
		log.Fatalf("failed to create config file: %v", err)
	}
	if err = f.Close(); err != nil {
		log.Fatalf("failed to close config file: %v", err)
	}

	conf.Conf = conf.DefaultConfig(global.DataDir)
	LastLaunchedVersion = conf.Version
	conf.Conf.LastLaunchedVersion = conf.Version

	if !utils.WriteJSONToFile(configPath, conf.Conf) {
		log.Fatal("failed to write default config file")
	}
}

// loadExistingConfig loads configuration from an existing file
func loadExistingConfig(configPath string) {
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	conf.Conf = conf.DefaultConfig(global.DataDir)
	err = utils.JSONTool.Unmarshal(configBytes, conf.Conf)
	if err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	LastLaunchedVersion = conf.Conf.LastLaunchedVersion
	if strings.HasPrefix(conf.Version, "v") || LastLaunchedVersion == "" {
		conf.Conf.LastLaunchedVersion = conf.Version
	}

	// Update the config file to ensure it has the latest structure
	updateConfigFile(configPath)
}

// updateConfigFile writes the current configuration back to the file
func updateConfigFile(configPath string) {
	confBody, err := utils.JSONTool.MarshalIndent(conf.Conf, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}

	err = os.WriteFile(configPath, confBody, DefaultFileMode)
	if err != nil {
		log.Fatalf("failed to update config file: %v", err)
	}
}

func loadFromEnv() {
	prefix := global.EnvPrefix
	if global.NoPrefix {
		prefix = ""
	}
	log.Infof("loading config from environment variables with prefix %q", prefix)
	if err := env.ParseWithOptions(conf.Conf, env.Options{Prefix: prefix}); err != nil {
		log.Fatalf("failed to load config from environment variables: %+v", err)
	}
}

func convertAbsPaths(pwd string) {
	convertAbsPath := func(path *string) {
		if *path != "" && !filepath.IsAbs(*path) {
			*path = filepath.Join(pwd, *path)
		}
	}
	convertAbsPath(&conf.Conf.Log.Name)
	convertAbsPath(&conf.Conf.Database.DBFile)
	convertAbsPath(&conf.Conf.ThemeDir)
}

package config

import (
	"flag"
	"io/ioutil"
	"os"
	"path"

	"github.com/fernandosanchezjr/splitmix64/utils"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const ConfigFileName = "config.yaml"

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file (default <home-folder>/config.yaml)")
}

// Path returns the config file given with -config, or config.yaml inside the home folder.
func Path() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), ConfigFileName)
}

// LoadConfig reads the YAML file at configFile over the defaults. A missing file is not an
// error and yields Default().
func LoadConfig(configFile string) (*Config, error) {
	c := Default()
	expanded, err := homedir.Expand(configFile)
	if err != nil {
		return nil, err
	}
	var data []byte
	if data, err = ioutil.ReadFile(expanded); err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", expanded).Debug("No config file, using defaults")
			return c, nil
		}
		return nil, err
	}
	log.WithField("path", expanded).Debug("Loading config")
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

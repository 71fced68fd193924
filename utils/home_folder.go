package utils

import (
	"flag"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

var homeFolder string

func init() {
	flag.StringVar(&homeFolder, "home-folder", "~/.splitmix64", "specify home folder")
}

// GetHomeFolder expands and creates the -home-folder directory. Failures are fatal.
func GetHomeFolder() string {
	appHomeFolder, err := homedir.Expand(homeFolder)
	if err != nil {
		log.WithError(err).Fatal("Error parsing home folder")
	}
	if err = os.MkdirAll(appHomeFolder, 0700); err != nil {
		log.WithError(err).Fatal("Could not create ", appHomeFolder)
	}
	return appHomeFolder
}

func GetSubFolder(folderPath string) string {
	targetPath := path.Join(GetHomeFolder(), folderPath)
	if err := os.MkdirAll(targetPath, 0700); err != nil {
		log.WithError(err).Fatal("Could not create ", targetPath)
	}
	return targetPath
}

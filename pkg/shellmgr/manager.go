// Package shellmgr ties the shell together: configuration, logging and the
// configured object-storage service, bundled into a single manager with a
// trivial lifecycle (construct once at startup, Destroy on the way out).
package shellmgr

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/objectstores/s3shell/pkg/awss3"
	"github.com/objectstores/s3shell/pkg/localstore"
	"github.com/objectstores/s3shell/pkg/objstore"
)

type ShellManager struct {
	Store  objstore.ObjectStore
	Logger objstore.Logger
	Cfg    *viper.Viper

	logFile *os.File
}

func NewManager(userCfg map[string]interface{}) (*ShellManager, error) {
	var err error
	mgr := &ShellManager{}

	if cfgPathRaw, ok := userCfg["config-file"]; ok {
		if cfgPath, ok := cfgPathRaw.(string); ok {
			err = mgr.initConfig(&cfgPath)
		} else {
			return nil, errors.New("option 'config-file' must be of type string")
		}
	} else {
		err = mgr.initConfig(nil)
	}
	if err != nil {
		return nil, err
	}

	if loggerRaw, ok := userCfg["logger"]; ok {
		if logger, ok := loggerRaw.(objstore.Logger); ok {
			mgr.Logger = logger
		} else {
			return nil, errors.New("option 'logger' must satisfy objstore.Logger")
		}
	} else if err = mgr.initLogger(); err != nil {
		return nil, err
	}

	err = mgr.initObjectStore()
	if err != nil {
		return nil, err
	}

	return mgr, nil
}

func (self *ShellManager) Destroy() {
	self.Store.Destroy()
	if self.logFile != nil {
		self.logFile.Close()
	}
}

func (self *ShellManager) initConfig(cfgPath *string) error {
	// Setup defaults and globals here. These can be overwritten in the config,
	// but aren't included by default.

	// This is a private viper context just for s3shell (so as not to conflict
	// with the importer's usage).
	self.Cfg = viper.New()

	// Operational side channel; one timestamped line per shell event. The
	// file is truncated on every startup.
	self.Cfg.SetDefault("logFile", "output.log")

	self.Cfg.SetDefault("default-provider", "aws")
	self.Cfg.SetDefault("providers.aws.objstore", "awsS3")
	self.Cfg.SetDefault("providers.local.objstore", "localDir")

	// Order of precedence: ENV, s3shell.yaml, "us-west-2"
	self.Cfg.SetDefault("service.objstore.awsS3.region", "us-west-2")
	self.Cfg.BindEnv("service.objstore.awsS3.region", "AWS_DEFAULT_REGION")

	self.Cfg.SetDefault("service.objstore.localDir.root", "./objstore-data")

	if cfgPath != nil {
		// Use config file from the flag.
		self.Cfg.SetConfigFile(*cfgPath)
		if err := self.Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
		return nil
	}

	// Default search path is ./configs/s3shell.* and the home directory
	// (* can be json, yaml, etc)
	self.Cfg.AddConfigPath("./configs")
	if home, err := homedir.Dir(); err == nil {
		self.Cfg.AddConfigPath(home)
	}
	self.Cfg.SetConfigName("s3shell")

	// Every setting has a default, so a missing config file is fine; anything
	// else (e.g. malformed yaml) is not.
	if err := self.Cfg.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "Failed to load config")
		}
	}
	return nil
}

func (self *ShellManager) initLogger() error {
	logPath := self.Cfg.GetString("logFile")
	logFile, err := os.Create(logPath)
	if err != nil {
		return errors.Wrap(err, "Failed to open log file "+logPath)
	}

	logger := logrus.New()
	logger.SetOutput(logFile)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	self.logFile = logFile
	self.Logger = logger
	return nil
}

func (self *ShellManager) initObjectStore() error {
	providerName := self.Cfg.GetString("default-provider")
	if providerName == "" {
		return errors.New("No default provider in configuration")
	}

	serviceName := self.Cfg.GetString("providers." + providerName + ".objstore")
	if serviceName == "" {
		return errors.New("Provider \"" + providerName + "\" does not provide an object storage service")
	}

	var err error = nil
	switch serviceName {
	case "awsS3":
		self.Store, err = awss3.NewObjectStore(
			self.Logger.WithField("module", "objstore.awss3"),
			self.Cfg.Sub("service.objstore.awsS3"))
	case "localDir":
		self.Store, err = localstore.NewObjectStore(
			self.Logger.WithField("module", "objstore.localdir"),
			self.Cfg.Sub("service.objstore.localDir"))
	default:
		return errors.New("Unrecognized object storage service: " + serviceName)
	}

	if err != nil {
		return errors.Wrap(err, "Failed to initialize service "+serviceName)
	}
	return nil
}

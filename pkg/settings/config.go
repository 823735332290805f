package settings

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk settings database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the settings base path from an .outline config file or
// OUTLINE_* environment variables, defaulting under the home directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.outline.db")
	viper.SetConfigName(".outline") // .yaml is implicit
	viper.SetEnvPrefix("OUTLINE")
	viper.AutomaticEnv()

	if override := os.Getenv("OUTLINE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

package config

import (
	"path/filepath"

	"github.com/bigredeye/gradebook/pkg/conf"
	"github.com/pkg/errors"
)

type Config struct {
	Storage struct {
		Dir          string
		StudentsFile string
		CoursesFile  string
	}

	Reports struct {
		Dir    string
		Charts struct {
			Width  int
			Height int
		}
	}

	Server struct {
		ListenAddress string
	}

	Client struct {
		Endpoint string
	}

	Log struct {
		Production bool
		File       string
	}
}

func (c *Config) StudentsPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.StudentsFile)
}

func (c *Config) CoursesPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.CoursesFile)
}

var defaults = map[string]interface{}{
	"storage.dir":           ".",
	"storage.studentsfile":  "students.json",
	"storage.coursesfile":   "courses.json",
	"reports.dir":           ".",
	"reports.charts.width":  640,
	"reports.charts.height": 480,
	"server.listenaddress":  "localhost:8080",
	"client.endpoint":       "http://localhost:8080",
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("GRADEBOOK"),
		conf.ConfigFile(path),
		conf.Defaults(defaults),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}

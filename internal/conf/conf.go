// Copyright 2025-2026 The Catalyst-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package conf loads the optimizer configuration and bootstraps logging.
package conf

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/catalyst-go/catalyst/internal/conf/logger"
)

const ConfFileName = "etc/catalyst.yaml"

var (
	Config *CatalystConf
	Log    *logrus.Logger
)

func init() {
	Log = logger.Log
	InitConf()
}

type CatalystConf struct {
	Basic struct {
		Debug      bool `yaml:"debug"`
		ConsoleLog bool `yaml:"consoleLog"`
	} `yaml:"basic"`
	Planner struct {
		// MaxIterations caps every fixed point batch of the built-in
		// planner. Must be positive.
		MaxIterations int `yaml:"maxIterations"`
	} `yaml:"planner"`
}

// InitConf resets the configuration to its defaults, overlaid with the
// optional config file when it is present in the working directory.
func InitConf() {
	cc := CatalystConf{}
	cc.Planner.MaxIterations = 100

	if _, err := os.Stat(ConfFileName); err == nil {
		if err := LoadConfigFromPath(ConfFileName, &cc); err != nil {
			Log.Fatal(err)
		}
	}
	Config = &cc

	if Config.Planner.MaxIterations < 1 {
		Log.Fatal(fmt.Errorf("invalid planner.maxIterations %d, must be positive", Config.Planner.MaxIterations))
	}
	if Config.Basic.Debug {
		Log.SetLevel(logrus.DebugLevel)
	}
	if Config.Basic.ConsoleLog {
		Log.SetOutput(os.Stdout)
	}
}

// LoadConfigFromPath unmarshals a yaml file into the given struct.
func LoadConfigFromPath(path string, c interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, c)
}

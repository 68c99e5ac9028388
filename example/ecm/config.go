// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config holds the parameters a factoring run can also be supplied
// from a YAML file via --config, as an alternative to passing every
// flag on the command line.
type Config struct {
	Number    string `yaml:"number"`
	NumCurves int    `yaml:"num_curves"`
	B1        uint64 `yaml:"b1"`
	B2        uint64 `yaml:"b2"`
	Sigma     string `yaml:"sigma"`
	Threads   int    `yaml:"threads"`
}

func readConfigFile(filePath string) (*Config, error) {
	c := &Config{}
	yamlFile, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, err
	}
	return c, nil
}

/*
Copyright © 2025 Valmik Joshi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/valmik/hinglate/internal/orchestrator"
	"github.com/valmik/hinglate/internal/router"
	"github.com/valmik/hinglate/internal/translator"
)

// failureMessage is shown in place of output whenever the external
// translation service fails; no partial translation is ever printed.
const failureMessage = "Translation failed. Please try again."

// buildService constructs the configured external translation backend.
func buildService(name string) (translator.Service, error) {
	switch name {
	case "google":
		return translator.NewGoogleService(), nil
	case "mymemory":
		return translator.NewMyMemoryService(viper.GetString("mymemory-email")), nil
	default:
		return nil, fmt.Errorf("unknown service: %s (expected google or mymemory)", name)
	}
}

// buildOrchestrator wires the translation pipeline from viper-resolved
// settings (flags, HINGLATE_* env vars, or the config file).
func buildOrchestrator() (*orchestrator.Orchestrator, error) {
	svc, err := buildService(viper.GetString("service"))
	if err != nil {
		return nil, err
	}

	cfg := translator.ServiceConfig{
		Credentials: viper.GetString("credentials"),
		ProjectID:   viper.GetString("project"),
	}

	return orchestrator.New(router.New(svc, cfg), orchestrator.Config{
		Parallelism: viper.GetInt("parallel"),
	}), nil
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

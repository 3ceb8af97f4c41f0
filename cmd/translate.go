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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valmik/hinglate/internal/translator"
	"github.com/valmik/hinglate/internal/validator"
)

var (
	inputFile  string
	outputFile string
	doValidate bool
	verbose    bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate Hinglish text to English",
	Long: `Translate mixed Hindi/English text to English in one shot.

The text is taken from the arguments, from --input, or from stdin, in that
order of preference. The result goes to stdout or to --output.

Examples:
  hinglate translate "मैं movie dekhne ja raha hoon"
  hinglate translate -i letter.txt -o letter.en.txt
  echo "kya haal hai?" | hinglate translate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(verbose)

		text, err := readInput(args)
		if err != nil {
			logger.Error("failed to read input", "err", err)
			return err
		}

		orch, err := buildOrchestrator()
		if err != nil {
			logger.Error("failed to configure service", "err", err)
			return err
		}

		logger.Debug("translating",
			"service", viper.GetString("service"),
			"parallel", viper.GetInt("parallel"),
			"chars", len(text))

		result, err := orch.Translate(context.Background(), text)
		if err != nil {
			var se *translator.ServiceError
			if errors.As(err, &se) {
				logger.Error("translation service failed", "service", se.Service, "err", err)
				fmt.Fprintln(os.Stderr, failureMessage)
			}
			return err
		}

		if doValidate && result != "" {
			if ok, verr := validator.New().IsEnglish(result); !ok {
				logger.Warn("output may not be English", "reason", verr)
			}
		}

		return writeOutput(result)
	},
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(result string) error {
	if outputFile == "" {
		fmt.Println(result)
		return nil
	}
	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputFile, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (stdin if omitted)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for translation (stdout if omitted)")
	translateCmd.Flags().BoolVar(&doValidate, "validate", false, "Warn when the output does not look like English")
	translateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	translateCmd.Flags().String("service", "google", "Translation service (google, mymemory)")
	translateCmd.Flags().StringP("credentials", "c", "", "Path to Google Cloud credentials")
	translateCmd.Flags().StringP("project", "p", "", "Google Cloud Project ID")
	translateCmd.Flags().String("mymemory-email", "", "MyMemory email (for higher limits)")
	translateCmd.Flags().Int("parallel", 1, "Max sentences translated concurrently (1 = sequential)")

	viper.BindPFlag("service", translateCmd.Flags().Lookup("service"))
	viper.BindPFlag("credentials", translateCmd.Flags().Lookup("credentials"))
	viper.BindPFlag("project", translateCmd.Flags().Lookup("project"))
	viper.BindPFlag("mymemory-email", translateCmd.Flags().Lookup("mymemory-email"))
	viper.BindPFlag("parallel", translateCmd.Flags().Lookup("parallel"))
}

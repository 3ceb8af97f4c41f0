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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valmik/hinglate/internal/session"
	"github.com/valmik/hinglate/internal/translator"
)

var replVerbose bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive translation session",
	Long: `Start an interactive session. Each line you enter is translated to
English and recorded in the session history. The history lives in memory only
and is discarded when the session ends.

Commands inside the session:
  :history   show all translations of this session
  :quit      end the session (also :q or Ctrl-D)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(replVerbose)

		viper.BindPFlag("service", cmd.Flags().Lookup("service"))
		viper.BindPFlag("credentials", cmd.Flags().Lookup("credentials"))
		viper.BindPFlag("mymemory-email", cmd.Flags().Lookup("mymemory-email"))

		orch, err := buildOrchestrator()
		if err != nil {
			logger.Error("failed to configure service", "err", err)
			return err
		}

		sess := session.New()
		logger.Debug("session started", "id", sess.ID())
		fmt.Println("hinglate session — enter text to translate, :history for history, :quit to exit")

		return runREPL(cmd.Context(), orch, sess, os.Stdin, os.Stdout, logger)
	},
}

// pipeline is what the repl needs from the orchestrator; it is an interface
// so session handling can be tested without a live service.
type pipeline interface {
	Translate(ctx context.Context, text string) (string, error)
}

type replLogger interface {
	Error(msg interface{}, keyvals ...interface{})
}

func runREPL(ctx context.Context, orch pipeline, sess *session.Session, in io.Reader, out io.Writer, logger replLogger) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")

	for scanner.Scan() {
		line := scanner.Text()

		switch line {
		case ":quit", ":q":
			return nil
		case ":history":
			printHistory(out, sess)
			fmt.Fprint(out, "> ")
			continue
		case "":
			fmt.Fprint(out, "> ")
			continue
		}

		result, err := orch.Translate(ctx, line)
		if err != nil {
			var se *translator.ServiceError
			if errors.As(err, &se) {
				logger.Error("translation service failed", "service", se.Service, "err", err)
				fmt.Fprintln(out, failureMessage)
			} else {
				logger.Error("translation failed", "err", err)
				fmt.Fprintln(out, failureMessage)
			}
			// The session continues; the failed input is not recorded.
			fmt.Fprint(out, "> ")
			continue
		}

		fmt.Fprintln(out, result)
		sess.Append(line, result)
		fmt.Fprint(out, "> ")
	}

	return scanner.Err()
}

func printHistory(out io.Writer, sess *session.Session) {
	entries := sess.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "no translations yet")
		return
	}

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORIGINAL\tTRANSLATION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Original, e.Translation)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVarP(&replVerbose, "verbose", "v", false, "Enable debug logging")
	replCmd.Flags().String("service", "google", "Translation service (google, mymemory)")
	replCmd.Flags().StringP("credentials", "c", "", "Path to Google Cloud credentials")
	replCmd.Flags().String("mymemory-email", "", "MyMemory email (for higher limits)")
}

// seoauditctl runs the audit engine and its companion analyzers from
// the command line, printing results as indented JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"seoaudit/internal/audit"
	"seoaudit/internal/intent"
	"seoaudit/internal/log"
	"seoaudit/internal/quality"
)

const version = "1.0.0"

func main() {
	log.InitLogger()
	defer log.Sync()

	root := &cobra.Command{
		Use:           "seoauditctl",
		Short:         "Technical SEO audit toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(auditCmd(), qualityCmd(), intentCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func auditCmd() *cobra.Command {
	var region string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Run a technical audit against a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if region != "" && !audit.SupportedRegion(region) {
				return fmt.Errorf("unsupported region %q", region)
			}

			engine := audit.New(audit.Options{FetchTimeout: timeout})
			result, err := engine.Run(cmd.Context(), args[0], region)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "audit region code (US, CA, UK, AU, DE, JP, SG, IN)")
	cmd.Flags().DurationVar(&timeout, "timeout", audit.DefaultFetchTimeout, "primary page fetch timeout")
	return cmd
}

func qualityCmd() *cobra.Command {
	var meta quality.Metadata
	var file string

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Score content quality from a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			var err error
			if file != "" {
				content, err = os.ReadFile(file)
			} else {
				content, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			if len(content) == 0 {
				return fmt.Errorf("no content provided")
			}

			return printJSON(quality.Check(string(content), meta))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from file instead of stdin")
	cmd.Flags().StringVar(&meta.Title, "title", "", "page title")
	cmd.Flags().StringVar(&meta.MetaDescription, "description", "", "meta description")
	cmd.Flags().StringVarP(&meta.TargetKeyword, "keyword", "k", "", "target keyword")
	return cmd
}

func intentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intent <query>...",
		Short: "Classify the search intent of one or more queries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := intent.New()
			if len(args) == 1 {
				return printJSON(analyzer.Analyze(args[0]))
			}
			return printJSON(map[string]any{
				"results":      analyzer.AnalyzeBatch(args),
				"distribution": analyzer.Distribution(args),
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("seoauditctl", version)
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

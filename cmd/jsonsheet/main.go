// Package main provides the CLI entry point for jsonsheet.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "jsonsheet",
		Short: "Append JSON field/confidence documents to an Excel workbook",
		Long: `jsonsheet flattens every *.json document in the input folder into one
row of "value,confidence" cells, appends the rows to the output workbook,
and moves the processed documents into the archive folder.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v, configFile)
			if err != nil {
				return err
			}
			opts.Logger = log.New(cmd.OutOrStdout(), "", 0)

			res, err := jsonsheet.Run(opts)
			if err != nil {
				return err
			}
			if v.GetBool("fail_on_empty") {
				return res.Err()
			}
			return nil
		},
	}

	defaults := jsonsheet.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	flags.StringP("input", "i", defaults.InputDir, "Folder containing *.json documents")
	flags.StringP("output", "o", defaults.OutputFile, "Output workbook path")
	flags.String("archive-dir", defaults.ArchiveDir, "Archive folder (relative paths resolve against the input folder)")
	flags.String("sheet", defaults.SheetName, "Worksheet name in the output workbook")
	flags.String("missing", defaults.Missing, "Text written for an absent value or confidence")
	flags.Bool("strict-output", false, "Fail instead of replacing an unreadable output workbook")
	flags.Bool("fail-on-empty", false, "Exit with status 1 when the input folder is missing or yields no rows")

	for key, flag := range map[string]string{
		"input_dir":     "input",
		"output_file":   "output",
		"archive_dir":   "archive-dir",
		"sheet_name":    "sheet",
		"missing":       "missing",
		"strict_output": "strict-output",
		"fail_on_empty": "fail-on-empty",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return rootCmd
}

// loadOptions layers flags over JSONSHEET_* environment variables (including
// a .env file) over the optional config file.
func loadOptions(v *viper.Viper, configFile string) (jsonsheet.Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return jsonsheet.Options{}, fmt.Errorf("loading .env: %w", err)
	}

	v.SetEnvPrefix("JSONSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return jsonsheet.Options{}, fmt.Errorf("reading config: %w", err)
		}
	}

	opts := jsonsheet.DefaultOptions()
	opts.InputDir = v.GetString("input_dir")
	opts.OutputFile = v.GetString("output_file")
	opts.ArchiveDir = v.GetString("archive_dir")
	opts.SheetName = v.GetString("sheet_name")
	opts.Missing = v.GetString("missing")
	opts.StrictOutput = v.GetBool("strict_output")

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

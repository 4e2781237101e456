package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Metric selection
	countLines   bool
	countWords   bool
	countChars   bool
	countBytes   bool
	countMaxLine bool
	graphemes    bool

	// Input sources
	filesFrom  string
	recursive  bool
	showHidden bool
	noIgnore   bool

	// Output
	outputFile      string
	copyToClipboard bool

	// Processing
	numThreads int
	bufferSize int

	verbose bool

	// hadFailures flips when any input could not be counted; it drives
	// the exit status without aborting sibling inputs.
	hadFailures bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "tally [flags] [FILE...]",
	Short: "tally prints newline, word, and byte counts for each FILE",
	Long: `tally prints newline, word, and byte counts for each FILE, and a total
line if more than one FILE is specified. A word is a non-zero-length
sequence of characters delimited by white space. Files are counted in
parallel.

With no FILE, or when FILE is -, read standard input.`,
	Version:      version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		metrics := selectedMetrics()

		// Flags win over config; config fills in whatever was not set
		// on the command line.
		if !cmd.Flags().Changed("threads") {
			numThreads = viper.GetInt("threads")
		}
		if !cmd.Flags().Changed("buffer-size") {
			bufferSize = viper.GetInt("buffer_size")
		}
		if !cmd.Flags().Changed("graphemes") {
			graphemes = viper.GetBool("graphemes")
		}
		if !cmd.Flags().Changed("hidden") {
			showHidden = viper.GetBool("hidden")
		}
		if !cmd.Flags().Changed("no-ignore") {
			noIgnore = viper.GetBool("no_ignore")
		}

		operands := args
		if filesFrom != "" {
			if len(args) > 0 {
				return fmt.Errorf("file operands cannot be combined with --files0-from")
			}
			var err error
			operands, err = readFileList(filesFrom)
			if err != nil {
				return err
			}
		}

		requests, err := resolveInputs(operands, metrics)
		if err != nil {
			return err
		}

		cfg := scanConfig{
			bufferSize: bufferSize,
			graphemes:  graphemes,
			stripCR:    viper.GetBool("strip_cr"),
		}

		reports, total := runScans(requests, numThreads, cfg)

		for _, rep := range reports {
			if rep.Err != nil {
				hadFailures = true
				name := rep.Name
				if name == "" {
					name = "standard input"
				}
				fmt.Fprintf(os.Stderr, "tally: %s: %v\n", name, rep.Err)
			}
		}

		return emit(renderReports(reports, total, metrics))
	},
}

// selectedMetrics builds the metric set from the count flags, falling
// back to the reference tool's default of lines, words, and bytes.
func selectedMetrics() Metrics {
	m := Metrics{
		Lines:         countLines,
		Words:         countWords,
		Chars:         countChars,
		Bytes:         countBytes,
		MaxLineLength: countMaxLine,
	}
	if m.None() {
		return defaultMetrics()
	}
	return m
}

func init() {
	cobra.OnInitialize(initConfig)

	// Metric selection
	rootCmd.Flags().BoolVarP(&countLines, "lines", "l", false, "print the newline counts")
	rootCmd.Flags().BoolVarP(&countWords, "words", "w", false, "print the word counts")
	rootCmd.Flags().BoolVarP(&countChars, "chars", "m", false, "print the character counts")
	rootCmd.Flags().BoolVarP(&countBytes, "bytes", "c", false, "print the byte counts")
	rootCmd.Flags().BoolVarP(&countMaxLine, "max-line-length", "L", false, "print the length of the longest line")
	rootCmd.Flags().BoolVar(&graphemes, "graphemes", false, "count characters as grapheme clusters, not codepoints")
	viper.BindPFlag("graphemes", rootCmd.Flags().Lookup("graphemes"))

	// Input sources
	rootCmd.Flags().StringVar(&filesFrom, "files0-from", "", "read input names from NUL-terminated list in FILE (- for stdin)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "expand directory operands to the files beneath them")
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "include hidden files when expanding directories")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "don't respect .gitignore files when expanding directories")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Output
	rootCmd.Flags().StringVar(&outputFile, "output", "", "save the report to FILE instead of stdout")
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "C", false, "copy the report to the clipboard")

	// Processing
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "number of parallel workers (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	rootCmd.Flags().IntVar(&bufferSize, "buffer-size", defaultBufferSize, "read chunk size in bytes")
	viper.BindPFlag("buffer_size", rootCmd.Flags().Lookup("buffer-size"))

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.SetDefault("threads", 0)
	viper.SetDefault("buffer_size", defaultBufferSize)
	viper.SetDefault("graphemes", false)
	viper.SetDefault("strip_cr", false)
	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
}

// initConfig reads in the config file and TALLY_* environment variables
// if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "tally"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "tally: error reading config file: %v\n", err)
	}
}

func main() {
	log.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil || hadFailures {
		os.Exit(1)
	}
}

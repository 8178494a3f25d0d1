package main

import (
	"fmt"
	"os"

	"github.com/On-Jun9/MediaSort/internal/config"
	"github.com/On-Jun9/MediaSort/internal/organizer"
	"github.com/On-Jun9/MediaSort/pkg/types"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	appVersion = "0.1.0"

	cfgFile        string
	source         string
	dest           string
	imageDirName   string
	videoDirName   string
	unknownDirName string
	parseMode      string
	doMove         bool
	recursive      bool
	includeExt     []string
	skipIdentical  bool
	hashVerify     bool
	dryRun         bool
	logFile        string
	logJSON        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mediasort",
	Short: "Sort photos and videos into a date-based folder tree",
	Long: `MediaSort classifies files as images, videos or unknown, resolves each
file's capture time (EXIF when available, modification time otherwise), and
copies or moves it into <dest>/<category>/<year>/<month>/.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sorting pass over the source directory",
	RunE:  runSort,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(appVersion)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	runCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	runCmd.Flags().StringVarP(&source, "source", "s", "", "source directory")
	runCmd.Flags().StringVarP(&dest, "dest", "d", "", "destination root directory")
	runCmd.Flags().StringVar(&imageDirName, "image-dir", "", "category directory name for images")
	runCmd.Flags().StringVar(&videoDirName, "video-dir", "", "category directory name for videos")
	runCmd.Flags().StringVar(&unknownDirName, "unknown-dir", "", "category directory name for unclassified files")
	runCmd.Flags().StringVarP(&parseMode, "parse", "p", "", "classification mode: fast, deep")
	runCmd.Flags().BoolVarP(&doMove, "move", "m", false, "move files instead of copying")
	runCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "scan source subdirectories")
	runCmd.Flags().StringSliceVarP(&includeExt, "include-ext", "e", nil, "file extensions to include")
	runCmd.Flags().BoolVar(&skipIdentical, "skip-identical", false, "skip files already present with identical content")
	runCmd.Flags().BoolVar(&hashVerify, "hash-verify", false, "verify copies with hash")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate without placing files")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "log file path")
	runCmd.Flags().BoolVar(&logJSON, "log-json", false, "output JSON logs")
}

func runSort(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if source != "" {
		cfg.Source = source
	}
	if dest != "" {
		cfg.Dest = dest
	}
	if imageDirName != "" {
		cfg.ImageDirName = imageDirName
	}
	if videoDirName != "" {
		cfg.VideoDirName = videoDirName
	}
	if unknownDirName != "" {
		cfg.UnknownDirName = unknownDirName
	}
	if parseMode != "" {
		cfg.ParseMode = types.ParseMode(parseMode)
	}
	if doMove {
		cfg.TransferMode = types.TransferMove
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Recursive = recursive
	}
	if len(includeExt) > 0 {
		cfg.IncludeExtensions = includeExt
	}
	if skipIdentical {
		cfg.SkipIdentical = true
	}
	if hashVerify {
		cfg.HashVerify = true
	}
	if dryRun {
		cfg.DryRun = true
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logJSON {
		cfg.LogJSON = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	o, err := organizer.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer o.Close()

	var bar *progressbar.ProgressBar
	o.SetProgressCallback(func(update organizer.ProgressUpdate) {
		switch update.Type {
		case "progress":
			if bar == nil {
				bar = progressbar.NewOptions(update.Total,
					progressbar.OptionSetDescription("sorting"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			bar.Set(update.Current)
		case "complete":
			if bar != nil {
				bar.Finish()
			}
		}
	})

	_, err = o.Run()
	return err
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mjunit/mjunit/internal/logger"
	"github.com/mjunit/mjunit/pkg/archive"
	"github.com/mjunit/mjunit/pkg/report"
	"github.com/mjunit/mjunit/pkg/reporter"
	"github.com/mjunit/mjunit/pkg/upload"
)

type generateOpts struct {
	OutputPath             string `mapstructure:"output_path"`
	Properties             string `mapstructure:"properties"`
	Echo                   bool   `mapstructure:"echo"`
	SwitchClassnameAndName bool   `mapstructure:"switch_classname_and_name"`
	UseFullSuiteTitle      bool   `mapstructure:"use_full_suite_title"`
	SuiteTitleSeparator    string `mapstructure:"suite_title_separator"`
	RootSuiteTitle         string `mapstructure:"root_suite_title"`
	TestsuitesTitle        string `mapstructure:"testsuites_title"`
	HashStyle              string `mapstructure:"hash_style"`
	Archive                string `mapstructure:"archive"`
	UploadBucket           string `mapstructure:"upload_bucket"`
	UploadPrefix           string `mapstructure:"upload_prefix"`
}

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate REPORT_FILE...",
	Short: "Generate JUnit XML reports from test-run report files",
	Long: `mjunit generate converts one or more test-run report files (JSON or YAML,
as dumped by the test runner) into JUnit XML reports.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bindPFlagsSnakeCase(cmd.Flags())

		opts := generateOpts{}
		hydrateOptsFromViper(&opts)

		if err := doGenerate(cmd.Context(), opts, args); err != nil {
			logger.Fatalf("Generate failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output-path", "o", reporter.DefaultOutputPath,
		"Destination file of the JUnit XML report. The [hash] token is replaced by a digest of the content.")
	generateCmd.Flags().String("properties", "",
		"Custom testsuite properties, as a \"key1:value1,key2:value2\" string.")
	generateCmd.Flags().Bool("echo", false,
		"Additionally print the rendered XML to standard output.")
	generateCmd.Flags().Bool("switch-classname-and-name", false,
		"Swap the name and classname testcase attributes.")
	generateCmd.Flags().Bool("use-full-suite-title", false,
		"Name testsuites with the full ancestor path instead of the suite's own title.")
	generateCmd.Flags().String("suite-title-separator", reporter.DefaultSuiteTitleSeparator,
		"Separator used when building full ancestor-path suite titles.")
	generateCmd.Flags().String("root-suite-title", reporter.DefaultRootSuiteTitle,
		"Display name substituted for the anonymous top-level suite.")
	generateCmd.Flags().String("testsuites-title", reporter.DefaultTestsuitesTitle,
		"Name attribute of the <testsuites> root node.")
	generateCmd.Flags().String("hash-style", reporter.HashStyleHex,
		"Rendering of the [hash] token (hex|human).")
	generateCmd.Flags().String("archive", "",
		"Bundle all generated reports into a tar.gz archive at the given path.")
	generateCmd.Flags().String("upload-bucket", "",
		"S3 bucket to upload the generated reports to.")
	generateCmd.Flags().String("upload-prefix", "junit",
		"Key prefix of the reports uploaded to S3.")
}

func doGenerate(ctx context.Context, opts generateOpts, inputs []string) error {
	reporterOpts := reporter.Options{
		Properties:             reporter.ParseProperties(opts.Properties),
		Echo:                   opts.Echo,
		SwitchClassnameAndName: opts.SwitchClassnameAndName,
		UseFullSuiteTitle:      opts.UseFullSuiteTitle,
		SuiteTitleSeparator:    opts.SuiteTitleSeparator,
		RootSuiteTitle:         opts.RootSuiteTitle,
		TestsuitesTitle:        opts.TestsuitesTitle,
		HashStyle:              opts.HashStyle,
	}

	var (
		mutex sync.Mutex
		paths []string
	)

	errG := new(errgroup.Group)
	for _, input := range inputs {
		input := input
		errG.Go(func() error {
			rprt, err := report.Load(input)
			if err != nil {
				return err
			}

			runOpts := reporterOpts
			runOpts.OutputPath = outputPathFor(opts.OutputPath, input, len(inputs) > 1)

			result, err := reporter.New(runOpts).Generate(rprt)
			if err != nil {
				return fmt.Errorf("can't generate JUnit report for %s: %w", input, err)
			}

			if result.Path != "" {
				mutex.Lock()
				paths = append(paths, result.Path)
				mutex.Unlock()
			}

			return nil
		})
	}
	if err := errG.Wait(); err != nil {
		return err
	}

	if opts.Archive != "" && len(paths) > 0 {
		logger.Infof("Archiving %d report(s) to %s", len(paths), opts.Archive)
		if err := archive.Create(paths, opts.Archive); err != nil {
			return err
		}
	}

	if opts.UploadBucket != "" {
		if err := uploadReports(ctx, opts, paths); err != nil {
			return err
		}
	}

	return nil
}

// outputPathFor resolves the destination of one input file. With several
// inputs sharing a fixed template, each destination is prefixed with the
// input file stem so reports don't overwrite each other; templates carrying
// the [hash] token are already unique per content.
func outputPathFor(template, input string, multi bool) string {
	if !multi || strings.Contains(template, reporter.HashToken) {
		return template
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	return filepath.Join(filepath.Dir(template), stem+"-"+filepath.Base(template))
}

func uploadReports(ctx context.Context, opts generateOpts, paths []string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("can't load AWS configuration: %w", err)
	}

	uploader := upload.NewS3Uploader(cfg, opts.UploadBucket)
	for _, path := range paths {
		if err := uploadReport(ctx, uploader, opts.UploadPrefix, path); err != nil {
			return err
		}
	}

	return nil
}

func uploadReport(ctx context.Context, uploader upload.Uploader, prefix, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read report %s: %w", path, err)
	}

	targetPath := filepath.Base(path)
	if prefix != "" {
		targetPath = prefix + "/" + targetPath
	}

	if err := uploader.Upload(ctx, targetPath, content); err != nil {
		return fmt.Errorf("can't upload report %s: %w", path, err)
	}

	logger.Infof("Report uploaded to %s", uploader.URL(targetPath))

	return nil
}

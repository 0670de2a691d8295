package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/polyfill"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/iwat/webfile/internal/application"
	"github.com/iwat/webfile/internal/config"
	"github.com/iwat/webfile/internal/infrastructure/logging"
	"github.com/iwat/webfile/internal/infrastructure/web"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type AppBuilder struct {
	fs        billy.Filesystem
	client    application.HTTPClient
	config    *config.Config
	logOutput io.Writer
	app       *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{config: config.Default()}
}

func (b *AppBuilder) WithFilesystem(fs billy.Filesystem) *AppBuilder {
	b.fs = fs
	return b
}

func (b *AppBuilder) WithHTTPClient(client application.HTTPClient) *AppBuilder {
	b.client = client
	return b
}

func (b *AppBuilder) WithLogOutput(w io.Writer) *AppBuilder {
	b.logOutput = w
	return b
}

func (b *AppBuilder) WithVerbose(verbose bool) *AppBuilder {
	b.config.Verbose = verbose
	return b
}

func (b *AppBuilder) Build() error {
	if b.fs == nil {
		b.fs = polyfill.New(osfs.Default)
	}
	if b.client == nil {
		b.client = web.NewClient(b.config.Timeout)
	}
	if b.logOutput == nil {
		b.logOutput = os.Stderr
	}
	logger := logging.New(b.logOutput, b.config.Verbose)
	slog.SetDefault(logger)

	b.app = application.NewApp(b.fs, b.client, b.config, logger)
	return nil
}

func (b *AppBuilder) App() *application.App {
	return b.app
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webfile",
		Short: "webfile reads and writes local files and inspects web pages",
		Long: "webfile reads and writes local files and inspects web pages.\n" +
			"Without a subcommand it starts the interactive menu.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appBuilder.WithVerbose(cmd.Flag("verbose").Value.String() == "true")
			return appBuilder.Build()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			menu := NewMenu(appBuilder.App(), cmd.InOrStdin(), cmd.OutOrStdout())
			return menu.Run(cmd.Context())
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	rootCmd.AddCommand(fileCmd(appBuilder))
	rootCmd.AddCommand(urlCmd(appBuilder))

	return rootCmd
}

package cmd

import (
	"fmt"

	"github.com/iwat/webfile/internal/application"
	"github.com/iwat/webfile/internal/domain"
	"github.com/iwat/webfile/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

func urlCmd(appBuilder *AppBuilder) *cobra.Command {
	urlCmd := &cobra.Command{
		Use:   "url",
		Short: "Inspect a web page",
		Long:  "Inspect a web page",
	}

	urlCmd.AddCommand(urlReadCmd(appBuilder))
	urlCmd.AddCommand(urlCountCmd(appBuilder))
	urlCmd.AddCommand(urlSaveCmd(appBuilder))

	return urlCmd
}

func urlReadCmd(appBuilder *AppBuilder) *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read URL",
		Short: "Print the content of a page",
		Long:  "Print the content of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			accessor, err := openURL(appBuilder.App(), args[0])
			if err != nil {
				return err
			}
			content, err := accessor.FetchRemote(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	return readCmd
}

func urlCountCmd(appBuilder *AppBuilder) *cobra.Command {
	var list bool
	countCmd := &cobra.Command{
		Use:   "count URL",
		Short: "Count the distinct links on a page",
		Long:  "Count the distinct links on a page. Unlike the menu, a failed fetch is an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			accessor, err := openURL(appBuilder.App(), args[0])
			if err != nil {
				return err
			}
			links, err := accessor.Links(cmd.Context())
			if err != nil {
				return err
			}
			if list {
				for _, link := range links {
					fmt.Fprintln(cmd.OutOrStdout(), link)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Found %d URLs on page '%s'", len(links), args[0])))
			return nil
		},
	}
	countCmd.Flags().BoolVar(&list, "list", false, "Print every link before the count")

	return countCmd
}

func urlSaveCmd(appBuilder *AppBuilder) *cobra.Command {
	saveCmd := &cobra.Command{
		Use:   "save URL [DEST]",
		Short: "Save the content of a page to a file",
		Long:  "Save the content of a page to a file, by default <host>_content.html",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			app := appBuilder.App()
			accessor, err := openURL(app, args[0])
			if err != nil {
				return err
			}
			dest := DefaultSavePath(args[0], app.Config().SaveSuffix)
			if len(args) == 2 {
				dest = args[1]
			}
			if _, err := accessor.SaveRemoteToFile(cmd.Context(), dest); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Content successfully saved to file '%s'", dest)))
			return nil
		},
	}

	return saveCmd
}

func openURL(app *application.App, location string) (*application.Accessor, error) {
	return app.Open(location, domain.ModeURL)
}

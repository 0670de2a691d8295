package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwat/webfile/internal/domain"
	"github.com/iwat/webfile/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

func fileCmd(appBuilder *AppBuilder) *cobra.Command {
	mode := domain.ModeRead
	fileCmd := &cobra.Command{
		Use:   "file PATH [TEXT...]",
		Short: "Read, write or append to a local file",
		Long: "Read, write or append to a local file.\n" +
			"In write and append mode the content is TEXT, or standard input when TEXT is absent.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if mode.Remote() {
				return errors.New("mode 'url' is served by the url command")
			}
			path := args[0]
			accessor, err := appBuilder.App().Open(path, mode)
			if err != nil {
				return err
			}

			if mode.Readable() {
				if len(args) > 1 {
					return errors.New("read mode takes no TEXT")
				}
				content, err := accessor.Read()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			var content string
			if len(args) > 1 {
				content = strings.Join(args[1:], " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read standard input: %v", err)
				}
				content = string(data)
			}
			if _, err := accessor.Write(content); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Content successfully written to file '%s'", path)))
			return nil
		},
	}
	fileCmd.Flags().VarP(&mode, "mode", "m", "File mode [read, write, append]")

	return fileCmd
}

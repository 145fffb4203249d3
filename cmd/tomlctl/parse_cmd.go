package tomlctl

import (
	"fmt"

	"github.com/dzjyyds666/tomlconf/internal/fsutil"
	"github.com/dzjyyds666/tomlconf/toml"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a TOML file and print it back out",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	if ok, err := fsutil.Exists(path); err != nil {
		return fmt.Errorf("tomlctl: %s: %w", path, err)
	} else if !ok {
		return fmt.Errorf("tomlctl: %s: no such file", path)
	}

	root, err := toml.ParseFile(path)
	if err != nil {
		return err
	}

	out, err := toml.Sprint(root)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

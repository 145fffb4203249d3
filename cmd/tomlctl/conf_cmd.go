package tomlctl

import (
	"fmt"

	"github.com/dzjyyds666/tomlconf/internal/fsutil"
	"github.com/dzjyyds666/tomlconf/toml"
	"github.com/spf13/cobra"
)

type confParams struct {
	AllowAdditions bool
}

var confFlags = &confParams{}

var tomlConfCmd = &cobra.Command{
	Use:   "toml-conf <base> <override>",
	Short: "merge an override TOML document onto a base document",
	Args:  cobra.ExactArgs(2),
	RunE:  runTomlConf,
}

func init() {
	tomlConfCmd.Flags().BoolVar(&confFlags.AllowAdditions, "allow-additions", true,
		"allow keys present in override but absent from base")
}

func runTomlConf(cmd *cobra.Command, args []string) error {
	base, override := args[0], args[1]
	for _, path := range []string{base, override} {
		if ok, err := fsutil.Exists(path); err != nil {
			return fmt.Errorf("tomlctl: %s: %w", path, err)
		} else if !ok {
			return fmt.Errorf("tomlctl: %s: no such file", path)
		}
	}

	merged, err := toml.ParseBaseAndOverride(base, override, confFlags.AllowAdditions)
	if err != nil {
		return err
	}
	out, err := toml.Sprint(merged)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/casual-erp/casual-web/ccli"
)

func newInvokeCommand(app *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "invoke <program> <command> [-- <id> | <flag> <value>...]",
		Short: "Run one casual-cli call through the invoker",
		Long: `Run one casual-cli call exactly as the web frontend would, including
argument marshaling, mode selection and output decoding.

Arguments after -- are passed to the cli: a bare number is an id, anything
starting with - is a flag followed by its value.`,
		Example: `  casual-web invoke project ls
  casual-web invoke account get --mode json -- 5
  casual-web invoke project add --mode value -- -t New%20site -c 3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ccli.ParseMode(mode)
			if err != nil {
				return err
			}
			cliArgs, err := parseArgs(args[2:])
			if err != nil {
				return err
			}
			inv, _, err := app.newInvoker()
			if err != nil {
				return err
			}

			res, err := inv.Invoke(cmd.Context(), ccli.Program(args[0]), ccli.Command(args[1]), cliArgs, m)
			if err != nil {
				return err
			}
			if res == nil {
				return &ExitError{Code: 1, Err: fmt.Errorf("%s %s failed", args[0], args[1])}
			}
			if res.Unavailable() {
				return &ExitError{Code: 2, Err: fmt.Errorf("%s", res.Text)}
			}

			out := cmd.OutOrStdout()
			if m == ccli.ModeJSON {
				_, err = out.Write(pretty.Pretty([]byte(res.Text)))
				return err
			}
			_, err = fmt.Fprintln(out, strings.TrimRight(res.Text, "\n"))
			return err
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(ccli.ModeHTML), "output mode: normal, html, value or json")
	return cmd
}

// parseArgs turns raw command-line words into cli arguments.
func parseArgs(words []string) (ccli.Args, error) {
	var args ccli.Args
	for i := 0; i < len(words); i++ {
		w := words[i]
		switch {
		case strings.HasPrefix(w, "-"):
			if i+1 >= len(words) {
				return nil, fmt.Errorf("flag %s has no value", w)
			}
			args = append(args, ccli.F(w, words[i+1]))
			i++
		default:
			id, err := strconv.ParseInt(w, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("unexpected argument %q: ids must be numeric", w)
			}
			args = append(args, ccli.ID(id))
		}
	}
	return args, nil
}

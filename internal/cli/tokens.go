package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parchlabs/mdast/internal/logging"
	"github.com/parchlabs/mdast/internal/ui/pretty"
	"github.com/parchlabs/mdast/pkg/mdast"
	"github.com/parchlabs/mdast/pkg/parser"
)

func newTokensCommand(color *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream for a Markdown document",
		Long: `Scan a Markdown document and print its flat token stream, one token
per line with byte offsets. Reads from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, name, err := readInput(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			source := string(data)
			lx := parser.NewLexer(source)
			var tokens []mdast.Token
			for {
				tok := lx.Next()
				tokens = append(tokens, tok)
				if tok.Kind == mdast.TokEOF {
					break
				}
			}

			logging.Default().Debug("scanned document",
				logging.FieldInput, name,
				logging.FieldTokens, len(tokens),
			)

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(*color, out))
			renderer := pretty.NewTokenRenderer(styles, pretty.TerminalWidth(out))
			fmt.Fprint(out, renderer.Render(source, tokens))
			return nil
		},
	}

	return cmd
}

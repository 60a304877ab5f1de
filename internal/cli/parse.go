package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parchlabs/mdast/internal/logging"
	"github.com/parchlabs/mdast/internal/ui/pretty"
	"github.com/parchlabs/mdast/pkg/langdetect"
	"github.com/parchlabs/mdast/pkg/mdast"
	"github.com/parchlabs/mdast/pkg/parser"
)

type parseFlags struct {
	format     string
	detectLang bool
}

const formatJSON = "json"

func newParseCommand(color *string) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Markdown document and print its syntax tree",
		Long: `Parse a Markdown document into an mdast tree and print it, either as
a styled outline or as JSON. Reads from stdin when no file is given.`,
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

			logger := logging.Default()
			logger.Debug("parsing document",
				logging.FieldInput, name,
				logging.FieldBytes, len(data),
			)

			doc, err := parser.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", name, err)
			}

			if flags.detectLang {
				annotated := langdetect.Annotate(doc)
				logger.Debug("annotated code blocks", logging.FieldAnnotated, annotated)
			}

			logger.Debug("parsed document",
				logging.FieldNodes, len(mdast.FindAll(doc, func(mdast.Node) bool { return true })),
				logging.FieldBlocks, doc.Len(),
			)

			out := cmd.OutOrStdout()
			if flags.format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(mdast.Snapshot(doc)); err != nil {
					return fmt.Errorf("encode tree: %w", err)
				}
				return nil
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(*color, out))
			renderer := pretty.NewTreeRenderer(styles, pretty.TerminalWidth(out))
			fmt.Fprint(out, renderer.Render(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "tree",
		"output format: tree, json")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false,
		"detect the language of code blocks without an info string")

	return cmd
}

package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/parchlabs/mdast/pkg/mdast"
	"github.com/parchlabs/mdast/pkg/parser"
)

type fixtureCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Tree   any    `yaml:"tree"`
}

// TestParse_Fixtures compares parsed trees against the expected snapshots
// in testdata. Both sides are round-tripped through YAML so the
// comparison is shape-based rather than type-based.
func TestParse_Fixtures(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no fixture files found")

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			t.Parallel()

			data, err := os.ReadFile(file)
			require.NoError(t, err)

			var cases []fixtureCase
			require.NoError(t, yaml.Unmarshal(data, &cases))
			require.NotEmpty(t, cases)

			for _, tc := range cases {
				t.Run(tc.Name, func(t *testing.T) {
					doc, err := parser.Parse(tc.Source)
					require.NoError(t, err)

					want, err := yaml.Marshal(tc.Tree)
					require.NoError(t, err)
					got, err := yaml.Marshal(mdast.Snapshot(doc))
					require.NoError(t, err)
					assert.YAMLEq(t, string(want), string(got))
				})
			}
		})
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/htmldom"
	"github.com/vango-dev/hydrate/pkg/hydration"
	"github.com/vango-dev/hydrate/pkg/report"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

func checkCmd() *cobra.Command {
	var (
		markupPath string
		treePath   string
		asJSON     bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check server-rendered HTML against an expected tree",
		Long: `Check that an expected render tree hydrates cleanly against
server-rendered HTML.

The markup file holds the server output; the tree file holds the
expected nodes as JSON. Every mismatch prints as a diagnostic, and
the command fails when the structures diverge.

Examples:
  hydrate check --markup page.html --tree tree.json
  hydrate check -m page.html -t tree.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(markupPath, treePath, asJSON, quiet)
		},
	}

	cmd.Flags().StringVarP(&markupPath, "markup", "m", "", "Server-rendered HTML file (required)")
	cmd.Flags().StringVarP(&treePath, "tree", "t", "", "Expected tree JSON file (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only set the exit code, print nothing")
	cmd.MarkFlagRequired("markup")
	cmd.MarkFlagRequired("tree")

	return cmd
}

func runCheck(markupPath, treePath string, asJSON, quiet bool) error {
	container, err := loadMarkup(markupPath)
	if err != nil {
		return checkFailed(err, asJSON)
	}

	expected, err := loadTree(treePath)
	if err != nil {
		return checkFailed(err, asJSON)
	}

	collector := report.NewCollector(markupPath)
	h := hydration.New(
		hydration.WithDiagnostics(true),
		hydration.WithSink(collector),
	)

	res := h.Hydrate(context.Background(), container, expected, htmldom.Differ{})
	rep := collector.Finish(res.OK, res.Claimed)

	switch {
	case quiet:
	case asJSON:
		if err := printCheckJSON(rep, res); err != nil {
			return err
		}
	default:
		printCheckText(rep, res)
	}

	if !res.OK || len(rep.Mismatches) > 0 {
		return errors.New("H142")
	}
	return nil
}

// checkFailed hands a load error back for the usual exit path. JSON
// runs additionally print it on stdout so machine consumers see the
// failure where they expect the result.
func checkFailed(err error, asJSON bool) error {
	if asJSON {
		fmt.Println(errors.FromError(err, "H140").FormatJSON())
	}
	return err
}

// loadMarkup parses a markup file. Full documents hydrate against
// their body; anything else is treated as a fragment.
func loadMarkup(path string) (dom.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("H140").Wrap(err).WithDetail("Cannot read " + path)
	}

	markup := string(data)
	if strings.Contains(strings.ToLower(markup), "<html") {
		doc, err := htmldom.Parse(strings.NewReader(markup))
		if err != nil {
			return nil, errors.New("H001").Wrap(err)
		}
		if body := htmldom.Body(doc); body != nil {
			return body, nil
		}
		return doc, nil
	}

	container, err := htmldom.ParseFragment(markup)
	if err != nil {
		return nil, errors.New("H001").Wrap(err)
	}
	return container, nil
}

// loadTree decodes an expected tree JSON file.
func loadTree(path string) ([]*vdom.VNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("H141").Wrap(err).WithDetail("Cannot read " + path)
	}
	defer f.Close()

	nodes, err := vdom.DecodeJSON(f)
	if err != nil {
		return nil, errors.New("H002").Wrap(err).
			WithSuggestion(`Each node needs a "kind" of element, text, fragment, or raw`)
	}
	return nodes, nil
}

func printCheckText(rep *report.Report, res *hydration.Result) {
	for _, msg := range rep.Mismatches {
		warn("%s", msg)
	}

	if res.OK && len(rep.Mismatches) == 0 {
		success("Hydrated cleanly: %d nodes claimed", res.Claimed)
		return
	}
	if res.OK {
		warn("Hydrated with %d warning(s): %d nodes claimed", len(rep.Mismatches), res.Claimed)
		return
	}
	errorMsg("Hydration failed after claiming %d node(s)", res.Claimed)
}

func printCheckJSON(rep *report.Report, res *hydration.Result) error {
	out := checkResponse{
		OK:         res.OK,
		Claimed:    res.Claimed,
		Patches:    len(res.Patches),
		Mismatches: rep.Mismatches,
	}
	data, err := marshalIndent(out)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

package app

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
)

// writeValues prints one row per node, sorted by ID. Nodes whose first output
// is boolean print true or false; unset values print "-".
func writeValues(w io.Writer, reg *registry.Registry, g graph.Graph) error {
	nodes := make([]graph.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tTYPE\tVALUE")
	for _, n := range nodes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Type, formatValue(reg, n))
	}
	return tw.Flush()
}

func formatValue(reg *registry.Registry, n graph.Node) string {
	if n.Data.Value == nil {
		return "-"
	}
	if cfg, ok := reg.Lookup(n.Type); ok && len(cfg.Outputs) > 0 && cfg.Outputs[0].Kind == registry.KindBoolean {
		return fmt.Sprint(*n.Data.Value != 0)
	}
	return registry.FormatNumber(*n.Data.Value)
}

// writeCode prints the generated program, or a placeholder when there is none.
func writeCode(w io.Writer, code string) error {
	if code == "" {
		_, err := fmt.Fprintln(w, "// no output node, nothing generated")
		return err
	}
	_, err := fmt.Fprintln(w, code)
	return err
}

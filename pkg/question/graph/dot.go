package graph

import (
	"context"
	"fmt"
	"strconv"

	"github.com/funcdemo/intake/pkg/question"
	"github.com/funcdemo/intake/pkg/role"
	"github.com/tmc/dot"
)

// Dot generates a DOT graph of the questions asked of the given role and
// returns it as a string. The graph is a directed chain starting at the role,
// passing through each prompt in the order it is asked, and ending at "Done".
// Edges are labeled with the step number.
func Dot(ctx context.Context, r role.Role) (string, error) {
	g := dot.NewGraph("intake")
	g.SetType(dot.DIGRAPH)

	doneNode := dot.NewNode("Done")
	g.AddNode(doneNode)

	parent := dot.NewNode(quoted(r.String()))
	g.AddNode(parent)

	ids := question.IDsFor(r)
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		node := dot.NewNode(quoted(id.Text()))
		g.AddNode(node)

		edge := dot.NewEdge(parent, node)
		_ = edge.Set("label", strconv.Itoa(i+1)) //nolint:errcheck
		g.AddEdge(edge)

		parent = node
	}

	// Only the answer to the last question survives the round.
	edge := dot.NewEdge(parent, doneNode)
	_ = edge.Set("label", "answer") //nolint:errcheck
	g.AddEdge(edge)

	return g.String(), nil
}

func quoted(s string) string {
	return fmt.Sprintf(`"%s"`, s)
}

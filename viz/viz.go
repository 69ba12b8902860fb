// Package viz renders a core.Graph as a self-contained vis.js network
// page. It consumes the graph's read surface only (Vertices, OutEdges)
// and never mutates it.
package viz

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/katalvlaran/routeview/core"
)

type nodeShape string

var (
	shapeBox nodeShape = "box"

	colorBlue = color{Background: "#a8d1f0", Highlight: highlight{Background: "#d6ebfa"}}
)

type highlight struct {
	Background string `json:"background"`
}

type color struct {
	Background string    `json:"background"`
	Highlight  highlight `json:"highlight"`
}

// Node is a vis.js DataSet node.
type Node struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Shape nodeShape `json:"shape"`
	Color color     `json:"color"`
}

// Edge is a vis.js DataSet edge. Label carries the weight.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Arrows string `json:"arrows"`
	Label  string `json:"label,omitempty"`
}

// CreateNetwork converts the graph into vis.js node and edge sets.
// Output order is deterministic: vertices sorted, outgoing edges in
// insertion order. Parallel edges each get their own arrow.
func CreateNetwork(g *core.Graph) ([]Node, []Edge) {
	var nodes []Node
	var edges []Edge

	for _, id := range g.Vertices() {
		nodes = append(nodes, Node{
			ID:    id,
			Label: id,
			Shape: shapeBox,
			Color: colorBlue,
		})

		for _, e := range g.OutEdges(id) {
			edges = append(edges, Edge{
				From:   e.From,
				To:     e.To,
				Arrows: "to",
				Label:  strconv.FormatInt(e.Weight, 10),
			})
		}
	}

	return nodes, edges
}

type pageData struct {
	Nodes template.JS
	Edges template.JS
}

var page = template.Must(template.New("network").Parse(`<!doctype html>
<html>
<head>
<title>Route graph</title>

<script type="text/javascript" src="https://cdnjs.cloudflare.com/ajax/libs/vis/4.21.0/vis.min.js"></script>
<link href="https://cdnjs.cloudflare.com/ajax/libs/vis/4.21.0/vis-network.min.css" rel="stylesheet" type="text/css" />

<style type="text/css">
#network {
width: 1200px;
height: 800px;
}
</style>
</head>
<body>

<div id="network"></div>

<script type="text/javascript">
new vis.Network(
document.getElementById('network'),
{nodes: new vis.DataSet({{.Nodes}}), edges: new vis.DataSet({{.Edges}})},
{});
</script>

</body>
</html>`))

// WriteHTML renders the node and edge sets into a standalone HTML page.
func WriteHTML(w io.Writer, nodes []Node, edges []Edge) error {
	jsonNodes, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("viz: marshal nodes: %w", err)
	}
	jsonEdges, err := json.Marshal(edges)
	if err != nil {
		return fmt.Errorf("viz: marshal edges: %w", err)
	}

	if err = page.Execute(w, pageData{template.JS(jsonNodes), template.JS(jsonEdges)}); err != nil {
		return fmt.Errorf("viz: render page: %w", err)
	}

	return nil
}

// Command routeview is the interactive prompt loop around the route graph:
// enter vertices and edges, inspect the adjacency matrix, query shortest
// paths, mutate the graph, and optionally export a vis.js page.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeview/core"
	"github.com/katalvlaran/routeview/dijkstra"
	"github.com/katalvlaran/routeview/matrix"
	"github.com/katalvlaran/routeview/viz"
)

// colWidth is the fixed column width of the printed adjacency matrix.
const colWidth = 6

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives the whole session; split from main for testability.
func run(in io.Reader, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("routeview", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "print search step events while querying")
	htmlOut := fs.String("out", "routeview.html", "path of the vis.js page written by the visualize action")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	g := core.NewGraph()

	if err := readInitialGraph(sc, out, g); err != nil {
		return err
	}

	var queryOpts []dijkstra.Option
	if *trace {
		queryOpts = append(queryOpts, dijkstra.WithObserver(dijkstra.NewTraceObserver(out)))
	}

	for {
		if err := printMatrix(out, g); err != nil {
			return err
		}

		runQuery(sc, out, g, queryOpts)

		quit, err := actionLoop(sc, out, g, *htmlOut)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// readInitialGraph prompts for the vertex count and one definition line per
// vertex: "Vertex Distance PreviousVertex". A line without a previous
// vertex inserts a bare vertex instead of the legacy zero-weight self-loop.
func readInitialGraph(sc *bufio.Scanner, out io.Writer, g *core.Graph) error {
	fmt.Fprint(out, "Enter the number of vertices: ")
	line, ok := readLine(sc)
	if !ok {
		return errors.New("routeview: input closed before the vertex count")
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("routeview: invalid vertex count %q: %w", line, err)
	}

	fmt.Fprintln(out, "Enter the vertices in the format: Vertex Distance PreviousVertex (omit PreviousVertex for the starting vertex):")
	for i := 0; i < n; i++ {
		line, ok = readLine(sc)
		if !ok {
			return errors.New("routeview: input closed during vertex entry")
		}
		fields := strings.Fields(line)
		switch {
		case len(fields) >= 3:
			weight, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				fmt.Fprintf(out, "Invalid distance %q, line skipped.\n", fields[1])
				continue
			}
			g.AddEdge(fields[2], fields[0], weight)
		case len(fields) >= 1:
			g.AddVertex(fields[0])
		default:
			fmt.Fprintln(out, "Empty line skipped.")
		}
	}

	return nil
}

// runQuery asks for start and end vertices and prints the route or the
// reason there is none. Query failures never abort the session.
func runQuery(sc *bufio.Scanner, out io.Writer, g *core.Graph, opts []dijkstra.Option) {
	fmt.Fprint(out, "Enter the start and end vertices separated by a space: ")
	line, ok := readLine(sc)
	if !ok {
		return
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		fmt.Fprintln(out, "Expected exactly two vertex names.")
		return
	}
	start, end := fields[0], fields[1]

	res, err := dijkstra.ShortestPath(g, start, end, opts...)
	if err != nil {
		fmt.Fprintf(out, "Query failed: %v\n", err)
		return
	}
	if !res.Reachable() {
		fmt.Fprintf(out, "No path exists between %s and %s.\n", start, end)
		return
	}
	fmt.Fprintf(out, "Shortest path from %s to %s: %s\n", start, end, strings.Join(res.Path, " -> "))
	fmt.Fprintf(out, "Total distance: %d\n", res.Cost)
}

// actionLoop handles the add/del/next/quit/visualize prompt. It returns
// quit=true when the session should end.
func actionLoop(sc *bufio.Scanner, out io.Writer, g *core.Graph, htmlPath string) (bool, error) {
	for {
		fmt.Fprint(out, "\nChoose an action: [add, del, next, quit, visualize]: ")
		line, ok := readLine(sc)
		if !ok {
			return true, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "add":
			fmt.Fprint(out, "Enter the name of the vertex to add: ")
			if name, ok := readLine(sc); ok && strings.TrimSpace(name) != "" {
				v := strings.TrimSpace(name)
				g.AddVertex(v)
				fmt.Fprintf(out, "Vertex %q added.\n", v)
			}
		case "del":
			fmt.Fprint(out, "Enter the name of the vertex to remove: ")
			if name, ok := readLine(sc); ok && strings.TrimSpace(name) != "" {
				v := strings.TrimSpace(name)
				g.RemoveVertex(v)
				fmt.Fprintf(out, "Vertex %q removed.\n", v)
			}
		case "next":
			return false, nil
		case "quit":
			fmt.Fprintln(out, "Exiting.")
			return true, nil
		case "visualize":
			if err := writeVisualization(g, htmlPath); err != nil {
				fmt.Fprintf(out, "Visualization failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Visualization written to %s.\n", htmlPath)
			slog.Info("wrote visualization", "path", htmlPath, "vertices", g.VertexCount(), "edges", g.EdgeCount())
		default:
			fmt.Fprintln(out, "Invalid action. Please try again.")
		}
	}
}

// writeVisualization exports the current graph as a vis.js page.
func writeVisualization(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	nodes, edges := viz.CreateNetwork(g)

	return viz.WriteHTML(f, nodes, edges)
}

// printMatrix renders the adjacency snapshot with fixed-width columns and
// INF for the sentinel, matching the legacy console layout.
func printMatrix(out io.Writer, g *core.Graph) error {
	m, err := matrix.Build(g)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nAdjacency Matrix:")
	fmt.Fprint(out, strings.Repeat(" ", colWidth))
	for _, id := range m.Order {
		fmt.Fprintf(out, "%*s", colWidth, id)
	}
	fmt.Fprintln(out)

	for i, id := range m.Order {
		fmt.Fprintf(out, "%*s", colWidth, id)
		for j := range m.Order {
			if m.Dist[i][j] == matrix.Inf {
				fmt.Fprintf(out, "%*s", colWidth, "INF")
			} else {
				fmt.Fprintf(out, "%*d", colWidth, m.Dist[i][j])
			}
		}
		fmt.Fprintln(out)
	}

	return nil
}

// readLine fetches the next input line; ok is false once input is closed.
func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}

	return sc.Text(), true
}

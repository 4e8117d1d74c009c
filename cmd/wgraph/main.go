// Command wgraph loads an undirected weighted edge list and answers graph queries.
//
//	wgraph path A C --weighted -i edges.csv
//	wgraph components --threshold 2.5 -i edges.csv --format json
//	wgraph threshold A C -i edges.csv
package main

import "github.com/katalvlaran/wgraph/internal/cli"

func main() {
	cli.Execute()
}

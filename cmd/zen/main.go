// Command zen is an interactive I Ching divination.
package main

import "github.com/jwulff/zen/internal/cli"

func main() {
	cli.Execute()
}

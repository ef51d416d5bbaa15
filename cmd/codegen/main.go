package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cellflow/cellflow/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey  = "count"
	outputKey = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed tuple helpers for cellgraph",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest derived arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Path of the generated file",
				Value: "cellgraph/tuples.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for cellgraph tuples started")
	defer func() {
		log.Printf("Codegen for cellgraph tuples finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityKey))
	out := cmd.String(outputKey)
	log.Printf("Max arity: %d", maxArity)

	contents := templates.TuplesGen(maxArity)
	return os.WriteFile(out, []byte(contents), 0644)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cellflow/cellflow/cellgraph"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPropagate(true)
}

func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("cellgraph")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := cellgraph.CreateReactiveSystem(func(from cellgraph.Reactive, err error) {
				log.Panic(err)
			})
			src := cellgraph.Cell(rs, 1)
			for i := 0; i < w; i++ {
				var last cellgraph.Readable[int] = src
				for j := 0; j < h; j++ {
					prev := last
					last = cellgraph.Derive(rs, func(oldValue int) int {
						return prev.Get() + 1
					})
				}

				leaf := last
				cellgraph.Reaction(rs, func() (cellgraph.CleanupFunc, error) {
					leaf.Get()
					return nil, nil
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

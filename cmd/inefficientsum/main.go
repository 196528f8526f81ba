// inefficientsum 只运行 O(n²) 基准实现，打印 S(n)。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/betbot/sumbench/internal/trisum"
	"github.com/betbot/sumbench/pkg/config"
)

func main() {
	n := flag.Int64("n", config.DefaultN, "求和上界 n")
	flag.Parse()

	if err := trisum.CheckN(*n); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Inefficient total sum: %d\n", trisum.NestedLoopSum(*n))
}

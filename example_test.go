package polyplot_test

import (
	"fmt"

	"github.com/teminism/polyplot"
)

func Example() {
	cfg := polyplot.DefaultConfig()
	cfg.Points = 4
	anim, err := polyplot.NewAnimator(cfg)
	if err != nil {
		panic(err)
	}

	lines := anim.Lines(200, 200)
	fmt.Println(len(lines), "lines, first colored", lines[0].Color.Hex())
	// Output:
	// 6 lines, first colored #4000df
}

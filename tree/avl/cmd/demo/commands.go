package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/avltree/tree/avl"
	"go.lepak.sg/avltree/tree/binary"
	"golang.org/x/sync/errgroup"
)

var countFlag = &cli.IntFlag{
	Name:    "count",
	Aliases: []string{"n"},
	Usage:   "number of keys to insert",
	Value:   20000,
	EnvVars: []string{"AVL_COUNT"},
}

var seedFlag = &cli.Int64Flag{
	Name:    "seed",
	Aliases: []string{"s"},
	Usage:   "seed for the insertion order (default current unix time in ns)",
	EnvVars: []string{"AVL_SEED"},
}

var cmdSequential = &cli.Command{
	Name:  "sequential",
	Usage: "insert 0..count-1 in ascending order, then search for a key",
	Flags: []cli.Flag{
		countFlag,
		&cli.IntFlag{
			Name:  "search",
			Usage: "key to search for after inserting",
			Value: 200001,
		},
	},
	Action: func(cctx *cli.Context) error {
		n, err := countOf(cctx)
		if err != nil {
			return err
		}
		tr := avl.NewOrdered[int, string]()
		for i := 0; i < n; i++ {
			tr.Insert(i, strconv.Itoa(i))
		}
		logger(cctx).Debug("inserted ascending keys", "count", n, "height", tr.Height())

		fmt.Fprintln(cctx.App.Writer, tr)

		v, err := tr.Search(cctx.Int("search"))
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, v)
		return nil
	},
}

var cmdKeys = &cli.Command{
	Name:      "keys",
	Usage:     "insert the given keys in order and draw the tree",
	ArgsUsage: "<key> [<key> ...]",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "delete",
			Usage: "keys to delete after inserting, may be repeated",
		},
		&cli.IntFlag{
			Name:  "search",
			Usage: "key to search for at the end",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() == 0 {
			return fmt.Errorf("no keys given")
		}

		tr := avl.NewOrdered[int, int]()
		for _, arg := range cctx.Args().Slice() {
			k, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("parsing key %q: %w", arg, err)
			}
			tr.Insert(k, k)
		}

		for _, k := range cctx.IntSlice("delete") {
			logger(cctx).Debug("deleting", "key", k, "present", tr.Contains(k))
			tr.Delete(k)
		}

		if err := tr.Check(); err != nil {
			return err
		}

		fmt.Fprintln(cctx.App.Writer, tr)
		fmt.Fprint(cctx.App.Writer, tr.Dump())

		if cctx.IsSet("search") {
			v, err := tr.Search(cctx.Int("search"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cctx.App.Writer, "found:", v)
		}
		return nil
	},
}

var cmdCompare = &cli.Command{
	Name:  "compare",
	Usage: "insert the same random keys into an AVL tree and an unbalanced tree",
	Flags: []cli.Flag{
		countFlag,
		seedFlag,
		&cli.BoolFlag{
			Name:  "sorted",
			Usage: "also insert the keys in ascending order, the worst case for the unbalanced tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		n, err := countOf(cctx)
		if err != nil {
			return err
		}
		seed := seedOf(cctx)

		balanced := avl.NewOrdered[int, int]()
		for i, k := range binary.RandomOrder(n, seed) {
			balanced.Insert(k, i)
		}
		unbalanced := binary.BuildRandom(n, seed)
		logger(cctx).Debug("built random trees", "count", n, "seed", seed)

		w := cctx.App.Writer
		fmt.Fprintln(w, "seed:", seed)
		fmt.Fprintln(w, "avl height:", balanced.Height())
		fmt.Fprintln(w, "unbalanced height:", unbalanced.Height())

		if cctx.Bool("sorted") {
			sortedBalanced := avl.NewOrdered[int, int]()
			for k := 0; k < n; k++ {
				sortedBalanced.Insert(k, k)
			}
			sortedUnbalanced := binary.BuildSorted(n)
			logger(cctx).Debug("built sorted trees", "count", n)

			fmt.Fprintln(w, "sorted avl height:", sortedBalanced.Height())
			fmt.Fprintln(w, "sorted unbalanced height:", sortedUnbalanced.Height())
		}

		fmt.Fprintln(w, "avl bound:", heightBound(n))
		return nil
	},
}

var cmdStats = &cli.Command{
	Name:  "stats",
	Usage: "build independent random trees concurrently and report their heights",
	Flags: []cli.Flag{
		countFlag,
		seedFlag,
		&cli.IntFlag{
			Name:  "trees",
			Usage: "number of trees to build",
			Value: 16,
		},
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "maximum number of trees built at the same time",
			Value:   4,
			EnvVars: []string{"AVL_WORKERS"},
		},
	},
	Action: func(cctx *cli.Context) error {
		n, err := countOf(cctx)
		if err != nil {
			return err
		}
		seed := seedOf(cctx)
		trees := cctx.Int("trees")
		if trees <= 0 {
			return fmt.Errorf("--trees must be positive, got %d", trees)
		}

		log := logger(cctx)

		// each tree is owned by exactly one goroutine
		heights := make([]int, trees)
		var g errgroup.Group
		g.SetLimit(max(cctx.Int("workers"), 1))
		for i := 0; i < trees; i++ {
			i := i
			g.Go(func() error {
				tr := avl.NewOrdered[int, int]()
				for j, k := range binary.RandomOrder(n, seed+int64(i)) {
					tr.Insert(k, j)
				}
				if err := tr.Check(); err != nil {
					return fmt.Errorf("tree %d: %w", i, err)
				}
				heights[i] = tr.Height()
				log.Debug("built tree", "tree", i, "height", heights[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		lo, hi := heights[0], heights[0]
		for _, h := range heights[1:] {
			lo, hi = min(lo, h), max(hi, h)
		}

		w := cctx.App.Writer
		fmt.Fprintf(w, "trees: %d of %d keys, seed %d\n", trees, n, seed)
		fmt.Fprintf(w, "height: min %d max %d bound %d\n", lo, hi, heightBound(n))
		return nil
	},
}

func seedOf(cctx *cli.Context) int64 {
	if cctx.IsSet("seed") {
		return cctx.Int64("seed")
	}
	return time.Now().UnixNano()
}

func countOf(cctx *cli.Context) (int, error) {
	n := cctx.Int("count")
	if n < 0 {
		return 0, fmt.Errorf("--count must not be negative, got %d", n)
	}
	return n, nil
}

// heightBound is the largest height, counted in edges, that an AVL
// tree of n keys can have. The smallest AVL tree of height h has one
// key more than the smallest trees of heights h-1 and h-2 together.
func heightBound(n int) int {
	h := -1
	for fewest, next := 1, 2; fewest <= n; fewest, next = next, fewest+next+1 {
		h++
	}
	return h
}

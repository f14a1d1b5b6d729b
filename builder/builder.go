package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrBadVertexCount indicates a constructor received a non-positive
	// vertex count.
	ErrBadVertexCount = errors.New("builder: vertex count must be positive")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// WeightFn derives an edge weight from its endpoints. Supplying one
// through WithWeightFn makes shape constructors fully deterministic
// functions of the topology.
type WeightFn func(from, to string) float64

// config is the resolved, immutable build configuration.
type config struct {
	seed     int64
	weightFn WeightFn // nil ⇒ constructor-specific default
	prefix   string
	rng      *rand.Rand
}

// Option configures a Build run.
type Option func(*config)

// WithSeed freezes the random source used by stochastic constructors.
// Default seed is 1.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeightFn sets the weight function applied by shape constructors.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithIDPrefix sets the vertex ID prefix used by shape constructors
// (default "V").
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// Constructor applies a deterministic mutation to the graph under
// construction. Constructors must draw randomness only from cfg.rng.
type Constructor func(g *core.Graph, cfg *config) error

// Build creates an empty core.Graph, resolves bopts into a config, and
// runs the constructors in order. The first constructor error aborts
// the build.
func Build(bopts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := &config{seed: 1, prefix: "V"}
	for _, opt := range bopts {
		opt(cfg)
	}
	cfg.rng = rand.New(rand.NewSource(cfg.seed))

	g := core.NewGraph()
	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilConstructor, i)
		}
		if err := con(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// id renders the i-th generated vertex ID under the configured prefix.
func (c *config) id(i int) string {
	return c.prefix + strconv.Itoa(i)
}

// weight resolves the weight of edge from→to: WeightFn when set,
// otherwise the supplied default.
func (c *config) weight(from, to string, def float64) float64 {
	if c.weightFn != nil {
		return c.weightFn(from, to)
	}

	return def
}

// Demo reproduces the seven-vertex reference graph:
//
//	A→B(2), A→F(2), A→G(3), B→A(1), B→C(4),
//	E→D(2), F→A(1), F→E(7), G→C(5), G→E(6)
//
// C and D are sinks; D is reachable from A only through E.
func Demo() Constructor {
	return demo(2)
}

// DemoNegative is Demo with the A→B weight flipped to −2, which makes
// the A→B→A loop a negative cycle and forces the engine onto
// Bellman-Ford.
func DemoNegative() Constructor {
	return demo(-2)
}

func demo(abWeight float64) Constructor {
	return func(g *core.Graph, _ *config) error {
		type e struct {
			from, to string
			w        float64
		}
		edges := []e{
			{"A", "B", abWeight}, {"A", "F", 2}, {"A", "G", 3},
			{"B", "A", 1}, {"B", "C", 4},
			{"E", "D", 2},
			{"F", "A", 1}, {"F", "E", 7},
			{"G", "C", 5}, {"G", "E", 6},
		}
		for _, ed := range edges {
			if err := g.AddEdge(ed.from, ed.to, ed.w); err != nil {
				return err
			}
		}
		// C and D only ever appear as targets; AddEdge registered them.
		return nil
	}
}

// Path adds a directed path <prefix>0 → <prefix>1 → … → <prefix>n-1.
// Default edge weight is 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: Path(%d)", ErrBadVertexCount, n)
		}
		if err := g.AddVertex(cfg.id(0)); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.id(i), cfg.id(i+1)
			if err := g.AddEdge(u, v, cfg.weight(u, v, 1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle adds a directed cycle over n vertices (Path plus the closing
// arc back to <prefix>0). Default edge weight is 1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: Cycle(%d)", ErrBadVertexCount, n)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		if n > 1 {
			u, v := cfg.id(n-1), cfg.id(0)
			return g.AddEdge(u, v, cfg.weight(u, v, 1))
		}

		return nil
	}
}

// Complete adds an arc between every ordered pair of distinct vertices.
// Default edge weight is 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: Complete(%d)", ErrBadVertexCount, n)
		}
		if err := g.AddVertex(cfg.id(0)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				u, v := cfg.id(i), cfg.id(j)
				if err := g.AddEdge(u, v, cfg.weight(u, v, 1)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse adds a spanning path over n vertices plus extra random
// arcs with weights drawn uniformly from [0, 10) — non-negative, so the
// fixture stays on the Dijkstra branch. Both endpoints and weights come
// from the seeded generator; a WeightFn overrides the random weights.
func RandomSparse(n, extra int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: RandomSparse(%d)", ErrBadVertexCount, n)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		for k := 0; k < extra; k++ {
			u := cfg.id(cfg.rng.Intn(n))
			v := cfg.id(cfg.rng.Intn(n))
			if err := g.AddEdge(u, v, cfg.weight(u, v, cfg.rng.Float64()*10)); err != nil {
				return err
			}
		}

		return nil
	}
}

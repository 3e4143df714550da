// Package builder assembles deterministic assignment fixtures on
// core.Graph[any] for tests, examples and benchmarks.
//
// A fixture is built by composing Constructors:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntegerWeightFn(0, 9))},
//	    builder.RandomBipartite(20, 25, 0.3),
//	)
//
// Buyers are ints (1, 2, ...) and objects are strings ("O1", "O2", ...), the
// convention auction.ByKind classifies without further configuration.
//
// Constructors:
//
//	CompleteBipartite(buyers, objects)  every buyer values every object
//	RandomBipartite(buyers, objects, p) each pair kept with probability p (needs an RNG)
//
// Valuations (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
// IntegerWeightFn.
//
// Options: WithSeed, WithRand, WithWeightFn, WithObjectPrefix, WithBuyerBase.
// Option constructors panic on programmer error; constructors return sentinel
// errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the method name.
package builder

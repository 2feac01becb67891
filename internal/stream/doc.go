// Package stream implements the lazy-sequence evaluation core: the concrete
// generator kinds behind the value.Stream capability contract.
//
// Three families of generators are provided:
//
//   - Primitive generators (Repeat, Cycle, Range) produce values directly and
//     wrap no sub-stream.
//   - Combinatorial enumerators (Permutations, Combinations, Subsequences,
//     CartesianPower) are index-vector state machines over a fixed shared
//     buffer, each with a lexicographic-successor algorithm and (mostly) a
//     closed-form remaining-count formula.
//   - Functional combinators (Iterate, Mapped, Strided, Scanned) and the
//     best-first Heap frontier wrap a user callable and/or an inner boxed
//     stream and re-expose the contract, enabling arbitrary nesting.
//
// Evaluation is single-threaded, cooperative and pull-based. Each pull from a
// composed pipeline performs exactly the minimum inner pulls and callable
// invocations needed to produce (or fail to produce) one output item.
//
// Combinators that hold a callable follow an explicit poisoning state
// machine: Active transitions monotonically to Faulted or Done, both
// absorbing. A poisoned combinator replays its stored fault on every
// subsequent pull and never re-attempts the inner operation; the
// graceful-termination sentinel (fault.ErrStopIteration) instead yields a
// permanent quiet end, invisible to the consumer.
package stream

package linear

import (
	"cmp"
	"context"
	"math/bits"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
)

// A Candidate pairs a guessed last-round key with its observed bias.
type Candidate struct {
	Key  heys.Block
	Bias float64
}

// SearchOptions tunes SearchLastRoundKey.
type SearchOptions struct {
	// KeyMask restricts the search to keys whose set bits lie within the
	// mask, for partial-subkey searches targeting only the S-boxes a
	// relation activates (e.g. 0x0F0F for Section34). Zero means the full
	// 16-bit keyspace.
	KeyMask uint16

	// Workers is the number of goroutines estimating biases. Zero or
	// negative means GOMAXPROCS. Each candidate key's bias is independent
	// of every other, so the search parallelizes without coordination
	// beyond the final ranking.
	Workers int
}

// SearchLastRoundKey estimates the relation's bias under every candidate
// last-round key permitted by the options and returns the candidates ranked
// by descending bias, ties broken by ascending key. The top-ranked candidates
// are the attacker's best guesses for the true key bits entering the
// relation's active S-boxes.
//
// It returns the corpus validation errors of EstimateBias, or the context's
// error if the search is cancelled.
func SearchLastRoundKey(ctx context.Context, plaintexts, ciphertexts []heys.Block, relation Relation, opts SearchOptions) ([]Candidate, error) {
	if err := validateCorpus(plaintexts, ciphertexts); err != nil {
		return nil, err
	}

	mask := opts.KeyMask
	if mask == 0 {
		mask = 0xFFFF
	}
	keys := maskedKeys(mask)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	candidates := make([]Candidate, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(keys) + workers - 1) / workers
	for lo := 0; lo < len(keys); lo += chunk {
		hi := min(lo+chunk, len(keys))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				guess, err := heys.NewCipher([]int{0, 0, 0, 0, int(keys[i])})
				if err != nil {
					return err
				}
				holds := countHolds(plaintexts, ciphertexts, guess, relation)
				bias := float64(holds)/float64(len(plaintexts)) - 0.5
				if bias < 0 {
					bias = -bias
				}
				candidates[i] = Candidate{Key: keys[i], Bias: bias}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Bias, a.Bias); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return candidates, nil
}

// maskedKeys enumerates, in ascending order, every 16-bit value whose set
// bits are a subset of mask.
func maskedKeys(mask uint16) []heys.Block {
	keys := make([]heys.Block, 0, 1<<bits.OnesCount16(mask))
	sub := uint16(0)
	for {
		keys = append(keys, heys.Block(sub))
		sub = (sub - mask) & mask
		if sub == 0 {
			break
		}
	}
	return keys
}

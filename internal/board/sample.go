package board

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/five82/clueboard/internal/trivia"
)

// InsufficientPoolError reports a candidate set smaller than the sample
// requested from it.
type InsufficientPoolError struct {
	What string
	Have int
	Want int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("not enough %s: have %d, want %d", e.What, e.Have, e.Want)
}

// CategoryFetcher loads one category's full clue list.
type CategoryFetcher interface {
	FetchCategory(ctx context.Context, id trivia.CategoryID) (trivia.Category, error)
}

// SelectRandomCategoryIDs draws n distinct ids uniformly without replacement.
// Duplicate entries in pool count once.
func SelectRandomCategoryIDs(rng *rand.Rand, pool []trivia.CategoryID, n int) ([]trivia.CategoryID, error) {
	unique := dedupe(pool)
	if n < 0 || len(unique) < n {
		return nil, &InsufficientPoolError{What: "categories", Have: len(unique), Want: n}
	}
	return sample(rng, unique, n), nil
}

// SelectRandomClues draws n distinct clues uniformly without replacement,
// each starting Hidden.
func SelectRandomClues(rng *rand.Rand, clues []trivia.Clue, n int) ([]*Clue, error) {
	if n < 0 || len(clues) < n {
		return nil, &InsufficientPoolError{What: "clues", Have: len(clues), Want: n}
	}
	picked := sample(rng, clues, n)
	out := make([]*Clue, len(picked))
	for i, raw := range picked {
		out[i] = &Clue{Question: raw.Question, Answer: raw.Answer, State: Hidden}
	}
	return out, nil
}

// Build fetches each category in order, samples its clues down to
// cluesPerCategory and assembles the board. The first failure aborts the
// build; no partial board is returned.
func Build(ctx context.Context, fetcher CategoryFetcher, rng *rand.Rand, ids []trivia.CategoryID, cluesPerCategory int) (*Board, error) {
	b := &Board{Categories: make([]*Category, 0, len(ids))}
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := fetcher.FetchCategory(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("category %d of %d: %w", i+1, len(ids), err)
		}
		clues, err := SelectRandomClues(rng, raw.Clues, cluesPerCategory)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", raw.Title, err)
		}
		b.Categories = append(b.Categories, &Category{ID: id, Title: raw.Title, Clues: clues})
	}
	return b, nil
}

// sample returns n elements of pool via a partial Fisher-Yates shuffle over a
// copy. A nil rng uses the global source.
func sample[T any](rng *rand.Rand, pool []T, n int) []T {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	work := make([]T, len(pool))
	copy(work, pool)
	for i := 0; i < n; i++ {
		j := i + intN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n:n]
}

func dedupe(pool []trivia.CategoryID) []trivia.CategoryID {
	seen := make(map[trivia.CategoryID]struct{}, len(pool))
	out := make([]trivia.CategoryID, 0, len(pool))
	for _, id := range pool {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

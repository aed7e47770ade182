package recommendation

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/pkg/catalog"
	"context"
	"sync"
	"time"
)

// enrichTimeout bounds each per-candidate catalog lookup independently; one
// slow lookup never delays the others.
const enrichTimeout = 2 * time.Second

// GameSearcher is the slice of the catalog client the enricher needs.
type GameSearcher interface {
	SearchGames(ctx context.Context, params catalog.SearchParams) (*catalog.SearchResult, error)
}

// Enrich attaches a background image and catalog ID to each candidate via a
// concurrent catalog search. Enrichment is cosmetic: lookups that fail, time
// out, or match nothing leave the candidate with nil image and ID, and no
// candidate is ever dropped. Output order matches input order.
func Enrich(ctx context.Context, searcher GameSearcher, candidates []domain.RecommendationCandidate) []domain.EnrichedRecommendation {
	enriched := make([]domain.EnrichedRecommendation, len(candidates))

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate domain.RecommendationCandidate) {
			defer wg.Done()
			enriched[i] = enrichOne(ctx, searcher, candidate)
		}(i, candidate)
	}
	wg.Wait()

	return enriched
}

func enrichOne(ctx context.Context, searcher GameSearcher, candidate domain.RecommendationCandidate) domain.EnrichedRecommendation {
	rec := domain.EnrichedRecommendation{RecommendationCandidate: candidate}

	lookupCtx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	type searchOutcome struct {
		result *catalog.SearchResult
		err    error
	}

	outcome := make(chan searchOutcome, 1)
	go func() {
		result, err := searcher.SearchGames(lookupCtx, catalog.SearchParams{
			Search:   candidate.Title,
			PageSize: 1,
		})
		outcome <- searchOutcome{result: result, err: err}
	}()

	select {
	case out := <-outcome:
		if out.err != nil || out.result == nil || len(out.result.Results) == 0 {
			return rec
		}
		game := out.result.Results[0]
		rec.Image = &game.BackgroundImage
		gameID := game.ID
		rec.GameID = &gameID
		return rec
	case <-lookupCtx.Done():
		// Lookup still in flight after the deadline; the candidate goes out
		// without an image rather than holding up the response.
		return rec
	}
}

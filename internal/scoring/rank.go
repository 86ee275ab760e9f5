package scoring

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/types"
)

// maxConcurrentScores bounds the per-job scoring fan-out so a large
// candidate pool does not flood the semantic oracle.
const maxConcurrentScores = 8

// RankCandidates scores every candidate against the job in parallel, drops
// pairs under the configured minimum semantic score, and returns the rest
// sorted by total descending with candidate-ID tiebreaks for determinism.
func (s *Scorer) RankCandidates(ctx context.Context, job types.JobRecord, candidates []types.CandidateRecord) ([]types.MatchScore, error) {
	scores := make([]types.MatchScore, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, candidate := range candidates {
		g.Go(func() error {
			scores[i] = s.Score(gCtx, job, candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]types.MatchScore, 0, len(scores))
	for _, score := range scores {
		if score.Breakdown.Semantic < s.cfg.MinSemanticScore {
			continue
		}
		ranked = append(ranked, score)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].CandidateID < ranked[j].CandidateID
	})
	return ranked, nil
}

package contestants

import (
	"context"
	"sort"

	"bachelorette-db/lib/textutil"
	"bachelorette-db/services/contestants/db"

	"github.com/antzucaro/matchr"
)

// Contestants lists the stored contestants of a season in table order, or of
// every season when `season` is 0.
func (s Service) Contestants(ctx context.Context, season int) ([]db.Contestant, error) {
	conn, err := s.store.OpenDB()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	qry := db.New(conn)
	if season == 0 {
		return qry.GetContestants(ctx)
	}
	return qry.GetSeasonContestants(ctx, int64(season))
}

func (s Service) SeasonCounts(ctx context.Context) ([]db.GetSeasonCountsRow, error) {
	conn, err := s.store.OpenDB()
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return db.New(conn).GetSeasonCounts(ctx)
}

type Match struct {
	Contestant db.Contestant
	Similarity float64
}

// the Jaro-Winkler similarity a name needs to count as a match
const DefaultSimilarity = 0.85

// RankByName scores every contestant against `query`. names containing the
// query score 1, others score their Jaro-Winkler similarity. matches below
// `threshold` are dropped and at most `limit` matches are returned (0 means
// no limit), best first.
func RankByName(contestants []db.Contestant, query string, threshold float64, limit int) []Match {
	normalized := textutil.NormalizeName(query)
	if normalized == "" {
		return nil
	}

	var matches []Match
	for _, c := range contestants {
		similarity := 1.0
		if !textutil.MatchName(c.Name, []string{normalized}) {
			similarity = matchr.JaroWinkler(normalized, textutil.NormalizeName(c.Name), false)
		}
		if similarity < threshold {
			continue
		}
		matches = append(matches, Match{Contestant: c, Similarity: similarity})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func (s Service) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	contestants, err := s.Contestants(ctx, 0)
	if err != nil {
		return nil, err
	}
	return RankByName(contestants, query, DefaultSimilarity, limit), nil
}

package decoder

import "github.com/ceccec/zeropoint/pkg/identifier"

// Scores are illustrative heuristics keyed purely on the version marker.
// They are fixed constants, not measurements.
type Scores struct {
	IndexEfficiency float64 `json:"index_efficiency"`
	CacheEfficiency float64 `json:"cache_efficiency"`
	Entropy         float64 `json:"entropy"`
}

var defaultScores = Scores{IndexEfficiency: 0.6, CacheEfficiency: 0.7, Entropy: 1.0}

var scoreTable = map[identifier.Version]Scores{
	identifier.VersionTimeOrdered:       {IndexEfficiency: 0.9, CacheEfficiency: 0.85, Entropy: 0.6},
	identifier.VersionTimeOrderedRandom: {IndexEfficiency: 0.9, CacheEfficiency: 0.95, Entropy: 0.8},
	identifier.VersionNameMD5:           {IndexEfficiency: 0.6, CacheEfficiency: 0.7, Entropy: 1.0},
	identifier.VersionNameSHA1:          {IndexEfficiency: 0.6, CacheEfficiency: 0.7, Entropy: 0.3},
}

// ScoresFor returns the scores for a version marker. Random, pattern and
// every other marker share the default row.
func ScoresFor(v identifier.Version) Scores {
	if s, ok := scoreTable[v]; ok {
		return s
	}
	return defaultScores
}

package engine

import (
	"math"
	"sort"
)

/* =========================================================
   Agregasi per soal
========================================================= */

type ScoreDistribution struct {
	Score      int     `json:"score"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type QuestionAggregate struct {
	Average       float64             `json:"average"`
	Min           float64             `json:"min"`
	Max           float64             `json:"max"`
	Median        float64             `json:"median"`
	Mode          float64             `json:"mode"`
	StdDev        float64             `json:"std_dev"`
	ResponseCount int                 `json:"response_count"`
	Distribution  []ScoreDistribution `json:"distribution"`
}

// AggregateQuestion menghitung statistik satu soal dari skor mentah seluruh
// responden. Skor <= 0 dianggap tidak menjawab dan dikeluarkan. Statistik
// (average dst.) dihitung dari nilai ternormalisasi; distribusi dihitung dari
// skor mentah pada rentang 1..ScaleMax tipe soal. Set kosong menghasilkan
// agregat bernilai nol, tidak pernah NaN.
func AggregateQuestion(rawScores []float64, questionType string) QuestionAggregate {
	scaleMax := ScaleMax(questionType)
	agg := QuestionAggregate{Distribution: emptyDistribution(scaleMax)}
	if scaleMax == 0 {
		return agg
	}

	kept := make([]float64, 0, len(rawScores))
	normalized := make([]float64, 0, len(rawScores))
	for _, raw := range rawScores {
		norm, ok := NormalizeScore(raw, questionType)
		if !ok {
			continue
		}
		kept = append(kept, raw)
		normalized = append(normalized, norm)
	}

	n := len(normalized)
	agg.ResponseCount = n
	if n == 0 {
		return agg
	}

	// distribusi skor mentah 1..scaleMax
	for i := range agg.Distribution {
		score := agg.Distribution[i].Score
		count := 0
		for _, raw := range kept {
			if int(math.Round(raw)) == score {
				count++
			}
		}
		agg.Distribution[i].Count = count
		agg.Distribution[i].Percentage = float64(count) / float64(n) * 100
	}

	sorted := append([]float64(nil), normalized...)
	sort.Float64s(sorted)

	agg.Min = sorted[0]
	agg.Max = sorted[n-1]
	agg.Median = median(sorted)
	agg.Mode = mode(normalized)

	sum := 0.0
	for _, v := range normalized {
		sum += v
	}
	agg.Average = sum / float64(n)

	// standar deviasi populasi (bagi N, bukan N-1)
	ssd := 0.0
	for _, v := range normalized {
		d := v - agg.Average
		ssd += d * d
	}
	agg.StdDev = math.Sqrt(ssd / float64(n))

	return agg
}

func emptyDistribution(scaleMax int) []ScoreDistribution {
	dist := make([]ScoreDistribution, 0, scaleMax)
	for s := 1; s <= scaleMax; s++ {
		dist = append(dist, ScoreDistribution{Score: s})
	}
	return dist
}

// median nilai tengah; rata-rata dua nilai tengah untuk jumlah genap.
// Input harus sudah terurut.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// mode nilai paling sering muncul; seri dimenangkan nilai terkecil.
func mode(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	freq := make(map[float64]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	best := 0.0
	bestCount := -1
	for v, count := range freq {
		if count > bestCount || (count == bestCount && v < best) {
			best = v
			bestCount = count
		}
	}
	return best
}

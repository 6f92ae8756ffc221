package engine

/* =========================================================
   Skor per indikator
========================================================= */

// RespondentCountStrategy menamai pilihan "n" pada rumus unweighted S/(n×p):
// jumlah respons per soal bisa berbeda, dan yang dipakai adalah jumlah
// respons terbesar yang teramati di antara soal-soal indikator.
const RespondentCountStrategy = "max-per-question"

type QuestionDetail struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	QuestionAggregate
	Weight           int    `json:"weight"`
	QualitativeLabel string `json:"qualitative_label"`
}

type IndicatorScore struct {
	IndicatorID    string  `json:"indicator_id"`
	IndicatorTitle string  `json:"indicator_title"`
	Score          float64 `json:"score"`
	Weight         int     `json:"weight"`
	// WeightedScore = Score × (Weight/100), hanya untuk tampilan kontribusi.
	WeightedScore    float64          `json:"weighted_score"`
	IndexPercent     int              `json:"index_percent"`
	QualitativeLabel string           `json:"qualitative_label"`
	QuestionDetails  []QuestionDetail `json:"question_details"`
}

// ScoreIndicator menghitung skor komposit satu indikator dari detail soalnya.
//
// Mode weighted : score = Σ(average × weight) / Σ(weight); 0 bila total bobot 0.
// Mode unweighted: score = S / (n × p), dengan S = jumlah seluruh nilai
// ternormalisasi, n = jumlah respons terbesar per soal (lihat
// RespondentCountStrategy), p = jumlah soal; 0 bila n × p = 0.
func ScoreIndicator(questions []QuestionDetail, weighted bool) float64 {
	if len(questions) == 0 {
		return 0
	}

	if weighted {
		totalWeight := 0
		weightedSum := 0.0
		for _, q := range questions {
			weightedSum += q.Average * float64(q.Weight)
			totalWeight += q.Weight
		}
		if totalWeight == 0 {
			return 0
		}
		return weightedSum / float64(totalWeight)
	}

	// unweighted: S / (n × p)
	sum := 0.0
	maxCount := 0
	for _, q := range questions {
		// Average × ResponseCount mengembalikan jumlah nilai ternormalisasi soal
		sum += q.Average * float64(q.ResponseCount)
		if q.ResponseCount > maxCount {
			maxCount = q.ResponseCount
		}
	}

	denom := maxCount * len(questions)
	if denom == 0 {
		return 0
	}
	return sum / float64(denom)
}

// WeightedContribution menghitung kontribusi indikator terhadap total untuk
// kartu tampilan; bukan komponen perhitungan skor keseluruhan.
func WeightedContribution(score float64, indicatorWeight int) float64 {
	return score * float64(indicatorWeight) / 100
}

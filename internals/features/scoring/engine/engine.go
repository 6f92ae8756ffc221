// Package engine berisi mesin skoring survei kepuasan (IKM): normalisasi
// skala, agregasi per soal/indikator/survei, resolusi periode, dan rekap
// demografi. Seluruh perhitungan murni di memori — tanpa I/O, tanpa state —
// sehingga aman dijalankan ulang kapan pun atas snapshot data yang sama.
// Mesin tidak pernah error untuk masalah kualitas data; hasil terdegradasi
// ke nilai nol / "Tidak ada data".
package engine

import "time"

/* =========================================================
   Input (hasil mapping satu kali dari baris database)
========================================================= */

type QuestionInput struct {
	ID       string
	Text     string
	Type     string
	Weight   int
	Required bool
	Options  []string
}

type IndicatorInput struct {
	ID        string
	Title     string
	Weight    int
	Questions []QuestionInput
}

type DemographicFieldInput struct {
	ID      string
	Label   string
	Type    string
	Options []string
}

type SurveyInput struct {
	ID                string
	Title             string
	Type              string // weighted | unweighted
	Category          string // calculate | non_calculate
	Period            SurveyPeriod
	Indicators        []IndicatorInput
	DemographicFields []DemographicFieldInput
}

type ResponseInput struct {
	ID        string
	PeriodKey string // isi kolom periode_survei, format "{code}-{year}"
	// Scores: questionID → skor mentah likert. Soal tanpa jawaban tidak
	// punya entri (atau 0) — keduanya dianggap tidak menjawab.
	Scores map[string]float64
	// Demographics: fieldID → nilai jawaban (string, angka, atau array).
	Demographics map[string]any
}

/* =========================================================
   Output
========================================================= */

type SurveyResult struct {
	SurveyID       string `json:"survey_id"`
	SurveyTitle    string `json:"survey_title"`
	SurveyType     string `json:"survey_type"`
	TotalResponses int    `json:"total_responses"`

	SurveyAggregate
	IndexVariant IndexVariant `json:"index_variant"`

	IndicatorScores      []IndicatorScore       `json:"indicator_scores"`
	DemographicBreakdown []DemographicBreakdown `json:"demographic_breakdown"`

	Period       ResolvedPeriod `json:"period"`
	CalculatedAt time.Time      `json:"calculated_at"`
}

type Options struct {
	// Variant memilih rumus indeks kepuasan (default VariantIKM).
	Variant IndexVariant
	// PeriodFilter membatasi respons ke satu periode ("Q3-2025"); kosong = semua.
	PeriodFilter string
}

/* =========================================================
   Orkestrasi
========================================================= */

// BuildSurveyResult menjalankan seluruh pipeline skoring atas satu snapshot:
// filter periode → agregasi per soal → skor indikator → agregasi survei →
// rekap demografi. Survei non_calculate hanya mendapat jumlah respons dan
// rekap demografi, tanpa indeks.
func BuildSurveyResult(survey SurveyInput, responses []ResponseInput, opts Options) SurveyResult {
	if opts.Variant == "" {
		opts.Variant = VariantIKM
	}

	inScope := filterByPeriod(responses, opts.PeriodFilter)

	result := SurveyResult{
		SurveyID:        survey.ID,
		SurveyTitle:     survey.Title,
		SurveyType:      survey.Type,
		TotalResponses:  len(inScope),
		IndexVariant:    opts.Variant,
		IndicatorScores: []IndicatorScore{},
		SurveyAggregate: SurveyAggregate{
			QualityCategory: CategoryNoData,
			QualityLabel:    CategoryNoData,
		},
		Period:       ResolvePeriod(survey.Period),
		CalculatedAt: time.Now(),
	}

	result.DemographicBreakdown = breakdownAll(survey.DemographicFields, inScope)

	if survey.Category == SurveyCategoryNonCalculate {
		return result
	}

	weighted := survey.Type == SurveyTypeWeighted
	for _, ind := range survey.Indicators {
		result.IndicatorScores = append(result.IndicatorScores, scoreIndicatorInput(ind, inScope, weighted))
	}

	result.SurveyAggregate = AggregateSurvey(result.IndicatorScores, weighted, opts.Variant)
	return result
}

func filterByPeriod(responses []ResponseInput, periodKey string) []ResponseInput {
	if periodKey == "" {
		return responses
	}
	out := make([]ResponseInput, 0, len(responses))
	for _, r := range responses {
		if r.PeriodKey == periodKey {
			out = append(out, r)
		}
	}
	return out
}

func scoreIndicatorInput(ind IndicatorInput, responses []ResponseInput, weighted bool) IndicatorScore {
	details := make([]QuestionDetail, 0, len(ind.Questions))
	for _, q := range ind.Questions {
		if !IsLikert(q.Type) {
			// jawaban teks/pilihan/tanggal tidak pernah dirata-rata
			continue
		}

		scores := make([]float64, 0, len(responses))
		for _, r := range responses {
			if s, ok := r.Scores[q.ID]; ok {
				scores = append(scores, s)
			}
		}

		agg := AggregateQuestion(scores, q.Type)
		details = append(details, QuestionDetail{
			QuestionID:        q.ID,
			QuestionText:      q.Text,
			QuestionAggregate: agg,
			Weight:            q.Weight,
			QualitativeLabel:  QualitativeLabel(agg.Average),
		})
	}

	score := ScoreIndicator(details, weighted)
	out := IndicatorScore{
		IndicatorID:      ind.ID,
		IndicatorTitle:   ind.Title,
		Score:            score,
		Weight:           ind.Weight,
		IndexPercent:     IndexPercent(score),
		QualitativeLabel: QualitativeLabel(score),
		QuestionDetails:  details,
	}
	if weighted {
		out.WeightedScore = WeightedContribution(score, ind.Weight)
	}
	if score <= 0 {
		out.IndexPercent = 0
	}
	return out
}

func breakdownAll(fields []DemographicFieldInput, responses []ResponseInput) []DemographicBreakdown {
	out := make([]DemographicBreakdown, 0, len(fields))
	for _, f := range fields {
		values := make([]any, 0, len(responses))
		for _, r := range responses {
			if v, ok := r.Demographics[f.ID]; ok {
				values = append(values, v)
			}
		}
		out = append(out, Breakdown(f.ID, f.Label, values))
	}
	return out
}

package engine

import "testing"

func sampleSurvey(surveyType string) SurveyInput {
	return SurveyInput{
		ID:       "svy-1",
		Title:    "Survei Kepuasan Layanan Kependudukan",
		Type:     surveyType,
		Category: SurveyCategoryCalculate,
		Period:   SurveyPeriod{Type: PeriodQuarterly, Year: 2025, Value: "Q3"},
		Indicators: []IndicatorInput{
			{
				ID: "ind-1", Title: "Kecepatan Pelayanan", Weight: 60,
				Questions: []QuestionInput{
					{ID: "q1", Text: "Kecepatan proses", Type: QuestionTypeLikert6, Weight: 100},
				},
			},
			{
				ID: "ind-2", Title: "Keramahan Petugas", Weight: 40,
				Questions: []QuestionInput{
					{ID: "q2", Text: "Keramahan petugas", Type: QuestionTypeLikert6, Weight: 100},
					{ID: "q3", Text: "Kritik dan saran", Type: QuestionTypeText},
				},
			},
		},
		DemographicFields: []DemographicFieldInput{
			{ID: "gender", Label: "Jenis Kelamin", Type: "radio"},
		},
	}
}

func sampleResponses() []ResponseInput {
	return []ResponseInput{
		{
			ID: "r1", PeriodKey: "Q3-2025",
			Scores:       map[string]float64{"q1": 6, "q2": 6},
			Demographics: map[string]any{"gender": "Laki-laki"},
		},
		{
			ID: "r2", PeriodKey: "Q3-2025",
			Scores:       map[string]float64{"q1": 6, "q2": 3},
			Demographics: map[string]any{"gender": "Perempuan"},
		},
		{
			ID: "r3", PeriodKey: "Q2-2025",
			Scores:       map[string]float64{"q1": 3, "q2": 3},
			Demographics: map[string]any{"gender": "Perempuan"},
		},
	}
}

func TestBuildSurveyResultWeighted(t *testing.T) {
	result := BuildSurveyResult(sampleSurvey(SurveyTypeWeighted), sampleResponses(), Options{
		Variant:      VariantIKM,
		PeriodFilter: "Q3-2025",
	})

	if result.TotalResponses != 2 {
		t.Fatalf("TotalResponses = %d, want 2 (filter periode)", result.TotalResponses)
	}
	if len(result.IndicatorScores) != 2 {
		t.Fatalf("IndicatorScores len = %d, want 2", len(result.IndicatorScores))
	}

	// q1: (4.0+4.0)/2 = 4.0 (likert-6 dinormalisasi ÷1.5)
	ind1 := result.IndicatorScores[0]
	if !almostEqual(ind1.Score, 4.0) {
		t.Errorf("skor indikator 1 = %v, want 4.0", ind1.Score)
	}
	if len(ind1.QuestionDetails) != 1 {
		t.Errorf("detail soal indikator 1 = %d, want 1", len(ind1.QuestionDetails))
	}

	// q2: (4.0+2.0)/2 = 3.0; soal teks dilewati
	ind2 := result.IndicatorScores[1]
	if !almostEqual(ind2.Score, 3.0) {
		t.Errorf("skor indikator 2 = %v, want 3.0", ind2.Score)
	}
	if len(ind2.QuestionDetails) != 1 {
		t.Errorf("soal teks harus dilewati: %d detail", len(ind2.QuestionDetails))
	}

	// survei: (4.0×60 + 3.0×40)/100 = 3.6
	if !almostEqual(result.AverageScore, 3.6) {
		t.Errorf("AverageScore = %v, want 3.6", result.AverageScore)
	}
	// varian B: round(3.6×0.75+0.25) = round(2.95) = 3 → B
	if !almostEqual(result.SatisfactionIndex, 3) {
		t.Errorf("SatisfactionIndex = %v, want 3", result.SatisfactionIndex)
	}
	if !almostEqual(result.NilaiKonversi, 75) {
		t.Errorf("NilaiKonversi = %v, want 75", result.NilaiKonversi)
	}
	if result.QualityCategory != "B" {
		t.Errorf("QualityCategory = %q, want B", result.QualityCategory)
	}

	if result.Period.DisplayLabel != "Triwulan 3 2025" {
		t.Errorf("DisplayLabel = %q", result.Period.DisplayLabel)
	}
	if result.CalculatedAt.IsZero() {
		t.Error("CalculatedAt harus terisi")
	}
}

func TestBuildSurveyResultUnweightedAllPeriods(t *testing.T) {
	result := BuildSurveyResult(sampleSurvey(SurveyTypeUnweighted), sampleResponses(), Options{})

	if result.TotalResponses != 3 {
		t.Fatalf("TotalResponses = %d, want 3 (tanpa filter)", result.TotalResponses)
	}
	if result.IndexVariant != VariantIKM {
		t.Errorf("varian default harus %q, got %q", VariantIKM, result.IndexVariant)
	}

	// unweighted: S = Σ skor ternormalisasi, p×n = jumlah soal × responden max
	// q1: 4+4+2 = 10; q2: 4+2+2 = 8
	// ind-1: 10/(3×1) = 3.333…; ind-2: 8/(3×1) = 2.667…
	if !almostEqual(result.IndicatorScores[0].Score, 10.0/3) {
		t.Errorf("skor indikator 1 = %v, want %v", result.IndicatorScores[0].Score, 10.0/3)
	}
	if !almostEqual(result.IndicatorScores[1].Score, 8.0/3) {
		t.Errorf("skor indikator 2 = %v, want %v", result.IndicatorScores[1].Score, 8.0/3)
	}
	// survei unweighted: rata-rata indikator = (10/3 + 8/3)/2 = 3
	if !almostEqual(result.AverageScore, 3) {
		t.Errorf("AverageScore = %v, want 3", result.AverageScore)
	}
}

func TestBuildSurveyResultNonCalculate(t *testing.T) {
	survey := sampleSurvey(SurveyTypeWeighted)
	survey.Category = SurveyCategoryNonCalculate

	result := BuildSurveyResult(survey, sampleResponses(), Options{PeriodFilter: "Q3-2025"})

	if result.TotalResponses != 2 {
		t.Errorf("TotalResponses = %d, want 2", result.TotalResponses)
	}
	if len(result.IndicatorScores) != 0 {
		t.Errorf("non_calculate tidak boleh punya skor indikator: %d", len(result.IndicatorScores))
	}
	if result.QualityCategory != CategoryNoData {
		t.Errorf("QualityCategory = %q, want %q", result.QualityCategory, CategoryNoData)
	}
	if len(result.DemographicBreakdown) != 1 {
		t.Fatalf("rekap demografi tetap jalan untuk non_calculate")
	}
	if result.DemographicBreakdown[0].Total != 2 {
		t.Errorf("Total demografi = %d, want 2", result.DemographicBreakdown[0].Total)
	}
}

func TestBuildSurveyResultNoResponses(t *testing.T) {
	result := BuildSurveyResult(sampleSurvey(SurveyTypeWeighted), nil, Options{})

	if result.TotalResponses != 0 {
		t.Errorf("TotalResponses = %d", result.TotalResponses)
	}
	if result.AverageScore != 0 || result.QualityCategory != CategoryNoData {
		t.Errorf("tanpa respons harus degradasi ke nol: %+v", result.SurveyAggregate)
	}
	for _, ind := range result.IndicatorScores {
		if ind.Score != 0 || ind.IndexPercent != 0 {
			t.Errorf("indikator tanpa respons: %+v", ind)
		}
	}
}

func TestBuildSurveyResultDemographics(t *testing.T) {
	result := BuildSurveyResult(sampleSurvey(SurveyTypeWeighted), sampleResponses(), Options{})

	if len(result.DemographicBreakdown) != 1 {
		t.Fatalf("DemographicBreakdown len = %d, want 1", len(result.DemographicBreakdown))
	}
	gender := result.DemographicBreakdown[0]
	if gender.Total != 3 {
		t.Errorf("Total = %d, want 3", gender.Total)
	}
	if gender.Distribution[0].Name != "Perempuan" || gender.Distribution[0].Count != 2 {
		t.Errorf("bucket terbanyak: %+v", gender.Distribution[0])
	}
}

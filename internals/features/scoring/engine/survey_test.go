package engine

import "testing"

func indicatorWith(score float64, weight int) IndicatorScore {
	return IndicatorScore{Score: score, Weight: weight}
}

func TestAggregateSurveyWeighted(t *testing.T) {
	indicators := []IndicatorScore{
		indicatorWith(4.0, 70),
		indicatorWith(2.0, 30),
	}
	agg := AggregateSurvey(indicators, true, VariantScale)

	// (4×70 + 2×30) / 100 = 3.4
	if !almostEqual(agg.AverageScore, 3.4) {
		t.Fatalf("AverageScore = %v, want 3.4", agg.AverageScore)
	}
}

func TestAggregateSurveyUnweightedInvariantUnderReorder(t *testing.T) {
	a := []IndicatorScore{indicatorWith(2, 0), indicatorWith(3, 0), indicatorWith(4, 0)}
	b := []IndicatorScore{indicatorWith(4, 0), indicatorWith(2, 0), indicatorWith(3, 0)}

	ra := AggregateSurvey(a, false, VariantScale)
	rb := AggregateSurvey(b, false, VariantScale)

	if !almostEqual(ra.AverageScore, 3) {
		t.Fatalf("AverageScore = %v, want 3 (rata-rata sederhana)", ra.AverageScore)
	}
	if !almostEqual(ra.AverageScore, rb.AverageScore) {
		t.Fatalf("urutan indikator mengubah hasil: %v != %v", ra.AverageScore, rb.AverageScore)
	}
}

func TestAggregateSurveyEmptyAndZeroWeight(t *testing.T) {
	empty := AggregateSurvey(nil, true, VariantIKM)
	if empty.AverageScore != 0 || empty.QualityCategory != CategoryNoData {
		t.Errorf("set kosong: %+v", empty)
	}

	zeroW := AggregateSurvey([]IndicatorScore{indicatorWith(3, 0)}, true, VariantIKM)
	if zeroW.AverageScore != 0 || zeroW.QualityCategory != CategoryNoData {
		t.Errorf("total bobot 0 harus degradasi ke nol: %+v", zeroW)
	}
}

func TestConvertToIKMScaleBoundaries(t *testing.T) {
	// varian B: skor 1 → 1; skor 6 → 4 (kena clamp, bukan 5)
	if got := ConvertToIKMScale(1); !almostEqual(got, 1) {
		t.Errorf("ConvertToIKMScale(1) = %v, want 1", got)
	}
	if got := ConvertToIKMScale(6); !almostEqual(got, 4) {
		t.Errorf("ConvertToIKMScale(6) = %v, want 4", got)
	}
	// skor 2.0 → round(1.75) = 2 → kategori C
	if got := ConvertToIKMScale(2.0); !almostEqual(got, 2) {
		t.Errorf("ConvertToIKMScale(2) = %v, want 2", got)
	}
	code, label := QualityCategory(2)
	if code != "C" || label != "Kurang Baik" {
		t.Errorf("QualityCategory(2) = %s/%s, want C/Kurang Baik", code, label)
	}
}

func TestCalculateIndexScale(t *testing.T) {
	// varian A: pemetaan linier 1–6 → 1–4
	if got := CalculateIndexScale(1); !almostEqual(got, 1) {
		t.Errorf("CalculateIndexScale(1) = %v, want 1", got)
	}
	if got := CalculateIndexScale(6); !almostEqual(got, 4) {
		t.Errorf("CalculateIndexScale(6) = %v, want 4", got)
	}
	if got := CalculateIndexScale(3.5); !almostEqual(got, 2.5) {
		t.Errorf("CalculateIndexScale(3.5) = %v, want 2.5", got)
	}
}

func TestIndexPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{1, 0},
		{6, 100},
		{3.5, 50},
	}
	for _, tt := range tests {
		if got := IndexPercent(tt.score); got != tt.want {
			t.Errorf("IndexPercent(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestQualityCategoryBands(t *testing.T) {
	tests := []struct {
		index float64
		code  string
		label string
	}{
		{1.00, "D", "Tidak Baik"},
		{1.75, "D", "Tidak Baik"},
		{1.76, "C", "Kurang Baik"},
		{2.50, "C", "Kurang Baik"},
		{2.51, "B", "Baik"},
		{3.25, "B", "Baik"},
		{3.26, "A", "Sangat Baik"},
		{4.00, "A", "Sangat Baik"},
	}
	for _, tt := range tests {
		code, label := QualityCategory(tt.index)
		if code != tt.code || label != tt.label {
			t.Errorf("QualityCategory(%v) = %s/%s, want %s/%s", tt.index, code, label, tt.code, tt.label)
		}
	}
}

func TestQualityCategoryFromKonversi(t *testing.T) {
	tests := []struct {
		konversi float64
		code     string
	}{
		{25.00, "D"},
		{43.75, "D"},
		{62.50, "C"},
		{81.25, "B"},
		{100.0, "A"},
	}
	for _, tt := range tests {
		code, _ := QualityCategoryFromKonversi(tt.konversi)
		if code != tt.code {
			t.Errorf("QualityCategoryFromKonversi(%v) = %s, want %s", tt.konversi, code, tt.code)
		}
	}
}

func TestQualitativeLabelSixTiers(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{6.0, "Sangat Memuaskan"},
		{5.5, "Sangat Memuaskan"},
		{5.0, "Memuaskan"},
		{4.0, "Cukup Memuaskan"},
		{3.0, "Kurang Memuaskan"},
		{2.0, "Tidak Memuaskan"},
		{1.0, "Sangat Tidak Memuaskan"},
		{1.4, "Sangat Tidak Memuaskan"},
	}
	for _, tt := range tests {
		if got := QualitativeLabel(tt.score); got != tt.want {
			t.Errorf("QualitativeLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAggregateSurveyClampsAverage(t *testing.T) {
	// skor di luar plafon skala 6 dipotong sebelum konversi indeks
	agg := AggregateSurvey([]IndicatorScore{indicatorWith(9.5, 100)}, true, VariantScale)
	if !almostEqual(agg.AverageScore, 6) {
		t.Fatalf("AverageScore = %v, want 6 (clamp)", agg.AverageScore)
	}
}

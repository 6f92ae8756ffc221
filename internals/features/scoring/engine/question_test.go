package engine

import (
	"math"
	"testing"
)

func TestAggregateQuestionBasicStats(t *testing.T) {
	// 5 jawaban likert-4: 1, 2, 2, 3, 4
	agg := AggregateQuestion([]float64{1, 2, 2, 3, 4}, QuestionTypeLikert4)

	if agg.ResponseCount != 5 {
		t.Fatalf("ResponseCount = %d, want 5", agg.ResponseCount)
	}
	if !almostEqual(agg.Average, 2.4) {
		t.Errorf("Average = %v, want 2.4", agg.Average)
	}
	if !almostEqual(agg.Min, 1) || !almostEqual(agg.Max, 4) {
		t.Errorf("Min/Max = %v/%v, want 1/4", agg.Min, agg.Max)
	}
	if !almostEqual(agg.Median, 2) {
		t.Errorf("Median = %v, want 2", agg.Median)
	}
	if !almostEqual(agg.Mode, 2) {
		t.Errorf("Mode = %v, want 2", agg.Mode)
	}

	// stddev populasi: variance = ((1-2.4)^2+(2-2.4)^2*2+(3-2.4)^2+(4-2.4)^2)/5
	wantVar := (1.96 + 0.16 + 0.16 + 0.36 + 2.56) / 5
	if !almostEqual(agg.StdDev, math.Sqrt(wantVar)) {
		t.Errorf("StdDev = %v, want %v", agg.StdDev, math.Sqrt(wantVar))
	}
}

func TestAggregateQuestionExcludesUnanswered(t *testing.T) {
	// skor 0 = tidak menjawab, harus keluar dari rata-rata dan denominasi
	agg := AggregateQuestion([]float64{4, 0, 2, 0}, QuestionTypeLikert4)

	if agg.ResponseCount != 2 {
		t.Fatalf("ResponseCount = %d, want 2", agg.ResponseCount)
	}
	if !almostEqual(agg.Average, 3) {
		t.Errorf("Average = %v, want 3 (0 tidak dihitung sebagai nilai)", agg.Average)
	}
}

func TestAggregateQuestionEmptySet(t *testing.T) {
	agg := AggregateQuestion(nil, QuestionTypeLikert6)

	if agg.ResponseCount != 0 {
		t.Fatalf("ResponseCount = %d, want 0", agg.ResponseCount)
	}
	if agg.Average != 0 || agg.Min != 0 || agg.Max != 0 || agg.Median != 0 || agg.Mode != 0 || agg.StdDev != 0 {
		t.Errorf("set kosong harus menghasilkan agregat nol: %+v", agg)
	}
	if len(agg.Distribution) != 6 {
		t.Fatalf("Distribution len = %d, want 6", len(agg.Distribution))
	}
	for _, d := range agg.Distribution {
		if d.Count != 0 || d.Percentage != 0 {
			t.Errorf("distribusi set kosong harus 0: %+v", d)
		}
	}
}

func TestAggregateQuestionDistribution(t *testing.T) {
	agg := AggregateQuestion([]float64{6, 6, 5, 3, 1}, QuestionTypeLikert6)

	wantCounts := map[int]int{1: 1, 2: 0, 3: 1, 4: 0, 5: 1, 6: 2}
	for _, d := range agg.Distribution {
		if d.Count != wantCounts[d.Score] {
			t.Errorf("skor %d: count = %d, want %d", d.Score, d.Count, wantCounts[d.Score])
		}
	}

	// persentase distribusi harus berjumlah 100 saat ada respons
	sum := 0.0
	for _, d := range agg.Distribution {
		sum += d.Percentage
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("total persentase = %v, want 100", sum)
	}
}

func TestAggregateQuestionLikert6Normalization(t *testing.T) {
	// skor likert-6 bernilai 6 → ternormalisasi 4.0
	agg := AggregateQuestion([]float64{6}, QuestionTypeLikert6)
	if !almostEqual(agg.Average, 4) {
		t.Errorf("Average = %v, want 4.0", agg.Average)
	}
	// distribusi tetap pada skor mentah
	if agg.Distribution[5].Count != 1 {
		t.Errorf("distribusi skor mentah 6 harus 1, got %d", agg.Distribution[5].Count)
	}
}

func TestAggregateQuestionMedianEvenCount(t *testing.T) {
	agg := AggregateQuestion([]float64{1, 2, 3, 4}, QuestionTypeLikert4)
	if !almostEqual(agg.Median, 2.5) {
		t.Errorf("Median jumlah genap = %v, want 2.5", agg.Median)
	}
}

func TestAggregateQuestionModeTieBreak(t *testing.T) {
	// 2 dan 4 sama-sama dua kali; seri dimenangkan nilai terkecil
	agg := AggregateQuestion([]float64{4, 2, 4, 2, 3}, QuestionTypeLikert4)
	if !almostEqual(agg.Mode, 2) {
		t.Errorf("Mode = %v, want 2 (tie-break nilai terkecil)", agg.Mode)
	}
}

func TestAggregateQuestionNonLikertType(t *testing.T) {
	agg := AggregateQuestion([]float64{1, 2, 3}, QuestionTypeText)
	if agg.ResponseCount != 0 || agg.Average != 0 {
		t.Errorf("tipe non-likert harus dilewati: %+v", agg)
	}
}

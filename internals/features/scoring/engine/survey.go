package engine

import "math"

/* =========================================================
   Agregasi tingkat survei + Indeks Kepuasan Masyarakat (IKM)
========================================================= */

// IndexVariant memilih rumus konversi indeks kepuasan. Dua varian ini memang
// dua rumus berbeda yang sama-sama dipakai; pilihan harus eksplisit per
// pemanggilan, jangan dicampur dalam satu laporan.
type IndexVariant string

const (
	// VariantScale: indeks kontinu, (skor−1)/5×3+1 memetakan 1–6 ke 1–4.
	VariantScale IndexVariant = "scale"
	// VariantIKM: indeks bulat, round(skor×0.75+0.25) di-clamp ke [1,4].
	VariantIKM IndexVariant = "ikm"
)

const (
	CategoryNoData = "Tidak ada data"
)

type SurveyAggregate struct {
	AverageScore      float64 `json:"average_score"`
	SatisfactionIndex float64 `json:"satisfaction_index"`
	// NilaiKonversi = indeks × 25, skala 0–100 untuk tabel mutu pelayanan.
	NilaiKonversi   float64 `json:"nilai_konversi"`
	QualityCategory string  `json:"quality_category"`
	QualityLabel    string  `json:"quality_label"`
}

// AggregateSurvey menggabungkan skor indikator menjadi satu hasil survei.
//
// Mode weighted : averageScore = Σ(score × weight) / Σ(weight).
// Mode unweighted: averageScore = rata-rata aritmetika skor indikator
// (beroperasi pada skor yang sudah teragregasi, bukan jawaban mentah).
func AggregateSurvey(indicators []IndicatorScore, weighted bool, variant IndexVariant) SurveyAggregate {
	agg := SurveyAggregate{QualityCategory: CategoryNoData, QualityLabel: CategoryNoData}
	if len(indicators) == 0 {
		return agg
	}

	avg := 0.0
	if weighted {
		totalWeight := 0
		weightedSum := 0.0
		for _, ind := range indicators {
			weightedSum += ind.Score * float64(ind.Weight)
			totalWeight += ind.Weight
		}
		if totalWeight == 0 {
			return agg
		}
		avg = weightedSum / float64(totalWeight)
	} else {
		sum := 0.0
		for _, ind := range indicators {
			sum += ind.Score
		}
		avg = sum / float64(len(indicators))
	}

	// batas defensif mengikuti plafon skala 6
	avg = clamp(avg, 0, 6)
	agg.AverageScore = avg

	if avg <= 0 {
		return agg
	}

	agg.SatisfactionIndex = SatisfactionIndex(avg, variant)
	agg.NilaiKonversi = agg.SatisfactionIndex * 25
	agg.QualityCategory, agg.QualityLabel = QualityCategory(agg.SatisfactionIndex)
	return agg
}

// SatisfactionIndex mengonversi skor rata-rata ke indeks 1–4 sesuai varian.
func SatisfactionIndex(averageScore float64, variant IndexVariant) float64 {
	switch variant {
	case VariantIKM:
		return ConvertToIKMScale(averageScore)
	default:
		return CalculateIndexScale(averageScore)
	}
}

// CalculateIndexScale (varian A): pemetaan linier 1–6 → 1–4.
func CalculateIndexScale(averageScore float64) float64 {
	return (averageScore-1)/5*3 + 1
}

// ConvertToIKMScale (varian B): nilai IKM bulat, di-clamp ke [1,4].
// Pada skor tepat 6: round(6×0.75+0.25) = 5 → clamp jadi 4.
func ConvertToIKMScale(averageScore float64) float64 {
	return clamp(math.Round(averageScore*0.75+0.25), 1, 4)
}

// IndexPercent untuk kartu indikator: 1–6 → 0–100.
func IndexPercent(score float64) int {
	return int(math.Round((score - 1) / 5 * 100))
}

// QualityCategory mengembalikan kategori mutu A/B/C/D dari indeks skala 1–4.
//
//	1.00–1.75 → D (Tidak Baik)
//	1.76–2.50 → C (Kurang Baik)
//	2.51–3.25 → B (Baik)
//	3.26–4.00 → A (Sangat Baik)
func QualityCategory(index float64) (code string, label string) {
	switch {
	case index <= 0:
		return CategoryNoData, CategoryNoData
	case index <= 1.75:
		return "D", "Tidak Baik"
	case index <= 2.50:
		return "C", "Kurang Baik"
	case index <= 3.25:
		return "B", "Baik"
	default:
		return "A", "Sangat Baik"
	}
}

// QualityCategoryFromKonversi menilai dari Nilai Konversi Indeks skala 0–100.
//
//	25.00–43.75  → D, 43.76–62.50 → C, 62.51–81.25 → B, 81.26–100 → A
func QualityCategoryFromKonversi(konversi float64) (code string, label string) {
	if konversi <= 0 {
		return CategoryNoData, CategoryNoData
	}
	return QualityCategory(konversi / 25)
}

// QualitativeLabel memberi label kualitatif 6 tingkat untuk skor mentah 1–6
// pada kartu indikator/soal (band selebar 1 poin).
func QualitativeLabel(score float64) string {
	switch {
	case score <= 0:
		return CategoryNoData
	case score >= 5.5:
		return "Sangat Memuaskan"
	case score >= 4.5:
		return "Memuaskan"
	case score >= 3.5:
		return "Cukup Memuaskan"
	case score >= 2.5:
		return "Kurang Memuaskan"
	case score >= 1.5:
		return "Tidak Memuaskan"
	default:
		return "Sangat Tidak Memuaskan"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

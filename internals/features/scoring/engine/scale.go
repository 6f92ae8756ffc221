package engine

/* =========================================================
   Tipe soal & skala
========================================================= */

const (
	QuestionTypeLikert4  = "likert-4"
	QuestionTypeLikert6  = "likert-6"
	QuestionTypeText     = "text"
	QuestionTypeDropdown = "dropdown"
	QuestionTypeRadio    = "radio"
	QuestionTypeCheckbox = "checkbox"
	QuestionTypeDate     = "date"
	QuestionTypeNumber   = "number"
)

const (
	SurveyTypeWeighted   = "weighted"
	SurveyTypeUnweighted = "unweighted"
)

const (
	SurveyCategoryCalculate    = "calculate"
	SurveyCategoryNonCalculate = "non_calculate"
)

// Likert6Divisor memproyeksikan skor skala 6 ke rentang skala 4 (6 ÷ 1.5 = 4).
// Ini konstanta pembagi tetap, bukan min-max rescale.
const Likert6Divisor = 1.5

// IsLikert menandai tipe soal yang ikut agregasi numerik.
func IsLikert(questionType string) bool {
	return questionType == QuestionTypeLikert4 || questionType == QuestionTypeLikert6
}

// ScaleMax mengembalikan nilai maksimum skala soal (0 untuk non-likert).
func ScaleMax(questionType string) int {
	switch questionType {
	case QuestionTypeLikert4:
		return 4
	case QuestionTypeLikert6:
		return 6
	default:
		return 0
	}
}

// NormalizeScore memetakan skor mentah ke skala pembanding (skala 4).
// Skor likert-6 dibagi 1.5; likert-4 dikembalikan apa adanya (tidak pernah
// dibagi ulang). Skor 0 / kosong dianggap "tidak menjawab" dan dikeluarkan
// dari semua rata-rata, bukan dihitung sebagai 0.
func NormalizeScore(raw float64, questionType string) (float64, bool) {
	if raw <= 0 {
		return 0, false
	}
	switch questionType {
	case QuestionTypeLikert4:
		return raw, true
	case QuestionTypeLikert6:
		return raw / Likert6Divisor, true
	default:
		// non-likert tidak pernah diagregasi numerik
		return 0, false
	}
}

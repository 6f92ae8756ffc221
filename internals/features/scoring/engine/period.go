package engine

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

/* =========================================================
   Periode survei (triwulan / semester / tahunan)
========================================================= */

const (
	PeriodQuarterly = "quarterly"
	PeriodSemester  = "semester"
	PeriodAnnual    = "annual"
)

// AnnualCode dipakai sebagai kode periode tahunan pada kunci "{code}-{year}".
const AnnualCode = "TAHUN"

type SurveyPeriod struct {
	Type string `json:"type"`
	Year int    `json:"year"`
	// Value adalah kode pendek yang tersimpan di database ("Q3", "S1", ...).
	// Bila terisi, Value selalu otoritatif; Quarter/Semester hanya turunan
	// legacy dan tidak boleh dirawat terpisah.
	Value    string `json:"value"`
	Quarter  string `json:"quarter,omitempty"`
	Semester string `json:"semester,omitempty"`
}

type ResolvedPeriod struct {
	// Number: nomor triwulan (1–4) atau semester (1–2); 0 untuk tahunan.
	Number          int    `json:"number"`
	CanonicalValue  string `json:"canonical_value"`
	DisplayLabel    string `json:"display_label"`
	MonthRangeLabel string `json:"month_range_label"`
}

var quarterMonthRanges = map[int]string{
	1: "Januari-Maret",
	2: "April-Juni",
	3: "Juli-September",
	4: "Oktober-Desember",
}

var semesterMonthRanges = map[int]string{
	1: "Januari-Juni",
	2: "Juli-Desember",
}

// ResolvePeriod menurunkan nilai kanonik + label tampilan dari periode survei.
// Kode yang tidak valid tidak pernah bikin error: fallback ke 1 dengan warning
// di log, supaya laporan tetap bisa tampil.
func ResolvePeriod(p SurveyPeriod) ResolvedPeriod {
	switch p.Type {
	case PeriodSemester:
		n := resolveNumber(p.Value, "S", p.Semester, 2)
		return ResolvedPeriod{
			Number:          n,
			CanonicalValue:  fmt.Sprintf("S%d", n),
			DisplayLabel:    fmt.Sprintf("Semester %d %d", n, p.Year),
			MonthRangeLabel: semesterMonthRanges[n],
		}
	case PeriodAnnual:
		return ResolvedPeriod{
			CanonicalValue: AnnualCode,
			DisplayLabel:   fmt.Sprintf("Tahun %d", p.Year),
		}
	default: // quarterly
		n := resolveNumber(p.Value, "Q", p.Quarter, 4)
		return ResolvedPeriod{
			Number:          n,
			CanonicalValue:  fmt.Sprintf("Q%d", n),
			DisplayLabel:    fmt.Sprintf("Triwulan %d %d", n, p.Year),
			MonthRangeLabel: quarterMonthRanges[n],
		}
	}
}

// resolveNumber mengambil digit dari kode pendek ("Q3" → 3) dengan validasi
// 1..max. Bila Value kosong, jatuh ke kolom legacy (quarter/semester);
// terakhir default 1.
func resolveNumber(value, prefix, legacy string, max int) int {
	if v := strings.TrimSpace(value); v != "" {
		if n, ok := extractDigit(v, prefix, max); ok {
			return n
		}
		log.Printf("[WARN] Kode periode %q tidak valid, fallback ke %s1", value, prefix)
		return 1
	}
	if l := strings.TrimSpace(legacy); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n >= 1 && n <= max {
			return n
		}
		log.Printf("[WARN] Nilai periode legacy %q tidak valid, fallback ke 1", legacy)
	}
	return 1
}

func extractDigit(value, prefix string, max int) (int, bool) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(v, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(v, prefix))
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// Key membangun kunci periode kanonik "{code}-{year}" yang disimpan pada
// kolom periode_survei setiap respons (mis. "Q3-2025", "S1-2025", "TAHUN-2025").
func (p SurveyPeriod) Key() string {
	resolved := ResolvePeriod(p)
	return fmt.Sprintf("%s-%d", resolved.CanonicalValue, p.Year)
}

// ParsePeriodKey membongkar kunci periode kembali ke SurveyPeriod.
// Round-trip dengan Key(): type, nomor, dan tahun harus kembali sama.
func ParsePeriodKey(key string) (SurveyPeriod, error) {
	parts := strings.SplitN(strings.TrimSpace(key), "-", 2)
	if len(parts) != 2 {
		return SurveyPeriod{}, fmt.Errorf("kunci periode %q tidak valid", key)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return SurveyPeriod{}, fmt.Errorf("tahun pada kunci periode %q tidak valid", key)
	}

	code := strings.ToUpper(parts[0])
	switch {
	case code == AnnualCode:
		return SurveyPeriod{Type: PeriodAnnual, Year: year}, nil
	case strings.HasPrefix(code, "Q"):
		if _, ok := extractDigit(code, "Q", 4); !ok {
			return SurveyPeriod{}, fmt.Errorf("kode triwulan %q tidak valid", code)
		}
		return SurveyPeriod{Type: PeriodQuarterly, Year: year, Value: code}, nil
	case strings.HasPrefix(code, "S"):
		if _, ok := extractDigit(code, "S", 2); !ok {
			return SurveyPeriod{}, fmt.Errorf("kode semester %q tidak valid", code)
		}
		return SurveyPeriod{Type: PeriodSemester, Year: year, Value: code}, nil
	default:
		return SurveyPeriod{}, fmt.Errorf("kode periode %q tidak dikenal", code)
	}
}

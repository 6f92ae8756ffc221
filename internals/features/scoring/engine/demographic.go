package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

/* =========================================================
   Rekap demografi responden
========================================================= */

type DemographicBucket struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DemographicBreakdown struct {
	FieldID      string              `json:"field_id"`
	Label        string              `json:"label"`
	Total        int                 `json:"total"`
	Distribution []DemographicBucket `json:"distribution"`
}

// Breakdown mengelompokkan jawaban demografi berdasarkan representasi
// string literalnya. Jawaban multi-pilih (checkbox) TIDAK dipecah per opsi:
// seluruh array dihitung sebagai satu nilai komposit. Urutan tampil:
// count menurun; seri mempertahankan urutan kemunculan.
func Breakdown(fieldID, label string, values []any) DemographicBreakdown {
	out := DemographicBreakdown{
		FieldID:      fieldID,
		Label:        label,
		Distribution: []DemographicBucket{},
	}

	counts := map[string]int{}
	order := []string{}
	for _, v := range values {
		name := stringifyValue(v)
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
		out.Total++
	}

	for _, name := range order {
		out.Distribution = append(out.Distribution, DemographicBucket{
			Name:  name,
			Count: counts[name],
		})
	}

	// sort stabil: seri tetap di urutan kemunculan
	sort.SliceStable(out.Distribution, func(i, j int) bool {
		return out.Distribution[i].Count > out.Distribution[j].Count
	})

	if out.Total > 0 {
		for i := range out.Distribution {
			out.Distribution[i].Percentage = float64(out.Distribution[i].Count) / float64(out.Total) * 100
		}
	}
	return out
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

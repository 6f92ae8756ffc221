package engine

import "testing"

func TestBreakdownCountsAndPercentages(t *testing.T) {
	values := []any{"Laki-laki", "Perempuan", "Laki-laki", "Laki-laki", "Perempuan"}
	got := Breakdown("gender", "Jenis Kelamin", values)

	if got.Total != 5 {
		t.Fatalf("Total = %d, want 5", got.Total)
	}
	if len(got.Distribution) != 2 {
		t.Fatalf("Distribution len = %d, want 2", len(got.Distribution))
	}
	if got.Distribution[0].Name != "Laki-laki" || got.Distribution[0].Count != 3 {
		t.Errorf("bucket pertama harus terbanyak: %+v", got.Distribution[0])
	}
	if !almostEqual(got.Distribution[0].Percentage, 60) {
		t.Errorf("Percentage = %v, want 60", got.Distribution[0].Percentage)
	}
	if !almostEqual(got.Distribution[1].Percentage, 40) {
		t.Errorf("Percentage = %v, want 40", got.Distribution[1].Percentage)
	}
}

func TestBreakdownStableTies(t *testing.T) {
	// seri count: urutan kemunculan pertama yang menang
	values := []any{"SMA", "S1", "SMA", "S1", "SMP"}
	got := Breakdown("pendidikan", "Pendidikan Terakhir", values)

	wantOrder := []string{"SMA", "S1", "SMP"}
	for i, name := range wantOrder {
		if got.Distribution[i].Name != name {
			t.Errorf("Distribution[%d] = %q, want %q", i, got.Distribution[i].Name, name)
		}
	}
}

func TestBreakdownCompositeArrays(t *testing.T) {
	// jawaban checkbox dihitung sebagai satu nilai komposit, tidak dipecah
	values := []any{
		[]any{"KTP", "KK"},
		[]any{"KTP", "KK"},
		[]any{"KTP"},
	}
	got := Breakdown("layanan", "Jenis Layanan", values)

	if got.Total != 3 {
		t.Fatalf("Total = %d, want 3", got.Total)
	}
	if got.Distribution[0].Name != "KTP,KK" || got.Distribution[0].Count != 2 {
		t.Errorf("nilai komposit: %+v", got.Distribution[0])
	}
	if got.Distribution[1].Name != "KTP" || got.Distribution[1].Count != 1 {
		t.Errorf("nilai tunggal: %+v", got.Distribution[1])
	}
}

func TestBreakdownMixedTypes(t *testing.T) {
	values := []any{float64(25), 25, "25", true}
	got := Breakdown("usia", "Usia", values)

	if got.Total != 4 {
		t.Fatalf("Total = %d, want 4", got.Total)
	}
	// float64(25), int 25, dan "25" jatuh ke bucket yang sama
	if got.Distribution[0].Name != "25" || got.Distribution[0].Count != 3 {
		t.Errorf("normalisasi angka ke string: %+v", got.Distribution[0])
	}
}

func TestBreakdownSkipsEmptyValues(t *testing.T) {
	values := []any{"Perempuan", nil, "", "  ", "Perempuan"}
	got := Breakdown("gender", "Jenis Kelamin", values)

	if got.Total != 2 {
		t.Errorf("Total = %d, want 2 (nil/kosong dilewati)", got.Total)
	}
	if len(got.Distribution) != 1 {
		t.Errorf("Distribution len = %d, want 1", len(got.Distribution))
	}
}

func TestBreakdownEmptyInput(t *testing.T) {
	got := Breakdown("gender", "Jenis Kelamin", nil)

	if got.Total != 0 {
		t.Errorf("Total = %d, want 0", got.Total)
	}
	if got.Distribution == nil || len(got.Distribution) != 0 {
		t.Errorf("Distribution harus slice kosong, bukan nil: %#v", got.Distribution)
	}
}

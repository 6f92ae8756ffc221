package fillout

import "testing"

func TestHappyPath(t *testing.T) {
	s := NewState(2)
	if s.Step != StepDemographics {
		t.Fatalf("langkah awal = %s, want %s", s.Step, StepDemographics)
	}

	s, err := s.CompleteDemographics(true)
	if err != nil {
		t.Fatalf("CompleteDemographics: %v", err)
	}
	if s.Step != StepQuestions || s.QuestionIndex != 0 {
		t.Fatalf("setelah demografi: %+v", s)
	}

	s, err = s.Next()
	if err != nil || s.QuestionIndex != 1 {
		t.Fatalf("Next soal 1: %+v, err %v", s, err)
	}

	s, err = s.Next()
	if err != nil || s.Step != StepReview {
		t.Fatalf("soal terakhir harus ke review: %+v, err %v", s, err)
	}

	s, err = s.Submit(true)
	if err != nil || s.Step != StepSubmitted {
		t.Fatalf("Submit: %+v, err %v", s, err)
	}
	if !s.IsTerminal() {
		t.Error("SUBMITTED harus terminal")
	}
}

func TestDemographicsGuard(t *testing.T) {
	s := NewState(1)
	if _, err := s.CompleteDemographics(false); err == nil {
		t.Error("demografi wajib kosong harus ditolak")
	}

	// tidak bisa melompati langkah
	if _, err := s.Submit(true); err == nil {
		t.Error("submit dari DEMOGRAPHICS harus ditolak")
	}
	if _, err := s.Next(); err == nil {
		t.Error("Next dari DEMOGRAPHICS harus ditolak")
	}
}

func TestBackNavigation(t *testing.T) {
	s := NewState(3)
	s, _ = s.CompleteDemographics(true)
	s, _ = s.Next()

	s, err := s.Back()
	if err != nil || s.QuestionIndex != 0 {
		t.Fatalf("Back ke soal 0: %+v, err %v", s, err)
	}

	// dari soal pertama kembali ke demografi
	s, err = s.Back()
	if err != nil || s.Step != StepDemographics {
		t.Fatalf("Back ke demografi: %+v, err %v", s, err)
	}
}

func TestBackFromReview(t *testing.T) {
	s := NewState(2)
	s, _ = s.CompleteDemographics(true)
	s, _ = s.Next()
	s, _ = s.Next() // → REVIEW

	s, err := s.Back()
	if err != nil || s.Step != StepQuestions || s.QuestionIndex != 1 {
		t.Fatalf("Back dari review ke soal terakhir: %+v, err %v", s, err)
	}
}

func TestSubmitGuards(t *testing.T) {
	s := NewState(1)
	s, _ = s.CompleteDemographics(true)
	s, _ = s.Next() // → REVIEW

	if _, err := s.Submit(false); err == nil {
		t.Error("soal wajib belum terjawab harus ditolak")
	}

	s, _ = s.Submit(true)

	// terminal: tidak ada transisi lagi
	if _, err := s.Back(); err == nil {
		t.Error("Back setelah submit harus ditolak")
	}
	if _, err := s.Submit(true); err == nil {
		t.Error("submit ulang harus ditolak")
	}
}

// Package fillout memodelkan alur pengisian survei sebagai state machine
// murni: DEMOGRAPHICS → QUESTIONS → REVIEW → SUBMITTED. Alur langkahnya
// sendiri berjalan di sisi klien; paket ini merumuskan transisi dan guard
// yang sama supaya syarat submit (demografi wajib terisi, soal wajib
// terjawab, SUBMITTED terminal) punya satu definisi yang bisa diuji. Paket
// ini tidak menyentuh database dan tidak diketahui oleh mesin skoring.
package fillout

import "fmt"

type Step string

const (
	StepDemographics Step = "DEMOGRAPHICS"
	StepQuestions    Step = "QUESTIONS"
	StepReview       Step = "REVIEW"
	StepSubmitted    Step = "SUBMITTED"
)

// State merekam posisi pengisi di dalam alur. QuestionIndex hanya bermakna
// pada langkah QUESTIONS (0-based).
type State struct {
	Step          Step
	QuestionIndex int
	TotalQuestion int
}

// NewState memulai alur dari langkah demografi.
func NewState(totalQuestion int) State {
	return State{Step: StepDemographics, TotalQuestion: totalQuestion}
}

// CompleteDemographics maju ke langkah soal. requiredFilled harus sudah
// diverifikasi pemanggil (semua kolom demografi wajib terisi).
func (s State) CompleteDemographics(requiredFilled bool) (State, error) {
	if s.Step != StepDemographics {
		return s, fmt.Errorf("tidak bisa menyelesaikan demografi dari langkah %s", s.Step)
	}
	if !requiredFilled {
		return s, fmt.Errorf("kolom demografi wajib belum lengkap")
	}
	s.Step = StepQuestions
	s.QuestionIndex = 0
	return s, nil
}

// Next maju satu soal; di soal terakhir pindah ke langkah review.
func (s State) Next() (State, error) {
	if s.Step != StepQuestions {
		return s, fmt.Errorf("tidak bisa maju soal dari langkah %s", s.Step)
	}
	if s.QuestionIndex+1 >= s.TotalQuestion {
		s.Step = StepReview
		return s, nil
	}
	s.QuestionIndex++
	return s, nil
}

// Back mundur satu soal; di soal pertama kembali ke langkah demografi.
func (s State) Back() (State, error) {
	switch s.Step {
	case StepQuestions:
		if s.QuestionIndex == 0 {
			s.Step = StepDemographics
			return s, nil
		}
		s.QuestionIndex--
		return s, nil
	case StepReview:
		s.Step = StepQuestions
		if s.TotalQuestion > 0 {
			s.QuestionIndex = s.TotalQuestion - 1
		}
		return s, nil
	default:
		return s, fmt.Errorf("tidak bisa mundur dari langkah %s", s.Step)
	}
}

// Submit mengunci pengisian. requiredAnswered harus sudah diverifikasi
// pemanggil (semua soal wajib terjawab). SUBMITTED bersifat terminal.
func (s State) Submit(requiredAnswered bool) (State, error) {
	if s.Step != StepReview {
		return s, fmt.Errorf("submit hanya bisa dari langkah %s", StepReview)
	}
	if !requiredAnswered {
		return s, fmt.Errorf("masih ada soal wajib yang belum terjawab")
	}
	s.Step = StepSubmitted
	return s, nil
}

// IsTerminal: setelah SUBMITTED tidak ada transisi apa pun.
func (s State) IsTerminal() bool {
	return s.Step == StepSubmitted
}

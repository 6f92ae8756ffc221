package controller

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"surveyku_backend/internals/features/scoring/engine"
	"surveyku_backend/internals/features/surveys/respondent/dto"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
)

var (
	qWajibID    = uuid.MustParse("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	qOpsionalID = uuid.MustParse("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")
	fWajibID    = uuid.MustParse("cccccccc-cccc-4ccc-8ccc-cccccccccccc")
)

func surveyFixture() *surveyModel.SurveyModel {
	return &surveyModel.SurveyModel{
		SurveyID:    uuid.MustParse("dddddddd-dddd-4ddd-8ddd-dddddddddddd"),
		SurveyTitle: "Survei Kepuasan Layanan",
		SurveyIndicators: []surveyModel.IndicatorModel{
			{
				IndicatorTitle: "Kecepatan Pelayanan",
				IndicatorQuestions: []surveyModel.QuestionModel{
					{
						QuestionID:       qWajibID,
						QuestionText:     "Kecepatan proses",
						QuestionType:     engine.QuestionTypeLikert6,
						QuestionRequired: true,
					},
					{
						QuestionID:   qOpsionalID,
						QuestionText: "Kemudahan akses",
						QuestionType: engine.QuestionTypeLikert6,
					},
				},
			},
		},
		SurveyDemographicFields: []surveyModel.DemographicFieldModel{
			{
				DemographicFieldID:       fWajibID,
				DemographicFieldLabel:    "Jenis Kelamin",
				DemographicFieldType:     engine.QuestionTypeRadio,
				DemographicFieldRequired: true,
			},
		},
	}
}

func requestWith(answers []dto.SubmitAnswerRequest) *dto.SubmitResponseRequest {
	return &dto.SubmitResponseRequest{
		Answers: answers,
		Demographics: []dto.SubmitDemographicRequest{
			{FieldID: fWajibID.String(), Value: "Perempuan"},
		},
	}
}

func TestValidateSubmissionAccepts(t *testing.T) {
	req := requestWith([]dto.SubmitAnswerRequest{
		{QuestionID: qWajibID.String(), Score: 5},
		{QuestionID: qOpsionalID.String(), Score: 4},
	})
	if msg := validateSubmission(surveyFixture(), req); msg != "" {
		t.Fatalf("submit valid ditolak: %s", msg)
	}
}

// Jawaban yang merujuk soal di luar survei harus ditolak, bukan diam-diam
// disimpan sebagai baris sampah.
func TestValidateSubmissionRejectsUnknownQuestion(t *testing.T) {
	asing := uuid.MustParse("eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee")
	req := requestWith([]dto.SubmitAnswerRequest{
		{QuestionID: qWajibID.String(), Score: 5},
		{QuestionID: asing.String(), Score: 3},
	})

	msg := validateSubmission(surveyFixture(), req)
	if msg == "" {
		t.Fatal("soal asing harus ditolak")
	}
	if !strings.Contains(msg, "tidak dikenali") {
		t.Errorf("pesan = %q", msg)
	}
}

// Skor 0 berarti tidak menjawab: sah untuk soal opsional, ditolak untuk
// soal wajib.
func TestValidateSubmissionScoreZeroAsUnanswered(t *testing.T) {
	opsional := requestWith([]dto.SubmitAnswerRequest{
		{QuestionID: qWajibID.String(), Score: 5},
		{QuestionID: qOpsionalID.String(), Score: 0},
	})
	if msg := validateSubmission(surveyFixture(), opsional); msg != "" {
		t.Errorf("skor 0 pada soal opsional ditolak: %s", msg)
	}

	wajib := requestWith([]dto.SubmitAnswerRequest{
		{QuestionID: qWajibID.String(), Score: 0},
	})
	if msg := validateSubmission(surveyFixture(), wajib); msg == "" {
		t.Error("skor 0 pada soal wajib harus ditolak")
	}
}

func TestValidateSubmissionScoreRange(t *testing.T) {
	req := requestWith([]dto.SubmitAnswerRequest{
		{QuestionID: qWajibID.String(), Score: 7},
	})
	if msg := validateSubmission(surveyFixture(), req); msg == "" {
		t.Error("skor di atas plafon likert-6 harus ditolak")
	}
}

func TestValidateSubmissionRequiredGuards(t *testing.T) {
	// soal wajib tidak ada di jawaban
	tanpaWajib := requestWith([]dto.SubmitAnswerRequest{
		{QuestionID: qOpsionalID.String(), Score: 4},
	})
	if msg := validateSubmission(surveyFixture(), tanpaWajib); msg == "" {
		t.Error("soal wajib yang hilang harus ditolak")
	}

	// kolom demografi wajib kosong
	tanpaDemografi := &dto.SubmitResponseRequest{
		Answers: []dto.SubmitAnswerRequest{
			{QuestionID: qWajibID.String(), Score: 5},
		},
	}
	if msg := validateSubmission(surveyFixture(), tanpaDemografi); msg == "" {
		t.Error("kolom demografi wajib yang kosong harus ditolak")
	}
}

package workbook

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/model"
	"clinical-trial-system/tools"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func uintPtr(v uint) *uint { return &v }

func TestFilename(t *testing.T) {
	day := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "Bayer_CTMS_GlobalReport_2026-10-18.xlsx", Filename("Bayer_CTMS", day))
	require.Equal(t, Filename("CTMS", day), Filename("CTMS", day.Add(-time.Hour)))
	require.NotEqual(t, Filename("CTMS", day), Filename("CTMS", day.Add(time.Hour)))
}

func TestBuildEmptySnapshot(t *testing.T) {
	f, err := Build(&dto.Snapshot{})
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, Sheets, f.GetSheetList())

	rows, err := f.GetRows(SheetTrials)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"id", "name", "description", "status", "start_date", "end_date", "created_at"}, rows[0])
	require.Equal(t, tools.ExcelHeaders(reflect.TypeOf(model.Trial{})), rows[0])

	rows, err = f.GetRows(SheetParticipants)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"id", "participant_name", "trial_id", "enrollment_date", "status", "created_at", "trial_name"}, rows[0])
	require.Equal(t, tools.ExcelHeaders(reflect.TypeOf(dto.ParticipantRow{})), rows[0])

	rows, err = f.GetRows(SheetActivities)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"id", "participant_id", "activity_type", "activity_date", "notes", "participant_name", "trial_name"}, rows[0])
	require.Equal(t, tools.ExcelHeaders(reflect.TypeOf(dto.ActivityRow{})), rows[0])
}

func TestBytesRoundTrip(t *testing.T) {
	created := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	s := &dto.Snapshot{
		Trials: []model.Trial{
			{ID: 1, Name: "Vaccine Phase 3", Status: model.TrialActive, StartDate: model.NewDate(2025, 1, 1), CreatedAt: created},
			{ID: 2, Name: "Eye Care Beta", Status: model.TrialCompleted, CreatedAt: created},
		},
		Participants: []dto.ParticipantRow{
			{Participant: model.Participant{ID: 7, ParticipantName: "John Doe", TrialID: uintPtr(1), Status: model.ParticipantEnrolled}, TrialName: "Vaccine Phase 3"},
		},
		Activities: []dto.ActivityRow{
			{Activity: model.Activity{ID: 3, ParticipantID: uintPtr(7), ActivityType: "Initial Screening"}, ParticipantName: "John Doe", TrialName: "Vaccine Phase 3"},
		},
	}

	data, err := Bytes(s)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, Sheets, f.GetSheetList())

	rows, err := f.GetRows(SheetTrials)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Vaccine Phase 3", rows[1][1])
	require.Equal(t, "active", rows[1][3])
	require.Equal(t, "2025-01-01", rows[1][4])

	rows, err = f.GetRows(SheetParticipants)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "John Doe", rows[1][1])
	require.Equal(t, "1", rows[1][2])
	require.Equal(t, "Vaccine Phase 3", rows[1][6])

	rows, err = f.GetRows(SheetActivities)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Initial Screening", rows[1][2])
	require.Equal(t, "John Doe", rows[1][5])
}

func TestBuildNilSnapshot(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
}

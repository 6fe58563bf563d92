package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}{Start: NewDate(2025, time.January, 1)})
	require.NoError(t, err)
	require.JSONEq(t, `{"start":"2025-01-01","end":null}`, string(b))

	var in struct {
		Start Date `json:"start"`
		Full  Date `json:"full"`
		Empty Date `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2025-06-01","full":"2024-12-31T00:00:00.000Z","empty":""}`), &in))
	require.Equal(t, "2025-06-01", in.Start.String())
	require.Equal(t, "2024-12-31", in.Full.String())
	require.True(t, in.Empty.IsZero())

	require.Error(t, json.Unmarshal([]byte(`{"start":"June"}`), &in))
}

func TestDateScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 1, 15, 13, 0, 0, 0, time.Local)))
	require.Equal(t, "2025-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2025-02-01")))
	v, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, "2025-02-01", v)

	require.NoError(t, d.Scan(nil))
	v, err = d.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	require.Error(t, d.Scan(42))
}

func TestStatusAndRole(t *testing.T) {
	require.True(t, TrialCompleted.Valid())
	require.False(t, TrialStatus("archived").Valid())
	require.True(t, ParticipantWithdrawn.Valid())
	require.False(t, ParticipantStatus("").Valid())
	require.Greater(t, RoleAdmin.Level(), RoleInvestigator.Level())
	require.Greater(t, RoleInvestigator.Level(), RoleParticipant.Level())
	require.Equal(t, -1, Role("root").Level())
}

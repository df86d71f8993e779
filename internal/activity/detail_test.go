package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyDetailTotalOverKinds(t *testing.T) {
	for _, k := range Kinds() {
		d, err := EmptyDetail(k)
		require.NoError(t, err, "kind %s", k)
		require.NotNil(t, d, "kind %s", k)
		require.True(t, Matches(k, d), "kind %s", k)
	}
}

func TestEmptyDetailRejectsUnknownKind(t *testing.T) {
	_, err := EmptyDetail(Kind("diaper"))
	require.Error(t, err)
}

func TestMatchesRejectsCrossKind(t *testing.T) {
	require.False(t, Matches(KindFood, NapDetail{}))
	require.False(t, Matches(KindPhoto, MealDetail{}))
	require.True(t, Matches(KindVideo, MediaDetail{}))
	require.True(t, Matches(KindObservation, NoteDetail{}))
}

func TestEncodeDetailBagShapes(t *testing.T) {
	raw, err := EncodeDetail(MealDetail{
		Type:     MealLunch,
		Foods:    StringList{"rice", "beans"},
		Finished: FinishedMost,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"meal":{"type":"lunch","foods":["rice","beans"],"finished":"most"}}`, string(raw))

	raw, err = EncodeDetail(MediaDetail{Caption: "first steps"})
	require.NoError(t, err)
	require.JSONEq(t, `{"caption":"first steps"}`, string(raw))

	raw, err = EncodeDetail(NoteDetail{Notes: "slept well"})
	require.NoError(t, err)
	require.JSONEq(t, `{"notes":"slept well"}`, string(raw))

	raw, err = EncodeDetail(PottyDetail{Type: PottyWet, Success: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"potty":{"type":"wet","success":true}}`, string(raw))
}

func TestDetailRoundTripAllKinds(t *testing.T) {
	temp := 99.4
	cases := map[Kind]Detail{
		KindPhoto:       MediaDetail{Caption: "park"},
		KindVideo:       MediaDetail{},
		KindFood:        MealDetail{Type: MealSnack, Foods: StringList{"crackers"}, Finished: FinishedAll},
		KindNap:         NapDetail{StartTime: "12:30", EndTime: "14:00", Quality: NapGood},
		KindPotty:       PottyDetail{Type: PottyDry, Success: false},
		KindMedication:  MedicationDetail{Name: "amoxicillin", Dosage: "5ml", GivenBy: "Dana"},
		KindIncident:    IncidentDetail{Type: IncidentInjury, Severity: SeverityLow, ActionTaken: "ice pack"},
		KindHealthCheck: HealthCheckDetail{Temperature: &temp, Symptoms: StringList{"cough"}, Notes: "monitor"},
		KindNote:        NoteDetail{Notes: "asked about the rash"},
		KindObservation: NoteDetail{Notes: "stacked six blocks"},
	}
	for k, d := range cases {
		raw, err := EncodeDetail(d)
		require.NoError(t, err, "kind %s", k)
		back, err := DecodeDetail(k, raw)
		require.NoError(t, err, "kind %s", k)
		require.Equal(t, d, back, "kind %s", k)
	}
}

func TestDecodeDetailAbsentKeysGiveEmptyShape(t *testing.T) {
	for _, k := range Kinds() {
		d, err := DecodeDetail(k, []byte(`{}`))
		require.NoError(t, err, "kind %s", k)
		empty, err := EmptyDetail(k)
		require.NoError(t, err)
		require.Equal(t, empty, d, "kind %s", k)
	}
}

func TestCaptionExtraction(t *testing.T) {
	require.Equal(t, "park day", Caption([]byte(`{"caption":"park day"}`)))
	require.Equal(t, "", Caption([]byte(`{"meal":{"type":"lunch"}}`)))
	require.Equal(t, "", Caption([]byte(`not json`)))
}

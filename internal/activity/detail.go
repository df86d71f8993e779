package activity

import (
	"encoding/json"
	"fmt"
)

// Detail is the per-kind payload of a record. The set of implementations is
// sealed inside this package; every Kind maps to exactly one variant (photo
// and video share MediaDetail, note and observation share NoteDetail).
type Detail interface {
	isDetail()
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

type MealFinished string

const (
	FinishedAll  MealFinished = "all"
	FinishedMost MealFinished = "most"
	FinishedSome MealFinished = "some"
	FinishedNone MealFinished = "none"
)

type NapQuality string

const (
	NapGood NapQuality = "good"
	NapFair NapQuality = "fair"
	NapPoor NapQuality = "poor"
)

type PottyType string

const (
	PottyWet  PottyType = "wet"
	PottyBM   PottyType = "bm"
	PottyBoth PottyType = "both"
	PottyDry  PottyType = "dry"
)

type IncidentType string

const (
	IncidentInjury   IncidentType = "injury"
	IncidentBehavior IncidentType = "behavior"
	IncidentIllness  IncidentType = "illness"
	IncidentOther    IncidentType = "other"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MediaDetail backs photo and video records.
type MediaDetail struct {
	Caption string `json:"caption,omitempty"`
}

type MealDetail struct {
	Type     MealType     `json:"type,omitempty"`
	Foods    StringList   `json:"foods,omitempty"`
	Portions string       `json:"portions,omitempty"`
	Finished MealFinished `json:"finished,omitempty"`
}

type NapDetail struct {
	StartTime string     `json:"startTime,omitempty"`
	EndTime   string     `json:"endTime,omitempty"`
	Quality   NapQuality `json:"quality,omitempty"`
}

type PottyDetail struct {
	Type    PottyType `json:"type,omitempty"`
	Success bool      `json:"success"`
}

type MedicationDetail struct {
	Name    string `json:"name,omitempty"`
	Dosage  string `json:"dosage,omitempty"`
	GivenBy string `json:"givenBy,omitempty"`
}

type IncidentDetail struct {
	Type        IncidentType `json:"type,omitempty"`
	Severity    Severity     `json:"severity,omitempty"`
	ActionTaken string       `json:"actionTaken,omitempty"`
	Witnesses   []string     `json:"witnesses,omitempty"`
}

// HealthCheckDetail keeps Temperature as a pointer: an unparseable reading
// is stored as absent rather than rejected.
type HealthCheckDetail struct {
	Temperature *float64   `json:"temperature,omitempty"`
	Symptoms    StringList `json:"symptoms,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Action      string     `json:"action,omitempty"`
}

// NoteDetail backs note and observation records; its text doubles as the
// envelope notes field.
type NoteDetail struct {
	Notes string `json:"notes,omitempty"`
}

func (MediaDetail) isDetail()       {}
func (MealDetail) isDetail()        {}
func (NapDetail) isDetail()         {}
func (PottyDetail) isDetail()       {}
func (MedicationDetail) isDetail()  {}
func (IncidentDetail) isDetail()    {}
func (HealthCheckDetail) isDetail() {}
func (NoteDetail) isDetail()        {}

// EmptyDetail returns the zero detail for a kind. It is total over valid
// kinds; an invalid kind is a programming error.
func EmptyDetail(k Kind) (Detail, error) {
	switch k {
	case KindPhoto, KindVideo:
		return MediaDetail{}, nil
	case KindFood:
		return MealDetail{}, nil
	case KindNap:
		return NapDetail{}, nil
	case KindPotty:
		return PottyDetail{}, nil
	case KindMedication:
		return MedicationDetail{}, nil
	case KindIncident:
		return IncidentDetail{}, nil
	case KindHealthCheck:
		return HealthCheckDetail{}, nil
	case KindNote, KindObservation:
		return NoteDetail{}, nil
	}
	return nil, fmt.Errorf("unknown activity kind %q", k)
}

// Matches reports whether d is the variant that kind k requires.
func Matches(k Kind, d Detail) bool {
	switch d.(type) {
	case MediaDetail:
		return k == KindPhoto || k == KindVideo
	case MealDetail:
		return k == KindFood
	case NapDetail:
		return k == KindNap
	case PottyDetail:
		return k == KindPotty
	case MedicationDetail:
		return k == KindMedication
	case IncidentDetail:
		return k == KindIncident
	case HealthCheckDetail:
		return k == KindHealthCheck
	case NoteDetail:
		return k == KindNote || k == KindObservation
	}
	return false
}

// The stored details column is a single keyed bag so rows stay readable as
// the original dashboard wrote them: {"meal":{...}}, {"nap":{...}},
// {"caption":"..."} for media and {"notes":"..."} for free text.

type detailBag struct {
	Caption     *string            `json:"caption,omitempty"`
	Meal        *MealDetail        `json:"meal,omitempty"`
	Nap         *NapDetail         `json:"nap,omitempty"`
	Potty       *PottyDetail       `json:"potty,omitempty"`
	Medication  *MedicationDetail  `json:"medication,omitempty"`
	Incident    *IncidentDetail    `json:"incident,omitempty"`
	HealthCheck *HealthCheckDetail `json:"healthCheck,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// EncodeDetail serializes a detail into the stored bag layout.
func EncodeDetail(d Detail) (json.RawMessage, error) {
	var bag detailBag
	switch v := d.(type) {
	case MediaDetail:
		if v.Caption != "" {
			bag.Caption = &v.Caption
		}
	case MealDetail:
		bag.Meal = &v
	case NapDetail:
		bag.Nap = &v
	case PottyDetail:
		bag.Potty = &v
	case MedicationDetail:
		bag.Medication = &v
	case IncidentDetail:
		bag.Incident = &v
	case HealthCheckDetail:
		bag.HealthCheck = &v
	case NoteDetail:
		if v.Notes != "" {
			bag.Notes = &v.Notes
		}
	default:
		return nil, fmt.Errorf("unknown detail variant %T", d)
	}
	return json.Marshal(bag)
}

// DecodeDetail parses a stored bag back into the variant selected by kind.
// Absent keys decode to the kind's empty shape.
func DecodeDetail(k Kind, raw json.RawMessage) (Detail, error) {
	var bag detailBag
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &bag); err != nil {
			return nil, err
		}
	}
	switch k {
	case KindPhoto, KindVideo:
		d := MediaDetail{}
		if bag.Caption != nil {
			d.Caption = *bag.Caption
		}
		return d, nil
	case KindFood:
		if bag.Meal != nil {
			return *bag.Meal, nil
		}
		return MealDetail{}, nil
	case KindNap:
		if bag.Nap != nil {
			return *bag.Nap, nil
		}
		return NapDetail{}, nil
	case KindPotty:
		if bag.Potty != nil {
			return *bag.Potty, nil
		}
		return PottyDetail{}, nil
	case KindMedication:
		if bag.Medication != nil {
			return *bag.Medication, nil
		}
		return MedicationDetail{}, nil
	case KindIncident:
		if bag.Incident != nil {
			return *bag.Incident, nil
		}
		return IncidentDetail{}, nil
	case KindHealthCheck:
		if bag.HealthCheck != nil {
			return *bag.HealthCheck, nil
		}
		return HealthCheckDetail{}, nil
	case KindNote, KindObservation:
		d := NoteDetail{}
		if bag.Notes != nil {
			d.Notes = *bag.Notes
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown activity kind %q", k)
}

// Caption extracts the caption field from a stored bag, if any. List search
// matches against it alongside the envelope notes.
func Caption(raw json.RawMessage) string {
	var bag detailBag
	if err := json.Unmarshal(raw, &bag); err != nil || bag.Caption == nil {
		return ""
	}
	return *bag.Caption
}

package activity

// Kind discriminates which detail shape an activity record carries. The set
// is closed: adding a kind means adding a Detail variant and a case in
// EmptyDetail/decodeDetail.
type Kind string

const (
	KindPhoto       Kind = "photo"
	KindVideo       Kind = "video"
	KindFood        Kind = "food"
	KindNap         Kind = "nap"
	KindPotty       Kind = "potty"
	KindNote        Kind = "note"
	KindMedication  Kind = "medication"
	KindIncident    Kind = "incident"
	KindHealthCheck Kind = "health_check"
	KindObservation Kind = "observation"
)

// Kinds lists every valid kind, in the order the intake form offers them.
func Kinds() []Kind {
	return []Kind{
		KindPhoto, KindVideo, KindFood, KindNap, KindPotty,
		KindNote, KindMedication, KindIncident, KindHealthCheck, KindObservation,
	}
}

func (k Kind) Valid() bool {
	switch k {
	case KindPhoto, KindVideo, KindFood, KindNap, KindPotty,
		KindNote, KindMedication, KindIncident, KindHealthCheck, KindObservation:
		return true
	}
	return false
}

// HasMedia reports whether records of this kind may carry media URLs.
func (k Kind) HasMedia() bool {
	return k == KindPhoto || k == KindVideo
}

// FreeText reports whether the kind's detail is plain notes text. For these
// kinds the envelope notes field mirrors the detail.
func (k Kind) FreeText() bool {
	return k == KindNote || k == KindObservation
}

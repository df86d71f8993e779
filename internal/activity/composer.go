package activity

import (
	"context"
	"errors"
)

var (
	ErrNoChild      = errors.New("composer: child reference required")
	ErrNoKind       = errors.New("composer: no kind selected")
	ErrKindMismatch = errors.New("composer: detail does not match selected kind")
)

// State tracks where a draft is in its lifecycle.
type State int

const (
	Idle State = iota
	KindSelected
)

// ValidateFunc lets a host application reject a draft before submission.
// The default is nil: staff entry is optimistic and empty fields are
// stored as-is.
type ValidateFunc func(k Kind, d Detail) error

// Composer accumulates one activity draft for one child. It owns the draft
// until submission; after a successful submit or a cancel it returns to
// Idle. Selecting a kind, including selecting the same kind again, discards
// everything entered so far.
type Composer struct {
	childID string
	state   State
	kind    Kind
	detail  Detail
	caption string
	media   []string

	Validate ValidateFunc
}

func NewComposer(childID string) (*Composer, error) {
	if childID == "" {
		return nil, ErrNoChild
	}
	return &Composer{childID: childID}, nil
}

func (c *Composer) State() State { return c.state }
func (c *Composer) Kind() Kind   { return c.kind }

// MediaURLs returns the accumulated upload results for the current draft.
func (c *Composer) MediaURLs() []string { return c.media }

// SelectKind moves the draft to the given kind and clears all detail
// fields, the caption and any pending media references. Full reset, not a
// merge: fields never leak between kinds.
func (c *Composer) SelectKind(k Kind) error {
	if !k.Valid() {
		return ErrInvalidKind
	}
	empty, err := EmptyDetail(k)
	if err != nil {
		return err
	}
	c.state = KindSelected
	c.kind = k
	c.detail = empty
	c.caption = ""
	c.media = nil
	return nil
}

// SetDetail replaces the draft's detail fields. The variant must match the
// selected kind.
func (c *Composer) SetDetail(d Detail) error {
	if c.state != KindSelected {
		return ErrNoKind
	}
	if !Matches(c.kind, d) {
		return ErrKindMismatch
	}
	c.detail = d
	return nil
}

// SetCaption records a caption for a photo or video draft.
func (c *Composer) SetCaption(caption string) error {
	if c.state != KindSelected {
		return ErrNoKind
	}
	if !c.kind.HasMedia() {
		return ErrKindMismatch
	}
	c.caption = caption
	return nil
}

// AppendMedia adds resolved upload URLs to the draft. Batches accumulate;
// later uploads append rather than replace.
func (c *Composer) AppendMedia(urls ...string) error {
	if c.state != KindSelected {
		return ErrNoKind
	}
	if !c.kind.HasMedia() {
		return ErrKindMismatch
	}
	c.media = append(c.media, urls...)
	return nil
}

// Cancel discards the draft.
func (c *Composer) Cancel() {
	c.state = Idle
	c.kind = ""
	c.detail = nil
	c.caption = ""
	c.media = nil
}

// Submit builds the envelope and hands it to the gateway exactly once. On
// failure the draft is left untouched so the caller may retry; on success
// the composer resets to Idle. The acting staff reference is passed in
// explicitly rather than read from ambient session state.
func (c *Composer) Submit(ctx context.Context, gw Gateway, staffID string) (*Record, error) {
	if c.state != KindSelected {
		return nil, ErrNoKind
	}

	detail := c.detail
	if c.caption != "" {
		if md, ok := detail.(MediaDetail); ok {
			md.Caption = c.caption
			detail = md
		}
	}

	if c.Validate != nil {
		if err := c.Validate(c.kind, detail); err != nil {
			return nil, err
		}
	}

	notes := ""
	if c.kind.FreeText() {
		if nd, ok := detail.(NoteDetail); ok {
			notes = nd.Notes
		}
	}

	in := CreateActivityInput{
		ChildID: c.childID,
		Kind:    c.kind,
		Notes:   notes,
		Detail:  detail,
	}
	if len(c.media) > 0 {
		in.MediaURLs = c.media
	}

	rec, err := gw.CreateActivity(ctx, staffID, in)
	if err != nil {
		return nil, err
	}

	c.Cancel()
	return rec, nil
}

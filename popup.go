package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/theme"
)

// PopupMessage is a dialog showing a message and an Ok button. Pressing
// Ok, Enter or Escape dismisses it.
type PopupMessage struct {
	*Manager
	onDismiss func()
}

// NewPopupMessage shows msg in a new dialog. opts configure the dialog,
// typically WithDesktop and WithBatch. onDismiss, which may be nil, is
// called before the dialog deletes itself.
func NewPopupMessage(msg string, th *theme.Scope, onDismiss func(), opts ...ManagerOption) (*PopupMessage, error) {
	p := &PopupMessage{onDismiss: onDismiss}
	content := NewFrame(NewVerticalLayout([]Node{
		NewLabel(msg),
		NewOneTimeButton("Ok", p.Dismiss, WithFocus()),
	}))
	opts = append(opts, WithKeyHandler(func(key Key, _ Modifier) bool {
		if key != KeyEnter && key != KeyEscape {
			return false
		}
		p.Dismiss()
		return true
	}))
	m, err := NewManager(content, th, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating popup: %w", err)
	}
	p.Manager = m
	return p, nil
}

// Dismiss calls the dismiss callback and deletes the dialog.
func (p *PopupMessage) Dismiss() {
	if p.deleted() {
		return
	}
	if p.onDismiss != nil {
		p.onDismiss()
	}
	p.Delete()
}

// PopupConfirm is a dialog asking a question with Ok and Cancel buttons.
// Enter answers Ok and Escape answers Cancel.
type PopupConfirm struct {
	*Manager
	onOk     func()
	onCancel func()
}

// ConfirmLabels names the two buttons of a PopupConfirm.
type ConfirmLabels struct {
	Ok, Cancel string
}

// NewPopupConfirm shows question in a new dialog. Either callback may be
// nil; the dialog deletes itself after calling it. Empty labels default
// to "Ok" and "Cancel".
func NewPopupConfirm(question string, labels ConfirmLabels, th *theme.Scope, onOk, onCancel func(), opts ...ManagerOption) (*PopupConfirm, error) {
	if labels.Ok == "" {
		labels.Ok = "Ok"
	}
	if labels.Cancel == "" {
		labels.Cancel = "Cancel"
	}
	p := &PopupConfirm{onOk: onOk, onCancel: onCancel}
	content := NewFrame(NewVerticalLayout([]Node{
		NewLabel(question),
		NewHorizontalLayout([]Node{
			NewOneTimeButton(labels.Ok, p.Ok, WithFocus()),
			nil,
			NewOneTimeButton(labels.Cancel, p.Cancel, WithFocus()),
		}),
	}))
	opts = append(opts, WithKeyHandler(func(key Key, _ Modifier) bool {
		switch key {
		case KeyEnter:
			p.Ok()
		case KeyEscape:
			p.Cancel()
		default:
			return false
		}
		return true
	}))
	m, err := NewManager(content, th, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating popup: %w", err)
	}
	p.Manager = m
	return p, nil
}

// Ok answers the question positively.
func (p *PopupConfirm) Ok() {
	p.answer(p.onOk)
}

// Cancel answers the question negatively.
func (p *PopupConfirm) Cancel() {
	p.answer(p.onCancel)
}

func (p *PopupConfirm) answer(fn func()) {
	if p.deleted() {
		return
	}
	if fn != nil {
		fn()
	}
	p.Delete()
}

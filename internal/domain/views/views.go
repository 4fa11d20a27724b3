// Package views holds the state and actions of the two user-facing views,
// independent of how they are drawn (browser page, terminal, CLI).
package views

import "errors"

// Alerter surfaces a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(msg string) bool
}

type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

type ConfirmFunc func(msg string) bool

func (f ConfirmFunc) Confirm(msg string) bool { return f(msg) }

var (
	ErrAdminOnly      = errors.New("admin mode required")
	ErrRequiredFields = errors.New("title and source URL are required")
)

const (
	MsgSearchFailed         = "Error communicating with the server"
	MsgAddFileFailed        = "Error adding file"
	MsgDeleteFileFailed     = "Failed to delete file"
	MsgAddCategoryFailed    = "Failed to add category"
	MsgDeleteCategoryFailed = "Failed to delete category"

	ConfirmDeleteFile     = "Delete this file?"
	ConfirmDeleteCategory = "Delete category? Files in it will become uncategorized."
)

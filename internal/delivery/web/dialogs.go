package web

import (
	"net/http"

	"github.com/Vovarama1992/cloudio/internal/domain/views"
)

// alerts collects messages raised while handling one request; the page
// replays them as browser alert() calls.
type alerts struct {
	msgs []string
}

func (a *alerts) Alert(msg string) { a.msgs = append(a.msgs, msg) }

// formConfirmer answers with what the browser's confirm() dialog put into the form.
func formConfirmer(r *http.Request) views.Confirmer {
	accepted := r.PostFormValue("confirmed") == "1"
	return views.ConfirmFunc(func(string) bool { return accepted })
}

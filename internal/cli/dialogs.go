package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/domain/views"
)

func (a *app) alerter() views.Alerter {
	return views.AlertFunc(func(msg string) {
		fmt.Fprintln(a.err, "error:", msg)
	})
}

// confirmer prompts on stdin; --yes answers for the user.
func (a *app) confirmer(yes bool) views.Confirmer {
	if yes {
		return views.ConfirmFunc(func(string) bool { return true })
	}
	return stdinConfirmer(a.in, a.out)
}

func stdinConfirmer(in io.Reader, out io.Writer) views.Confirmer {
	r := bufio.NewReader(in)
	return views.ConfirmFunc(func(msg string) bool {
		fmt.Fprintf(out, "%s [y/N] ", msg)
		line, _ := r.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}

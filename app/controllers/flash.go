package controllers

import (
	"encoding/gob"
	"log"
	"net/http"
)

const sessionName = "inkwell_session"

// Flash message categories
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
)

// Flash is a one-shot message shown to the user on the next page load.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// addFlash queues a flash message on the user's session
func (pc *PostController) addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := pc.sessions.Get(r, sessionName)
	session.AddFlash(Flash{Category: category, Message: message})
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save session: %v", err)
	}
}

// popFlashes drains queued flash messages for rendering
func (pc *PostController) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := pc.sessions.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save session: %v", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

package ws

import (
	"net/http"
)

// Handler subscribes a client to a room (default: catalog) until it disconnects.
// Clients only listen; anything they send is discarded.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered the client.
			return
		}

		roomID := r.URL.Query().Get("roomID")
		if roomID == "" {
			roomID = CatalogRoom
		}

		hub.Register(roomID, conn)
		defer hub.Unregister(roomID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

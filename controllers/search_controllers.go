package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/little-lemon/live"
	"github.com/yeremiapane/little-lemon/services"
	"github.com/yeremiapane/little-lemon/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // API hanya listen di loopback
	},
}

type SearchController struct {
	Menu     *services.MenuService
	Hub      *live.Hub
	Debounce time.Duration
}

func NewSearchController(menu *services.MenuService, hub *live.Hub, debounce time.Duration) *SearchController {
	return &SearchController{Menu: menu, Hub: hub, Debounce: debounce}
}

type searchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// SearchSocket -> GET /ws/search. Setiap pesan {query, category} dari client
// menjadwalkan ulang pencarian; hanya input terakhir yang dijalankan.
func (sc *SearchController) SearchSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Warnf("Search socket upgrade failed: %v", err)
		return
	}

	client := sc.Hub.Register(ws)
	defer sc.Hub.Unregister(client)

	session := services.NewSearchSession(sc.Menu, sc.Debounce, func(r services.SearchResult) {
		if err := client.Send(live.Message{Event: live.EventMenuResults, Data: r}); err != nil {
			utils.ErrorLogger.Warnf("Error sending search results: %v", err)
		}
	})
	defer session.Close()

	// Layar menu dibuka dengan semua item.
	session.Update("", services.CategoryAll)

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			utils.InfoLogger.Debugf("Search socket closed: %v", err)
			return
		}

		var req searchRequest
		if err := json.Unmarshal(data, &req); err != nil {
			client.Send(live.Message{Event: live.EventError, Data: "invalid search message"})
			continue
		}
		if req.Category == "" {
			req.Category = services.CategoryAll
		}
		session.Update(req.Query, req.Category)
	}
}

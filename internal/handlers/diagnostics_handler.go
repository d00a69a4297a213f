package handlers

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/alankritha/salon-booking/internal/httpresp"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type DiagnosticsHandler struct {
	store DocumentStore
}

func NewDiagnosticsHandler(store DocumentStore) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store}
}

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

////////////////////////////////////////////////////////
// CHECK
////////////////////////////////////////////////////////

// Check probes the storage collaborator and the configuration and reports
// everything as text. Probe failures are swallowed into the response body;
// this route never fails the request, so it stays useful for operational
// inspection even when dependencies are broken.
func (h *DiagnosticsHandler) Check(c *gin.Context) {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"
		resp.DatabaseName = h.store.Name()

		names, err := h.store.ListCollectionNames(c.Request.Context())
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			resp.Database = "✅ Connected & Working"
			if len(names) > 10 {
				names = names[:10]
			}
			if names != nil {
				resp.Collections = names
			}
		}
	}

	resp.DatabaseURL = presenceFlag("DATABASE_URL")
	resp.DatabaseName = presenceFlag("DATABASE_NAME")

	httpresp.OK(c, resp)
}

func presenceFlag(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

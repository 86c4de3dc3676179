package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

const reportHistoryLimit = 100

// HistoryExporter renders lookup records as a PDF document.
type HistoryExporter interface {
	ExportHistory(records []domain.LocationInfo) ([]byte, error)
}

// ReportHandler produces downloadable lookup history reports.
type ReportHandler struct {
	Store    ports.LookupStore
	Exporter HistoryExporter
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(store ports.LookupStore, exporter HistoryExporter) *ReportHandler {
	return &ReportHandler{
		Store:    store,
		Exporter: exporter,
	}
}

// HandleHistoryPDF streams a PDF of the most recent lookups.
func (h *ReportHandler) HandleHistoryPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.Store.RecentLookups(reportHistoryLimit)
	if err != nil {
		slog.Error("failed to load lookups for report", "error", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	data, err := h.Exporter.ExportHistory(records)
	if err != nil {
		slog.Error("failed to generate history report", "error", err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("timemap-history-%s.pdf", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

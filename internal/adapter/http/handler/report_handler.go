package handler

import (
	"net/http"
	"time"

	"github.com/dinheirorapido/loanledger/internal/adapter/http/dto"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Dashboard returns the portfolio-wide aggregates.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportUC.Dashboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromDomain(stats))
}

// Loans returns a loan report filtered by period, client, or status.
func (h *ReportHandler) Loans(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReportFilter{
		ClientID: r.URL.Query().Get("client_id"),
		Status:   domain.LoanStatus(r.URL.Query().Get("status")),
	}

	if v := r.URL.Query().Get("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start_date", err.Error())
			return
		}
		filter.StartDate = &t
	}

	if v := r.URL.Query().Get("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end_date", err.Error())
			return
		}
		filter.EndDate = &t
	}

	report, err := h.reportUC.LoanReport(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoanReportFromDomain(report))
}

package handler

import (
	"fmt"
	"net/http"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/report"
	"barbershop-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	Service ReportRunner
}

func (h ReportHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/reports/{kind}", h.run)
	r.Get("/reports/{kind}/export", h.export)
}

func (h ReportHandler) compute(r *http.Request) (*service.ReportResult, error) {
	start, end, err := parseRangeQuery(r)
	if err != nil {
		return nil, err
	}
	return h.Service.Run(r.Context(), report.Kind(chi.URLParam(r, "kind")), start, end)
}

func (h ReportHandler) run(w http.ResponseWriter, r *http.Request) {
	res, err := h.compute(r)
	if err != nil {
		writeServiceError(w, r, "reports.run", err)
		return
	}
	writeJSON(w, http.StatusOK, toReport(*res))
}

func (h ReportHandler) export(w http.ResponseWriter, r *http.Request) {
	res, err := h.compute(r)
	if err != nil {
		writeServiceError(w, r, "reports.export", err)
		return
	}
	kind := res.Definition.Kind

	format := r.URL.Query().Get("format")
	var (
		body        []byte
		contentType string
	)
	switch format {
	case "", "csv":
		format, contentType = "csv", "text/csv"
		body, err = report.ExportCSV(kind, res.Range, res.Summary)
	case "xlsx":
		contentType = xlsxContentType
		body, err = report.ExportXLSX(kind, res.Range, res.Summary)
	default:
		writeServiceError(w, r, "reports.export", domain.Validation("format must be csv or xlsx"))
		return
	}
	if err != nil {
		writeServiceError(w, r, "reports.export", err)
		return
	}

	name := fmt.Sprintf("%s-report-%s.%s", kind, res.Range.End.Format(domain.DateLayout), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/iho/amortize/internal/adapter/http/dto"
	"github.com/iho/amortize/internal/adapter/report"
	"github.com/iho/amortize/internal/domain"
	"github.com/iho/amortize/internal/usecase"
)

// MortgageService defines the behavior needed by MortgageHandler.
type MortgageService interface {
	Calculate(ctx context.Context, input usecase.CalculateInput) (*domain.Calculation, error)
	Summarize(ctx context.Context, input usecase.CalculateInput) (*domain.Calculation, error)
}

// PDFRenderer writes a printable calculation.
type PDFRenderer func(w io.Writer, calc *domain.Calculation) error

// MortgageHandler handles mortgage calculation HTTP requests.
type MortgageHandler struct {
	mortgageUC MortgageService
	renderPDF  PDFRenderer
}

// NewMortgageHandler creates a new MortgageHandler.
func NewMortgageHandler(mortgageUC MortgageService) *MortgageHandler {
	return &MortgageHandler{
		mortgageUC: mortgageUC,
		renderPDF:  report.WritePDF,
	}
}

// Calculate computes the summary and amortization schedule of a loan.
func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid request", err)
		return
	}

	calc, err := h.mortgageUC.Calculate(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to calculate mortgage", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CalculationFromDomain(calc, req.WantsSchedule()))
}

// Summary returns the payment summary and breakdown of a loan given as query parameters.
func (h *MortgageHandler) Summary(w http.ResponseWriter, r *http.Request) {
	input, err := loanQuery(r)
	if err != nil {
		writeDomainError(w, "invalid request", err)
		return
	}

	calc, err := h.mortgageUC.Summarize(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to summarize mortgage", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CalculationFromDomain(calc, false))
}

// SchedulePDF renders the printable amortization schedule of a loan given as query parameters.
func (h *MortgageHandler) SchedulePDF(w http.ResponseWriter, r *http.Request) {
	input, err := loanQuery(r)
	if err != nil {
		writeDomainError(w, "invalid request", err)
		return
	}

	calc, err := h.mortgageUC.Calculate(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to calculate mortgage", err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderPDF(&buf, calc); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render schedule", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="amortization-%s.pdf"`, calc.ID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

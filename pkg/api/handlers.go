package api

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"

	"github.com/matzehuels/chartpress/pkg/buildinfo"
	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/errors"
	"github.com/matzehuels/chartpress/pkg/pipeline"
)

// Summaries used as the "error" field of server-side failures.
const (
	msgImageFailed    = "Erro interno do servidor ao gerar imagem"
	msgDocumentFailed = "Erro ao gerar o PDF"
)

// =============================================================================
// Chart Endpoints
// =============================================================================

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		s.fail(w, r, err, msgImageFailed)
		return
	}
	res, err := s.runner.Image(r.Context(), req)
	if err != nil {
		s.fail(w, r, err, msgImageFailed)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	writeBinary(w, res.Image.ContentType, res.Image.Data)
}

func (s *Server) handleChartPDF(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		s.fail(w, r, err, msgDocumentFailed)
		return
	}
	s.document(w, r, req)
}

// handleRadarChartPDF is the legacy radar endpoint: chartType is implied.
func (s *Server) handleRadarChartPDF(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		s.fail(w, r, err, msgDocumentFailed)
		return
	}
	req.ChartType = string(chart.KindRadar)
	s.document(w, r, req)
}

func (s *Server) document(w http.ResponseWriter, r *http.Request, req pipeline.Request) {
	res, err := s.runner.Document(r.Context(), req)
	if err != nil {
		s.fail(w, r, err, msgDocumentFailed)
		return
	}
	doc := res.Document
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	writeBinary(w, doc.ContentType, doc.Data)
}

// decodeRequest reads the JSON body. Oversized bodies become
// PAYLOAD_TOO_LARGE; anything unparseable is INVALID_INPUT.
func decodeRequest(r *http.Request) (pipeline.Request, error) {
	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return req, errors.New(errors.ErrCodePayloadTooLarge,
				"Requisição muito grande (máximo %d bytes)", tooLarge.Limit)
		}
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return req, errors.Invalid(typeErr.Field, "O campo %s deve ser do tipo %s", typeErr.Field, typeErr.Type.Kind())
		}
		return req, errors.Invalid("", "Corpo da requisição não é um JSON válido")
	}
	return req, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, summary string) {
	if StatusCode(err) >= http.StatusInternalServerError {
		s.loggerFrom(r.Context()).Error(summary, "err", err)
	}
	writeError(w, err, summary, s.cfg.IsDevelopment())
}

// =============================================================================
// Service Endpoints
// =============================================================================

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Env       string `json:"env"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Service:   info.Service,
		Version:   info.Version,
		Env:       s.cfg.Server.Env,
	})
}

type indexResponse struct {
	Message    string            `json:"message"`
	Version    string            `json:"version"`
	ChartTypes []chart.Kind      `json:"chartTypes"`
	Endpoints  map[string]string `json:"endpoints"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:    "Microserviço de Exportação de PDF",
		Version:    buildinfo.Version,
		ChartTypes: chart.Kinds,
		Endpoints: map[string]string{
			"health":        "/health",
			"chartImage":    "/api/chart-image",
			"chartPdf":      "/api/chart-pdf",
			"radarChartPdf": "/api/radar-chart-pdf",
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{
		Error: "Rota não encontrada",
		Code:  string(errors.ErrCodeNotFound),
		Path:  r.URL.RequestURI(),
	})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{
		Error: "Método não permitido",
		Code:  string(errors.ErrCodeMethodNotAllowed),
		Path:  r.URL.RequestURI(),
	})
}

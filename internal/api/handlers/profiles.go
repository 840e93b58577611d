package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"gpr-profile-service/internal/adapters/spreadsheet"
	"gpr-profile-service/internal/api/dto"
	"gpr-profile-service/internal/domain"
	"gpr-profile-service/internal/ports"
	"gpr-profile-service/internal/services"
)

// ProfileHandler turns uploaded spreadsheets into boundary profiles,
// either as JSON tables (Create) or as a rendered PNG chart (Chart).
type ProfileHandler struct {
	Options        services.Options
	Renderer       ports.ChartRenderer
	MaxUploadBytes int64
}

// Create processes a multipart batch of spreadsheet files, one survey
// per file. Files are isolated: a structurally bad file reports its
// error inline and its siblings still produce profiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart body")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, r, http.StatusBadRequest, `at least one file is required (field "files")`)
		return
	}

	inputs := make([]services.BatchInput, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			// Replay the failure through the batch so results keep
			// upload order.
			inputs = append(inputs, services.BatchInput{
				Name:   fh.Filename,
				Source: &spreadsheet.MemorySource{Err: err},
			})
			continue
		}
		defer f.Close()

		src, err := spreadsheet.SourceFor(fh.Filename, f)
		if err != nil {
			inputs = append(inputs, services.BatchInput{
				Name:   fh.Filename,
				Source: &spreadsheet.MemorySource{Err: err},
			})
			continue
		}

		inputs = append(inputs, services.BatchInput{Name: fh.Filename, Source: src})
	}

	results := services.ProcessBatch(r.Context(), inputs, h.Options)

	res := dto.ListSurveysResponse{Surveys: make([]dto.SurveyResponse, 0, len(results))}
	failed := 0
	for _, br := range results {
		if br.Err != nil {
			failed++
			log.Printf("process upload failed: file=%q err=%v", br.Name, br.Err)
			res.Surveys = append(res.Surveys, dto.SurveyResponse{
				File:      br.Name,
				Error:     br.Err.Error(),
				ErrorKind: errorKind(br.Err),
			})
			continue
		}
		res.Surveys = append(res.Surveys, surveyResponse(br.Name, br.Survey))
	}

	status := http.StatusOK
	if failed == len(results) {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, r, status, res)
}

// Chart processes a single uploaded spreadsheet and responds with the
// depth-profile chart as PNG.
func (h *ProfileHandler) Chart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart body")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, fh, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, `a spreadsheet file is required (field "file")`)
		return
	}
	defer f.Close()

	src, err := spreadsheet.SourceFor(fh.Filename, f)
	if err != nil {
		writeErrorKind(w, r, http.StatusUnprocessableEntity, errorKind(err), err.Error())
		return
	}

	survey, err := services.ProcessSurvey(r.Context(), src, h.Options)
	if err != nil {
		writeErrorKind(w, r, http.StatusUnprocessableEntity, errorKind(err), err.Error())
		return
	}

	if !survey.HasPlottableData() {
		writeErrorKind(w, r, http.StatusUnprocessableEntity, "no_plottable_data",
			"every boundary value is undefined; no chart can be drawn")
		return
	}

	// Render to memory first so render failures never leak a partial
	// image to the client.
	var buf bytes.Buffer
	if err := h.Renderer.Render(r.Context(), survey, &buf); err != nil {
		log.Printf("render chart failed: file=%q err=%v", fh.Filename, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write chart failed: file=%q err=%v", fh.Filename, err)
	}
}

func surveyResponse(name string, s *domain.Survey) dto.SurveyResponse {
	rows := make([]dto.ProfileRowResponse, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, dto.ProfileRowResponse{
			Chainage:  row.Chainage,
			Thickness: cellValues(row.Thickness),
			Boundary:  cellValues(row.Boundary),
		})
	}

	return dto.SurveyResponse{
		File:            name,
		Layers:          s.Layers.Names,
		BoundaryColumns: s.Layers.BoundaryColumns(),
		NoPlottableData: !s.HasPlottableData(),
		Rows:            rows,
	}
}

func cellValues(cells []domain.Cell) []*float64 {
	out := make([]*float64, len(cells))
	for i, c := range cells {
		if c.Valid {
			v := c.Value
			out[i] = &v
		}
	}
	return out
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, services.ErrInsufficientColumns):
		return "insufficient_columns"
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		return "unsupported_format"
	default:
		return "read_failed"
	}
}

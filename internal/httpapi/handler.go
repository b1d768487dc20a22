package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
)

type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form: " + err.Error()})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing audio file"})
		return
	}
	defer file.Close()

	saveTranscript := true
	if v := r.FormValue("save_transcript"); v != "" {
		saveTranscript, err = strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "save_transcript must be a boolean"})
			return
		}
	}

	path, err := h.saveUpload(file, header.Filename)
	if err != nil {
		h.logger.Error(ctx, "Failed to store upload: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to store upload"})
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.logger.Warn(ctx, "Failed to cleanup upload %s: %v", path, err)
		}
	}()

	result, err := h.pipeline.Process(ctx, pipeline.Request{
		AudioPath:      path,
		Title:          r.FormValue("title"),
		SaveTranscript: saveTranscript,
	})
	if err != nil {
		status, resp := errorStatus(err)
		h.logger.Error(ctx, "Summarize %s failed: %v", header.Filename, err)
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// saveUpload copies the upload to the temp dir, keeping its extension for format checks.
func (h *handler) saveUpload(src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	path := filepath.Join(h.tempDir, "upload-"+uuid.NewString()+filepath.Ext(filename))

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func errorStatus(err error) (int, errorResponse) {
	resp := errorResponse{Error: err.Error()}
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		resp.Stage = stageErr.Stage
	}

	switch {
	case errors.Is(err, pipeline.ErrInputValidation):
		return http.StatusBadRequest, resp
	default:
		return http.StatusInternalServerError, resp
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sublate/internal/history"
	"sublate/internal/language"
	"sublate/internal/logging"
	"sublate/internal/pipeline"
	"sublate/internal/services"
	"sublate/internal/services/youtube"
	"sublate/internal/subtitles"
)

const degradedHeader = "X-Sublate-Degraded"

type subtitlesRequest struct {
	URL      string `json:"url"`
	VideoID  string `json:"videoId"`
	Language string `json:"language"`
	Mode     string `json:"mode"`
}

type subtitlesResponse struct {
	Subtitles []subtitles.Cue `json:"subtitles"`
	Language  string          `json:"language"`
	Mode      string          `json:"mode"`
	Degraded  bool            `json:"degraded,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) handleSubtitles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	// The configured budget bounds the whole run, so a stalled collaborator
	// surfaces as a 504 from this boundary rather than hanging the client.
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.RequestTimeout)*time.Second)
		defer cancel()
	}
	log := logging.WithContext(ctx, s.logger)

	var body subtitlesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, log, services.Wrap(services.ErrInvalidVideoReference, "server", "decode request", "invalid JSON body", err))
		return
	}

	reference := strings.TrimSpace(body.VideoID)
	if reference == "" {
		reference = strings.TrimSpace(body.URL)
	}
	videoID, err := youtube.ExtractVideoID(reference)
	if err != nil {
		s.writeError(w, log, services.Wrap(services.ErrInvalidVideoReference, "server", "extract video id", "", err))
		return
	}

	mode, ok := pipeline.ParseMode(body.Mode, s.defaultMode)
	if !ok {
		s.writeError(w, log, services.Wrap(services.ErrInvalidVideoReference, "server", "parse mode", "unknown mode "+body.Mode, nil))
		return
	}

	req := pipeline.Request{VideoID: videoID, Language: body.Language, Mode: mode}
	result, err := s.runner.Run(ctx, req)
	s.record(ctx, req, result, err)
	if err != nil {
		s.writeError(w, log, err)
		return
	}

	if result.Degraded {
		w.Header().Set(degradedHeader, "transcript-placeholder")
	}
	if result.Mode == pipeline.ModeTimed {
		w.Header().Set("Content-Type", "text/vtt; charset=utf-8")
		_, _ = w.Write([]byte(subtitles.Serialize(result.Document)))
		return
	}
	writeJSON(w, http.StatusOK, subtitlesResponse{
		Subtitles: result.Document.Cues,
		Language:  result.Language.Code,
		Mode:      string(result.Mode),
		Degraded:  result.Degraded,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	langs := language.Supported()
	out := make([]entry, len(langs))
	for i, lang := range langs {
		out[i] = entry{Code: lang.Code, Name: lang.Name}
	}
	writeJSON(w, http.StatusOK, map[string]any{"languages": out})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// record appends a best-effort history row; storage failures are logged,
// never surfaced to the requester.
func (s *Server) record(ctx context.Context, req pipeline.Request, result pipeline.Result, runErr error) {
	if s.store == nil {
		return
	}
	record := history.Record{
		VideoID:  req.VideoID,
		Language: req.Language,
		Mode:     string(req.Mode),
		Status:   history.StatusCompleted,
	}
	if runErr != nil {
		record.Status = history.StatusFailed
		record.ErrorKind = services.Kind(runErr)
	} else {
		record.Language = result.Language.Code
		record.CueCount = len(result.Document.Cues)
		record.DurationSeconds = result.Document.Duration()
		record.Degraded = result.Degraded
		record.Elapsed = result.Elapsed
	}
	// Use a detached context so a client disconnect cannot lose the row.
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := s.store.Add(storeCtx, record); err != nil {
		s.logger.Warn("history record failed", slog.Any("error", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := services.HTTPStatus(err)
	log.Error("request failed",
		slog.Int("status", status),
		slog.String("kind", services.Kind(err)),
		slog.Any("error", err))
	writeJSON(w, status, errorResponse{
		Error: services.PublicMessage(err),
		Kind:  services.Kind(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

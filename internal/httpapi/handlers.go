package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"

	roster "github.com/Thomblin/duty-roster"
	"github.com/Thomblin/duty-roster/export"
	"github.com/Thomblin/duty-roster/internal/configfiles"
	"github.com/Thomblin/duty-roster/types"
)

// gridResponse is the JSON form of a schedule grid.
type gridResponse struct {
	RunID    string       `json:"runId"`
	Seed     uint64       `json:"seed"`
	Config   string       `json:"config"`
	Dates    []types.Date `json:"dates"`
	Places   []string     `json:"places"`
	Rows     [][]string   `json:"rows"`
	Unfilled []types.Slot `json:"unfilled"`
}

type createRequest struct {
	Config string  `json:"config"`
	Seed   *uint64 `json:"seed,omitempty"`
}

// slotRef addresses a slot either by date and place or by grid row and column.
type slotRef struct {
	Date  *types.Date `json:"date,omitempty"`
	Place string      `json:"place,omitempty"`
	Row   *int        `json:"row,omitempty"`
	Col   *int        `json:"col,omitempty"`
}

type swapRequest struct {
	A slotRef `json:"a"`
	B slotRef `json:"b"`
}

// GET /configs
func (s *Server) listConfigs(w http.ResponseWriter, _ *http.Request) {
	files, err := configfiles.Find(s.dir)
	if err != nil && !errors.Is(err, configfiles.ErrNoConfigFiles) {
		writeError(w, http.StatusInternalServerError, "discovery_failed", err.Error())
		return
	}
	if files == nil {
		files = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": files})
}

// POST /schedules
func (s *Server) createSchedule(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Config == "" {
		writeError(w, http.StatusBadRequest, "invalid_body", "config is required")
		return
	}

	path, err := s.resolveConfig(req.Config)
	if err != nil {
		writeError(w, http.StatusNotFound, "config_not_found", err.Error())
		return
	}

	cfg, err := roster.LoadConfig(path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrInvalidConfig) || errors.Is(err, types.ErrUnknownRule) ||
			errors.Is(err, types.ErrInvalidDate) || errors.Is(err, types.ErrInvalidWeekday) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, "invalid_config", err.Error())
		return
	}
	cfg.ValidateWithWarnings(s.logger)

	opts := []roster.Option{roster.WithLogger(s.logger), roster.WithMetrics(s.metrics)}
	if req.Seed != nil {
		opts = append(opts, roster.WithSeed(*req.Seed))
	}

	schedule, err := roster.Generate(cfg, opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "generate_failed", err.Error())
		return
	}

	sess := &session{configPath: path, schedule: schedule}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	w.Header().Set("Location", "/api/v1/schedule")
	writeJSON(w, http.StatusCreated, sess.grid())
}

// resolveConfig maps a requested config to one of the discovered files so
// that clients cannot load arbitrary paths.
func (s *Server) resolveConfig(name string) (string, error) {
	files, err := configfiles.Find(s.dir)
	if err != nil {
		return "", err
	}

	want := filepath.Clean(name)
	if !filepath.IsAbs(want) {
		want = filepath.Join(s.dir, want)
	}
	for _, f := range files {
		if filepath.Clean(f) == want || f == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("config %q not found in %q", name, s.dir)
}

// GET /schedule
func (s *Server) getSchedule(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		writeNoSchedule(w)
		return
	}

	writeJSON(w, http.StatusOK, s.current.grid())
}

// GET /schedule/summary
func (s *Server) getSummary(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		writeNoSchedule(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": export.Summaries(s.current.schedule.People)})
}

// POST /schedule/swap
func (s *Server) swapSlots(w http.ResponseWriter, r *http.Request) {
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		writeNoSchedule(w)
		return
	}
	schedule := s.current.schedule
	grid := schedule.Grid()

	a, err := req.A.resolve(grid)
	if err != nil {
		writeSlotError(w, "a", err)
		return
	}
	b, err := req.B.resolve(grid)
	if err != nil {
		writeSlotError(w, "b", err)
		return
	}

	for _, slot := range []types.Slot{a, b} {
		if _, ok := schedule.Find(slot); !ok {
			writeError(w, http.StatusNotFound, "slot_not_found",
				fmt.Sprintf("%v: %s %s", types.ErrSlotNotFound, slot.Date, slot.Place))
			return
		}
	}

	if !schedule.Swap(a, b) {
		writeError(w, http.StatusBadRequest, "invalid_swap", "cannot swap a slot with itself")
		return
	}

	s.logger.Info("slots swapped",
		"runID", schedule.RunID,
		"a", a.Date.String()+" "+a.Place,
		"b", b.Date.String()+" "+b.Place,
	)

	writeJSON(w, http.StatusOK, s.current.grid())
}

// GET /schedule.csv
func (s *Server) exportCSV(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		writeNoSchedule(w)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, s.current.schedule.Assignments); err != nil {
		writeError(w, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.csv"`)
	_, _ = w.Write(buf.Bytes())
}

// POST /schedule/save
func (s *Server) saveSchedule(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		writeNoSchedule(w)
		return
	}

	path := export.GenerateFilename(s.current.configPath, s.now())
	if err := export.WriteScheduleFile(path, s.current.schedule.Assignments, s.current.schedule.People); err != nil {
		s.logger.Error("failed to save schedule", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}

	s.logger.Info("schedule saved", "path", path, "runID", s.current.schedule.RunID)
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

func (sess *session) grid() gridResponse {
	grid := sess.schedule.Grid()
	unfilled := sess.schedule.Unfilled
	if unfilled == nil {
		unfilled = []types.Slot{}
	}

	return gridResponse{
		RunID:    sess.schedule.RunID,
		Seed:     sess.schedule.Seed,
		Config:   sess.configPath,
		Dates:    grid.Dates(),
		Places:   grid.Places(),
		Rows:     grid.Rows(),
		Unfilled: slices.Clone(unfilled),
	}
}

var errBadSlotRef = errors.New("slot needs date and place, or row and col")

func (ref slotRef) resolve(grid *roster.Grid) (types.Slot, error) {
	switch {
	case ref.Row != nil && ref.Col != nil:
		a, ok := grid.At(*ref.Row, *ref.Col)
		if !ok {
			return types.Slot{}, fmt.Errorf("%w: row %d col %d", types.ErrSlotNotFound, *ref.Row, *ref.Col)
		}
		return a.Slot(), nil
	case ref.Date != nil && ref.Place != "":
		return types.Slot{Date: *ref.Date, Place: ref.Place}, nil
	default:
		return types.Slot{}, errBadSlotRef
	}
}

func writeSlotError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, types.ErrSlotNotFound) {
		writeError(w, http.StatusNotFound, "slot_not_found", fmt.Sprintf("%s: %v", name, err))
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_body", fmt.Sprintf("%s: %v", name, err))
}

func writeNoSchedule(w http.ResponseWriter) {
	writeError(w, http.StatusConflict, "no_schedule", types.ErrNoSchedule.Error())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

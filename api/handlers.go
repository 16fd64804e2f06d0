package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/route"
)

// ConnectionJSON is the wire form of a core.Connection.
type ConnectionJSON struct {
	Line string `json:"line"`
	From string `json:"from"`
	To   string `json:"to"`
}

// RouteResponse is the body of a successful /route query.
type RouteResponse struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	Found     bool             `json:"found"`
	Hops      int              `json:"hops"`
	Transfers int              `json:"transfers"`
	Lines     []string         `json:"lines"`
	Route     []ConnectionJSON `json:"route"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// routeKey identifies a cached answer; version retires entries on mutation.
type routeKey struct {
	version uint64
	mode    route.Reconstruction
	from    string
	to      string
}

func toJSON(r core.Route) []ConnectionJSON {
	out := make([]ConnectionJSON, len(r))
	for i, c := range r {
		out[i] = ConnectionJSON{Line: c.Line, From: c.From.Name, To: c.To.Name}
	}

	return out
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"stations":    s.graph.StationCount(),
		"connections": s.graph.ConnectionCount(),
		"version":     s.graph.Version(),
	})
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	stations := s.graph.Stations()
	names := make([]string, len(stations))
	for i, st := range stations {
		names[i] = st.Name
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stations": names,
		"count":    len(names),
	})
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	lines := s.graph.Lines()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": lines,
		"count": len(lines),
	})
}

func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request) {
	conns := toJSON(core.Route(s.graph.Connections()))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"connections": conns,
		"count":       len(conns),
	})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "query parameters 'from' and 'to' are required")
		return
	}

	mode := route.FirstMatch
	if v := q.Get("prefer_same_line"); v != "" {
		same, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "prefer_same_line must be a boolean")
			return
		}
		if same {
			mode = route.PreferSameLine
		}
	}

	key := routeKey{version: s.graph.Version(), mode: mode, from: from, to: to}
	if cached, err := s.cache.Get(key); err == nil {
		w.Header().Set("X-Cache", "HIT")
		writeJSON(w, http.StatusOK, cached)
		return
	}

	res, err := route.Search(s.graph, from, to,
		route.WithContext(r.Context()),
		route.WithReconstruction(mode),
	)
	if err != nil {
		var use *core.UnknownStationError
		if errors.As(err, &use) {
			writeError(w, http.StatusNotFound, use.Error())
			return
		}
		s.logger.Printf("route %q -> %q failed: %v", from, to, err)
		writeError(w, http.StatusInternalServerError, "route search failed")
		return
	}

	resp := &RouteResponse{
		From:      from,
		To:        to,
		Found:     res.Found,
		Hops:      res.Hops(),
		Transfers: res.Route.Transfers(),
		Lines:     res.Route.Lines(),
		Route:     toJSON(res.Route),
	}
	if resp.Lines == nil {
		resp.Lines = []string{}
	}
	if err := s.cache.Set(key, resp); err != nil {
		s.logger.Printf("route cache set: %v", err)
	}
	w.Header().Set("X-Cache", "MISS")
	writeJSON(w, http.StatusOK, resp)
}

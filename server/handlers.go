package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/citysearch/report"
	"github.com/katalvlaran/citysearch/search"
)

// CityInfo is one entry of GET /api/cities.
type CityInfo struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Degree    int     `json:"degree"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := search.Request{
		From: strings.TrimSpace(q.Get("from")),
		To:   strings.TrimSpace(q.Get("to")),
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	algs := search.DefaultOrder
	if name := q.Get("algorithm"); name != "" {
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		algs = []search.Algorithm{alg}
	}

	start := time.Now()
	key := routeKey(req, algs)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return search.Plan(s.graph, req, algs...)
	})
	s.metrics.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Error("route query failed", "from", req.From, "to", req.To, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if shared {
		s.metrics.shared.Inc()
	}

	resp := v.(*search.Response)
	if !resp.Resolved() {
		s.metrics.missing.Inc()
		writeJSONStatus(w, http.StatusNotFound, report.NewDocument(resp))
		return
	}
	for _, o := range resp.Outcomes {
		s.metrics.queries.WithLabelValues(o.Algorithm.String(), strconv.FormatBool(o.Found)).Inc()
	}
	writeJSON(w, report.NewDocument(resp))
}

func routeKey(req search.Request, algs []search.Algorithm) string {
	var b strings.Builder
	b.WriteString(req.From)
	b.WriteByte(0)
	b.WriteString(req.To)
	for _, a := range algs {
		b.WriteByte(0)
		b.WriteString(a.String())
	}

	return b.String()
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	cities := s.graph.Cities()
	out := make([]CityInfo, len(cities))
	for i, c := range cities {
		deg, _ := s.graph.Degree(i)
		out[i] = CityInfo{
			Index:     i,
			Name:      c.Name,
			Region:    c.Region,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Degree:    deg,
		}
	}
	writeJSON(w, map[string]interface{}{
		"cities": out,
		"count":  len(out),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.graph.Stats()
	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"cities": st.CityCount,
		"edges":  st.EdgeCount,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSONStatus(w, code, map[string]string{"error": msg})
}

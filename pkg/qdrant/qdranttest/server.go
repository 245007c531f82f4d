// Package qdranttest runs an in-process fake of the Qdrant REST endpoints used
// by this module: collections CRUD, upsert, search (cosine), count and delete.
package qdranttest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"shop-assistant/pkg/qdrant"
)

type point struct {
	id      string
	vector  []float32
	payload map[string]interface{}
}

type collection struct {
	size   int
	points map[string]point
	order  []string
}

// Server is a fake Qdrant.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string]*collection
	fail        bool
}

// NewServer starts a fake Qdrant; callers must Close it.
func NewServer() *Server {
	s := &Server{collections: make(map[string]*collection)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// SetFail makes every subsequent request return 500 until reset.
func (s *Server) SetFail(fail bool) {
	s.mu.Lock()
	s.fail = fail
	s.mu.Unlock()
}

// PointCount reports the number of points stored in name, or -1 when absent.
func (s *Server) PointCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		return -1
	}
	return len(c.points)
}

// CollectionNames lists collections in sorted order.
func (s *Server) CollectionNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.collections))
	for n := range s.collections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status": map[string]string{"error": "forced failure"},
		})
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "collections" && r.Method == http.MethodGet:
		s.listCollections(w)
	case len(parts) == 2 && parts[0] == "collections":
		s.collection(w, r, parts[1])
	case len(parts) >= 3 && parts[0] == "collections" && parts[2] == "points":
		s.points(w, r, parts[1], parts[3:])
	default:
		writeJSON(w, http.StatusNotFound, notFound("route"))
	}
}

func (s *Server) listCollections(w http.ResponseWriter) {
	cols := make([]qdrant.CollectionDescription, 0, len(s.collections))
	for name := range s.collections {
		cols = append(cols, qdrant.CollectionDescription{Name: name})
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].Name < cols[j].Name })
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": map[string]interface{}{"collections": cols},
		"status": "ok",
	})
}

func (s *Server) collection(w http.ResponseWriter, r *http.Request, name string) {
	switch r.Method {
	case http.MethodGet:
		c, ok := s.collections[name]
		if !ok {
			writeJSON(w, http.StatusNotFound, notFound(name))
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"result": map[string]interface{}{"points_count": len(c.points)},
		})
	case http.MethodPut:
		if _, ok := s.collections[name]; ok {
			writeJSON(w, http.StatusConflict, map[string]interface{}{
				"status": map[string]string{"error": fmt.Sprintf("Collection `%s` already exists!", name)},
			})
			return
		}
		var req qdrant.CreateCollectionRequest
		json.NewDecoder(r.Body).Decode(&req)
		s.collections[name] = &collection{size: req.Vectors.Size, points: make(map[string]point)}
		writeJSON(w, http.StatusOK, map[string]interface{}{"result": true})
	case http.MethodDelete:
		if _, ok := s.collections[name]; !ok {
			writeJSON(w, http.StatusNotFound, notFound(name))
			return
		}
		delete(s.collections, name)
		writeJSON(w, http.StatusOK, map[string]interface{}{"result": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) points(w http.ResponseWriter, r *http.Request, name string, rest []string) {
	c, ok := s.collections[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, notFound(name))
		return
	}

	op := ""
	if len(rest) > 0 {
		op = rest[0]
	}

	switch {
	case op == "" && r.Method == http.MethodPut:
		var req qdrant.UpsertPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, p := range req.Points {
			if c.size > 0 && len(p.Vector) != c.size {
				writeJSON(w, http.StatusBadRequest, map[string]interface{}{
					"status": map[string]string{"error": "wrong vector dimension"},
				})
				return
			}
			id := fmt.Sprint(p.ID)
			if _, exists := c.points[id]; !exists {
				c.order = append(c.order, id)
			}
			c.points[id] = point{id: id, vector: p.Vector, payload: p.Payload}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"result": map[string]string{"status": "completed"}})

	case op == "search" && r.Method == http.MethodPost:
		var req qdrant.SearchRequest
		json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, map[string]interface{}{"result": c.search(req)})

	case op == "count" && r.Method == http.MethodPost:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"result": map[string]int{"count": len(c.points)},
		})

	case op == "delete" && r.Method == http.MethodPost:
		var req qdrant.DeletePointsRequest
		json.NewDecoder(r.Body).Decode(&req)
		for _, id := range req.Points {
			delete(c.points, id)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"result": map[string]string{"status": "completed"}})

	default:
		writeJSON(w, http.StatusNotFound, notFound(op))
	}
}

func (c *collection) search(req qdrant.SearchRequest) []qdrant.ScoredPoint {
	results := make([]qdrant.ScoredPoint, 0, len(c.points))
	for _, id := range c.order {
		p, ok := c.points[id]
		if !ok {
			continue
		}
		sp := qdrant.ScoredPoint{ID: p.id, Score: cosine(req.Vector, p.vector)}
		if req.WithPayload {
			sp.Payload = p.payload
		}
		results = append(results, sp)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func notFound(what string) map[string]interface{} {
	return map[string]interface{}{
		"status": map[string]string{"error": fmt.Sprintf("Not found: %s", what)},
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

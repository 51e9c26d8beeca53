// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/history"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/scraper"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	api := r.Group("/api")
	{
		api.GET("/resource-types", s.resourceTypes)
		api.POST("/search", s.search)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) resourceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, types.ResourceTypesResponse{ResourceTypes: scraper.Catalog()})
}

func (s *Server) search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: "invalid request body: " + err.Error()})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: "topic is required"})
		return
	}

	kinds, err := parseKinds(req.ResourceTypes)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	start := time.Now()
	resources, err := s.searcher.Search(c.Request.Context(), topic)
	if err == nil {
		resources = scraper.Filter(resources, kinds)
		if len(resources) > s.maxResults {
			resources = resources[:s.maxResults]
		}
	}
	s.record(c, topic, req.ResourceTypes, len(resources), time.Since(start), err)

	if err != nil {
		detail := err.Error()
		if errors.Is(err, scraper.ErrNoAPIKey) {
			detail = "API key not configured"
		}
		s.log.Error("search failed", "request_id", c.GetString(requestIDKey), "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: detail})
		return
	}

	if resources == nil {
		resources = []types.Resource{}
	}
	c.JSON(http.StatusOK, types.SearchResponse{Resources: resources})
}

// parseKinds validates requested resource types. Nil or empty means no filter.
func parseKinds(values []string) ([]types.Kind, error) {
	if len(values) == 0 {
		return nil, nil
	}
	kinds := make([]types.Kind, 0, len(values))
	for _, v := range values {
		k, ok := types.ParseKind(v)
		if !ok {
			return nil, fmt.Errorf("unknown resource type %q", v)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (s *Server) record(c *gin.Context, topic string, rt []string, n int, elapsed time.Duration, searchErr error) {
	if s.recorder == nil {
		return
	}
	e := history.Entry{
		ID:            c.GetString(requestIDKey),
		Topic:         topic,
		ResourceTypes: rt,
		ResultCount:   n,
		Elapsed:       elapsed,
	}
	if searchErr != nil {
		e.Error = searchErr.Error()
		e.ResultCount = 0
	}
	if err := s.recorder.Record(c.Request.Context(), e); err != nil {
		s.log.Warn("recording search history", "request_id", e.ID, "error", err)
	}
}

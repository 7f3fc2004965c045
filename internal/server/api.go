package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/cost"
	"github.com/ChicagoDave/haydaycalc/pkg/planner"
	"github.com/ChicagoDave/haydaycalc/pkg/validation"
)

type costQuery struct {
	Kind    string `form:"kind" binding:"required"`
	Current int    `form:"current"`
	Target  int    `form:"target"`
}

type costResponse struct {
	Kind     string           `json:"kind"`
	Currency catalog.Currency `json:"currency"`
	Current  int              `json:"current"`
	Target   int              `json:"target"`
	Cost     int              `json:"cost"`
}

// RangeEdit sets one instance's handles in a plan request.
type RangeEdit struct {
	Kind     string `json:"kind" binding:"required"`
	Instance int    `json:"instance"`
	Current  int    `json:"current"`
	Target   int    `json:"target"`
}

// PlanRequest is the body of POST /api/plan. The reduction, when present,
// is applied before the range edits.
type PlanRequest struct {
	Reduction *int        `json:"reduction"`
	Ranges    []RangeEdit `json:"ranges"`
}

// PlanResponse is the resulting plan plus any edits that matched no instance.
type PlanResponse struct {
	planner.Plan
	Ignored []RangeEdit `json:"ignored"`
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"kinds":         s.Catalog().Kinds(),
		"max_reduction": planner.MaxReduction,
	})
}

func (s *Server) handleCost(c *gin.Context) {
	var q costQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, ok := s.Catalog().Lookup(q.Kind)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown kind: " + q.Kind})
		return
	}

	c.JSON(http.StatusOK, costResponse{
		Kind:     kind.Name,
		Currency: kind.Currency,
		Current:  q.Current,
		Target:   q.Target,
		Cost:     cost.New(s.Catalog()).KindCost(kind, q.Current, q.Target),
	})
}

func (s *Server) handlePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := planner.New(s.Catalog())
	if req.Reduction != nil {
		p.SetReduction(*req.Reduction)
	}

	ignored := []RangeEdit{}
	for _, e := range req.Ranges {
		if !p.SetRange(e.Kind, e.Instance, planner.Range{Current: e.Current, Target: e.Target}) {
			ignored = append(ignored, e)
		}
	}

	c.JSON(http.StatusOK, PlanResponse{Plan: p.Snapshot(), Ignored: ignored})
}

func (s *Server) handleValidation(c *gin.Context) {
	c.JSON(http.StatusOK, validation.ValidateCatalog(s.Catalog()))
}

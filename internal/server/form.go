package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChicagoDave/haydaycalc/pkg/planner"
)

const actionReduce = "reduce"

type pageData struct {
	Plan         planner.Plan
	Reduction    int
	MaxReduction int
}

func currentField(kind string, instance int) string {
	return fmt.Sprintf("current/%s/%d", kind, instance)
}

func targetField(kind string, instance int) string {
	return fmt.Sprintf("target/%s/%d", kind, instance)
}

func (s *Server) handleIndex(c *gin.Context) {
	p := planner.New(s.Catalog())
	s.render(c, p, 0)
}

// handleSubmit recomputes the form. The reduction button re-derives every
// target; any other submit applies the posted handle values.
func (s *Server) handleSubmit(c *gin.Context) {
	p := planner.New(s.Catalog())
	reduction, _ := strconv.Atoi(c.PostForm("reduction"))

	if c.PostForm("action") == actionReduce {
		p.SetReduction(reduction)
		s.render(c, p, p.Reduction())
		return
	}

	for _, b := range p.Snapshot().Buildings {
		for i := range b.Instances {
			if v, ok := formInt(c, targetField(b.Name, i)); ok {
				p.SetTarget(b.Name, i, v)
			}
			if v, ok := formInt(c, currentField(b.Name, i)); ok {
				p.SetCurrent(b.Name, i, v)
			}
		}
	}
	s.render(c, p, reduction)
}

func (s *Server) render(c *gin.Context, p *planner.Planner, reduction int) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Plan:         p.Snapshot(),
		Reduction:    reduction,
		MaxReduction: planner.MaxReduction,
	})
}

func formInt(c *gin.Context, key string) (int, bool) {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

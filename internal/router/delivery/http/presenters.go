package http

import (
	"errors"
	"strings"

	"shop-assistant/internal/router"
)

var errEmptyText = errors.New("text is empty")

type classifyReq struct {
	Text      string   `json:"text"      binding:"required,max=2000"`
	Threshold *float64 `json:"threshold" binding:"omitempty,gte=-1,lte=1"`
}

func (r classifyReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r classifyReq) threshold(fallback float64) float64 {
	if r.Threshold == nil {
		return fallback
	}
	return *r.Threshold
}

type classifyResp struct {
	Route     string  `json:"route"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
}

type routeResp struct {
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
}

type routesResp struct {
	Routes []routeResp `json:"routes"`
}

func (h *handler) newRoutesResp(routes []router.Route) routesResp {
	items := make([]routeResp, len(routes))
	for i, r := range routes {
		items[i] = routeResp{Name: r.Name, Examples: r.Examples}
	}
	return routesResp{Routes: items}
}

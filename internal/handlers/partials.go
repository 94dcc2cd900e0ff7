package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/frontend"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/types"
)

// ChartPartial renders the chart result fragment from the page form
func (h *Handler) ChartPartial(c *gin.Context) {
	var form types.ChartForm
	if err := c.ShouldBind(&form); err != nil {
		h.respondFragment(c, frontend.FragmentChart, nil, bindError(err))
		return
	}
	result, err := h.chart(c, form.Request())
	h.respondFragment(c, frontend.FragmentChart, result, err)
}

// HeartbeatPartial renders the heartbeat quiz fragment from the page form
func (h *Handler) HeartbeatPartial(c *gin.Context) {
	var req types.HeartbeatRequest
	if err := c.ShouldBind(&req); err != nil {
		h.respondFragment(c, frontend.FragmentHeartbeat, nil, bindError(err))
		return
	}
	result, err := h.heartbeat(req)
	h.respondFragment(c, frontend.FragmentHeartbeat, result, err)
}

// WivesTalesPartial renders the old wives' tales fragment from the page form
func (h *Handler) WivesTalesPartial(c *gin.Context) {
	var req types.WivesTalesRequest
	if err := c.ShouldBind(&req); err != nil {
		h.respondFragment(c, frontend.FragmentWivesTales, nil, bindError(err))
		return
	}
	result, err := h.wivesTales(req)
	h.respondFragment(c, frontend.FragmentWivesTales, result, err)
}

// RevealIdeaPartial renders one random reveal idea
func (h *Handler) RevealIdeaPartial(c *gin.Context) {
	h.respondFragment(c, frontend.FragmentIdea, h.selector.Next(), nil)
}

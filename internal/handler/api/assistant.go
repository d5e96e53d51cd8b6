package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sportfields/internal/usecase/assistant"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	planner *assistant.Service
	timeout time.Duration
}

func NewAssistantHandler(planner *assistant.Service, timeout time.Duration) *AssistantHandler {
	return &AssistantHandler{planner: planner, timeout: timeout}
}

type trainingPlanEvent struct {
	Success      bool                   `json:"success"`
	TrainingPlan assistant.TrainingPlan `json:"trainingPlan,omitempty"`
	Message      string                 `json:"message,omitempty"`
}

// @Summary Generate a personalized weekly training plan
// @Description Streams a single server-sent event carrying the full plan.
// @Tags assistant
// @Security BearerAuth
// @Produce text/event-stream
// @Param sport query string true "Sport"
// @Param experience query string false "How often the sport is practiced"
// @Param age query string false "Age"
// @Param gender query string false "Gender"
// @Param lastPracticed query string false "Last time practiced"
// @Param weight query string false "Weight (kg)"
// @Param height query string false "Height (cm)"
// @Param physicalLevel query string false "Physical fitness level"
// @Param trainingHours query string false "Weekly training hours"
// @Param objectives query string false "Main objective"
// @Param preferredPosition query string false "Preferred position"
// @Param availabilityDays query string false "Available training days"
// @Success 200 {string} string "data: {success, trainingPlan}"
// @Router /get-training-plan [get]
func (h *AssistantHandler) GetTrainingPlan(c *gin.Context) {
	profile := assistant.AthleteProfile{
		Sport:             c.Query("sport"),
		Experience:        c.Query("experience"),
		Age:               c.Query("age"),
		Gender:            c.Query("gender"),
		LastPracticed:     c.Query("lastPracticed"),
		Weight:            c.Query("weight"),
		Height:            c.Query("height"),
		PhysicalLevel:     c.Query("physicalLevel"),
		TrainingHours:     c.Query("trainingHours"),
		Objectives:        c.Query("objectives"),
		PreferredPosition: c.Query("preferredPosition"),
		AvailabilityDays:  c.Query("availabilityDays"),
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Client disconnects cancel through the request context; the
	// deadline caps how long a plan generation may run.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	plan, err := h.planner.BuildPlan(ctx, profile)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			writeEvent(c, trainingPlanEvent{Success: false, Message: "No internet connection. Please try again."})
			return
		}
		writeEvent(c, trainingPlanEvent{Success: false, Message: "Failed to retrieve training plan."})
		return
	}

	writeEvent(c, trainingPlanEvent{Success: true, TrainingPlan: plan})
}

func writeEvent(c *gin.Context, event trainingPlanEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
	c.Writer.Flush()
}

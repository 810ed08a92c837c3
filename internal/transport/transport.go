// Package transport provides a new server-entity(by ginext) for serve-mode with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc TaskProcessor
}

func NewServer(addr string, p TaskProcessor) *http.Server {
	h := handlers{proc: p}

	engine := ginext.New("release")
	engine.GET("/ping", HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func HealthCheck(ctx *ginext.Context) {
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		log.Printf("Rejected search request: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	tid := uuid.Generate().String()
	log.Printf("Received task %q: query %q, %d bytes of content", tid, *task.Query, len(task.Content))

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	res.TaskID = tid
	log.Printf("Task %q done: %d matching lines", tid, res.Count)

	ctx.JSON(http.StatusOK, res)
}

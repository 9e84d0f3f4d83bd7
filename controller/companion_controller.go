package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github/itish2003/companion/models"
	"github/itish2003/companion/services"
)

// CompanionController handles the HTTP requests for the companion API. It
// only shapes requests and responses; the services do the work.
type CompanionController struct {
	authService  services.AuthService
	notesService services.NotesService
	chatService  services.ChatService
	logger       *zap.Logger
}

// NewCompanionController is a constructor function that creates a new CompanionController.
func NewCompanionController(auth services.AuthService, notes services.NotesService, chat services.ChatService, logger *zap.Logger) *CompanionController {
	return &CompanionController{
		authService:  auth,
		notesService: notes,
		chatService:  chat,
		logger:       logger.With(zap.String("component", "controller")),
	}
}

// Login is the Gin handler for the POST /api/login endpoint.
func (c *CompanionController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	response, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, c.logger)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// StoreInfo is the Gin handler for the POST /api/store-info endpoint.
func (c *CompanionController) StoreInfo(ctx *gin.Context) {
	var req models.StoreInfoRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	response, err := c.notesService.StoreInfo(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, c.logger)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// GetStoredInfo is the Gin handler for the GET /api/store-info endpoint.
// Unknown users get an empty list.
func (c *CompanionController) GetStoredInfo(ctx *gin.Context) {
	username := strings.TrimSpace(ctx.Query("username"))
	if username == "" {
		respondError(ctx, http.StatusBadRequest, usernameRequired)
		return
	}

	response, err := c.notesService.GetStoredInfo(ctx.Request.Context(), username)
	if err != nil {
		respondServiceError(ctx, err, c.logger)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// Chat is the Gin handler for the POST /api/chatbot endpoint.
func (c *CompanionController) Chat(ctx *gin.Context) {
	var req models.ChatRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	response, err := c.chatService.Chat(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, c.logger)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/driveview/backend/internal/adapter"
)

// FileHandler serves the file listing endpoint.
type FileHandler struct {
	provider adapter.ListerProvider
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(provider adapter.ListerProvider) *FileHandler {
	return &FileHandler{provider: provider}
}

// ListFiles returns the caller's file metadata as a JSON array. The provider
// is never touched without a session credential.
func (h *FileHandler) ListFiles(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	accessToken := Cookie(req, AccessTokenCookie)
	if accessToken == "" {
		return jsonError(http.StatusUnauthorized, "Not authenticated"), nil
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	lister, err := h.provider.GetLister(ctx, accessToken)
	if err != nil {
		fmt.Printf("GetLister error: %v\n", err)
		return jsonError(http.StatusInternalServerError, "Failed to fetch files from Google Drive"), nil
	}

	files, err := lister.ListFiles(ctx)
	if err != nil {
		fmt.Printf("ListFiles error: %v\n", err)
		if errors.Is(err, adapter.ErrUnauthorized) {
			return jsonError(http.StatusUnauthorized, "Authentication failed. Please login again."), nil
		}
		return jsonError(http.StatusInternalServerError, "Failed to fetch files from Google Drive"), nil
	}

	body, _ := json.Marshal(files)
	return jsonResponse(http.StatusOK, string(body)), nil
}

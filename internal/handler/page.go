package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/driveview/backend/internal/adapter"
	"github.com/driveview/backend/internal/view"
)

// ThemeCookie persists the light/dark preference across requests.
const ThemeCookie = "theme"

// PageHandler renders the landing page. Each request drives a fresh view
// model from Loading to a terminal state and renders the result.
type PageHandler struct {
	provider adapter.ListerProvider
	renderer *view.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(provider adapter.ListerProvider, renderer *view.Renderer) *PageHandler {
	return &PageHandler{provider: provider, renderer: renderer}
}

// Home renders the view for the caller's session state.
func (h *PageHandler) Home(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	themeQuery := req.QueryStringParameters[ThemeCookie]
	theme := view.ResolveTheme(
		themeQuery,
		Cookie(req, ThemeCookie),
		getHeader(req, "Sec-CH-Prefers-Color-Scheme"),
	)

	model := view.NewModel()
	gen := model.Begin()
	model.Finish(gen, h.resolve(ctx, Cookie(req, AccessTokenCookie)))

	html, err := h.renderer.Render(model.State(), theme)
	if err != nil {
		fmt.Printf("Render error: %v\n", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       "Internal Server Error",
		}, nil
	}

	resp := events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       html,
		Headers: map[string]string{
			"Content-Type": "text/html; charset=utf-8",
		},
	}
	if themeQuery != "" {
		// An explicit toggle sticks for subsequent requests.
		resp = withCookies(resp, fmt.Sprintf("%s=%s; Path=/; SameSite=Lax", ThemeCookie, theme))
	}
	return resp, nil
}

// resolve turns the session credential and listing outcome into the terminal
// view state.
func (h *PageHandler) resolve(ctx context.Context, accessToken string) view.State {
	if accessToken == "" {
		return view.Unauthenticated()
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	lister, err := h.provider.GetLister(ctx, accessToken)
	if err != nil {
		return view.Error(err.Error())
	}

	files, err := lister.ListFiles(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return view.Unauthenticated()
		}
		return view.Error(err.Error())
	}
	return view.Ready(files)
}

package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/driveview/backend/internal/adapter"
	"github.com/driveview/backend/internal/adapter/googledrive"
	"github.com/driveview/backend/internal/adapter/memory"
	"github.com/driveview/backend/internal/auth"
	"github.com/driveview/backend/internal/guard"
	"github.com/driveview/backend/internal/handler"
	"github.com/driveview/backend/internal/secret"
	"github.com/driveview/backend/internal/view"
)

// App holds the request dependencies.
type App struct {
	guard       *guard.Guard
	authHandler *handler.AuthHandler
	fileHandler *handler.FileHandler
	pageHandler *handler.PageHandler
}

// NewApp initializes the application dependencies. OAuth credentials may be
// absent here; that only surfaces when the auth gateway is first used.
func NewApp(ctx context.Context) *App {
	devMode := os.Getenv("DEV_MODE") == "true"

	// ---------- Secret Resolver ----------
	var resolver secret.Resolver
	if devMode {
		resolver = secret.NewEnvResolver()
		fmt.Println("Using EnvResolver (DEV_MODE=true)")
	} else {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			panic(fmt.Sprintf("unable to load SDK config, %v", err))
		}
		resolver = secret.NewSSMResolver(ssm.NewFromConfig(cfg))
		fmt.Println("Using SSMResolver (SSM Parameter Store)")
	}

	googleClientSecretParam := os.Getenv("GOOGLE_CLIENT_SECRET_PARAM")
	if googleClientSecretParam == "" {
		googleClientSecretParam = "/driveview/google-client-secret"
	}
	googleClientSecret, err := resolver.GetSecret(ctx, googleClientSecretParam)
	if err != nil {
		log.Printf("WARNING: failed to resolve GOOGLE_CLIENT_SECRET: %v", err)
	}

	stateSecretParam := os.Getenv("STATE_SECRET_PARAM")
	if stateSecretParam == "" {
		stateSecretParam = "/driveview/state-secret"
	}
	stateSecret, err := resolver.GetSecret(ctx, stateSecretParam)
	if err != nil {
		log.Printf("WARNING: failed to resolve STATE_SECRET: %v", err)
		stateSecret = "default-dev-secret"
	}

	// ---------- OAuth2 Config ----------
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")
	if redirectURL == "" && devMode {
		redirectURL = "http://localhost:8080/auth/callback"
	}

	oauthConfig := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: googleClientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/drive.readonly",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: google.Endpoint,
	}

	oauthService := auth.NewService(oauthConfig)
	stateSigner := auth.NewStateSigner(stateSecret)

	// ---------- Storage Provider ----------
	var provider adapter.ListerProvider
	if devMode {
		provider = memory.NewProvider()
		fmt.Println("Using in-memory file listing (DEV_MODE=true)")
	} else {
		provider = googledrive.NewProvider()
	}

	// ---------- Session Guard ----------
	protected := os.Getenv("PROTECTED_PATHS")
	if protected == "" {
		protected = "/protected,/dashboard"
	}

	return &App{
		guard:       guard.New(guard.ParsePrefixes(protected)),
		authHandler: handler.NewAuthHandler(oauthService, stateSigner),
		fileHandler: handler.NewFileHandler(provider),
		pageHandler: handler.NewPageHandler(provider, view.NewRenderer()),
	}
}

// NewAppWith assembles an App from explicit dependencies. Tests use it to
// inject fakes without touching the environment.
func NewAppWith(g *guard.Guard, ah *handler.AuthHandler, fh *handler.FileHandler, ph *handler.PageHandler) *App {
	return &App{guard: g, authHandler: ah, fileHandler: fh, pageHandler: ph}
}

// HandleRequest routes API Gateway requests to the appropriate handler.
func (app *App) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	path := req.Path
	method := req.HTTPMethod

	fmt.Printf("Request: %s %s\n", method, path)

	// CORS Preflight
	if method == "OPTIONS" {
		return corsResponse(events.APIGatewayProxyResponse{StatusCode: 204}), nil
	}

	// Strip /api prefix if present (for CloudFront proxying)
	path = strings.TrimPrefix(path, "/api")
	if path == "" {
		path = "/"
	}

	// Session Guard: protected prefixes require a session credential.
	if !app.guard.Allow(path, handler.Cookie(req, handler.AccessTokenCookie)) {
		return corsResponse(events.APIGatewayProxyResponse{
			StatusCode: http.StatusFound,
			Headers:    map[string]string{"Location": "/"},
		}), nil
	}

	if path == "/" && method == "GET" {
		return corsResponse(must(app.pageHandler.Home(ctx, req))), nil
	}

	// /auth
	if strings.HasPrefix(path, "/auth") {
		if path == "/auth/login" && method == "GET" {
			return corsResponse(must(app.authHandler.Login(ctx, req))), nil
		}
		if path == "/auth/callback" && method == "GET" {
			return corsResponse(must(app.authHandler.Callback(ctx, req))), nil
		}
		if path == "/auth/refresh" && (method == "GET" || method == "POST") {
			return corsResponse(must(app.authHandler.Refresh(ctx, req))), nil
		}
		if path == "/auth/logout" && method == "GET" {
			return corsResponse(must(app.authHandler.Logout(ctx, req))), nil
		}
	}

	// /drive
	if path == "/drive/files" && method == "GET" {
		return corsResponse(must(app.fileHandler.ListFiles(ctx, req))), nil
	}

	return corsResponse(events.APIGatewayProxyResponse{
		StatusCode: http.StatusNotFound,
		Body:       fmt.Sprintf("Not Found: %s %s", method, path),
	}), nil
}

// corsResponse adds CORS headers to an API Gateway response.
func corsResponse(resp events.APIGatewayProxyResponse) events.APIGatewayProxyResponse {
	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	resp.Headers["Access-Control-Allow-Origin"] = os.Getenv("FRONTEND_URL")
	if resp.Headers["Access-Control-Allow-Origin"] == "" {
		resp.Headers["Access-Control-Allow-Origin"] = "http://localhost:3000"
	}
	resp.Headers["Access-Control-Allow-Credentials"] = "true"
	resp.Headers["Access-Control-Allow-Methods"] = "GET,POST,OPTIONS"
	resp.Headers["Access-Control-Allow-Headers"] = "Content-Type,Authorization"
	return resp
}

// must unwraps a handler response, ignoring the error.
func must(resp events.APIGatewayProxyResponse, err error) events.APIGatewayProxyResponse {
	if err != nil {
		fmt.Printf("Handler error: %v\n", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError, Body: "Internal Server Error"}
	}
	return resp
}

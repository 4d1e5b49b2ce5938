package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"golang.org/x/oauth2"
)

const (
	// AccessTokenCookie carries the short-lived bearer token. The reference
	// design leaves it readable by client script; production deployments
	// should add HttpOnly and Secure.
	AccessTokenCookie = "access_token"

	// RefreshTokenCookie carries the long-lived renewal token. Always
	// HttpOnly. Cookies are not a production-appropriate store for refresh
	// tokens; this is a documented limitation of the single-session design.
	RefreshTokenCookie = "refresh_token"
)

// defaultTokenLifetime applies when the provider reports no expiry.
const defaultTokenLifetime = 3600

// refreshCookieLifetime bounds how long a renewal token is kept.
const refreshCookieLifetime = 30 * 24 * 3600

// getHeader performs a case-insensitive header lookup on a proxy request.
func getHeader(req events.APIGatewayProxyRequest, name string) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Cookie extracts a cookie value from the request, or "" if absent.
func Cookie(req events.APIGatewayProxyRequest, name string) string {
	cookies := getHeader(req, "Cookie")
	if cookies == "" {
		return ""
	}
	prefix := name + "="
	for _, part := range strings.Split(cookies, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, prefix) {
			return strings.TrimPrefix(part, prefix)
		}
	}
	return ""
}

// accessTokenMaxAge computes the cookie lifetime from the provider-reported
// expiry, defaulting to one hour when unspecified.
func accessTokenMaxAge(token *oauth2.Token, now time.Time) int {
	if token.Expiry.IsZero() {
		return defaultTokenLifetime
	}
	maxAge := int(token.Expiry.Sub(now).Seconds())
	if maxAge <= 0 {
		return defaultTokenLifetime
	}
	return maxAge
}

func accessCookie(token string, maxAge int) string {
	return fmt.Sprintf("%s=%s; Path=/; Max-Age=%d; SameSite=Lax", AccessTokenCookie, token, maxAge)
}

func refreshCookie(token string) string {
	return fmt.Sprintf("%s=%s; HttpOnly; Path=/; Max-Age=%d; SameSite=Lax", RefreshTokenCookie, token, refreshCookieLifetime)
}

func clearAccessCookie() string {
	return fmt.Sprintf("%s=; Path=/; Max-Age=0; SameSite=Lax", AccessTokenCookie)
}

func clearRefreshCookie() string {
	return fmt.Sprintf("%s=; HttpOnly; Path=/; Max-Age=0; SameSite=Lax", RefreshTokenCookie)
}

// jsonResponse builds a JSON response with the given raw body.
func jsonResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// jsonError builds the {"error": ...} body used across all handlers.
func jsonError(status int, message string) events.APIGatewayProxyResponse {
	return jsonResponse(status, fmt.Sprintf(`{"error":%q}`, message))
}

// redirect builds a 302 to the given location.
func redirect(location string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusFound,
		Headers: map[string]string{
			"Location": location,
		},
	}
}

// withCookies attaches Set-Cookie headers to a response.
func withCookies(resp events.APIGatewayProxyResponse, cookies ...string) events.APIGatewayProxyResponse {
	if len(cookies) == 0 {
		return resp
	}
	if resp.MultiValueHeaders == nil {
		resp.MultiValueHeaders = make(map[string][]string)
	}
	resp.MultiValueHeaders["Set-Cookie"] = append(resp.MultiValueHeaders["Set-Cookie"], cookies...)
	return resp
}

package handlers

import (
	"net/http"
	"net/url"
)

// redirectWithError sends the browser back to the frontend error page.
func redirectWithError(w http.ResponseWriter, r *http.Request, frontendURL, errorType string) {
	query := url.Values{"error": {errorType}}
	http.Redirect(w, r, frontendURL+"/auth/error?"+query.Encode(), http.StatusTemporaryRedirect)
}

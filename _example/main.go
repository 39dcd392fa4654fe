// Command example demonstrates friendlyerrors with an HTTP server serving
// a Swagger UI and a validated JSON endpoint that returns flat, coded
// validation failures.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	fe "github.com/bd808/friendlyerrors"
	"github.com/bd808/friendlyerrors/openapi"
)

// Snippet is a sample request/response type.
type Snippet struct {
	Title    string `json:"title"`
	Code     string `json:"code"`
	Language string `json:"language"`
	Rating   int    `json:"rating"`
}

func (s *Snippet) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Title, fe.Required, fe.Length(1, 100)),
		fe.Field(&s.Code, fe.Required),
		fe.Field(&s.Language, fe.Required, fe.In("go", "python", "ruby")),
		fe.Field(&s.Rating, fe.Min(1), fe.Max(5)),
	}
}

// ValidateObject rejects snippets whose title repeats the language name.
func (s *Snippet) ValidateObject() error {
	if strings.EqualFold(s.Title, s.Language) {
		return errors.New("title must not equal the language")
	}
	return nil
}

func main() {
	// Build the OpenAPI spec. The POST endpoint picks up a 400 response
	// documenting the failure report envelope automatically.
	doc := openapi.DocBase("Example API", "Demonstrates friendlyerrors", "0.1.0")

	openapi.Post(doc, "/snippets", "createSnippet", openapi.Endpoint{
		Summary:  "Create a snippet",
		Request:  Snippet{},
		Response: Snippet{},
	})

	// Swagger UI
	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))

	// API endpoint
	http.HandleFunc("/snippets", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var snippet Snippet
		if rep := fe.DecodeAndReport(r.Body, &snippet); rep != nil {
			fe.WriteReport(w, rep)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snippet)
	})

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Swagger UI: http://localhost:8080/swagger/")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

// Command chi demonstrates friendlyerrors with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	fe "github.com/bd808/friendlyerrors"
	"github.com/bd808/friendlyerrors/openapi"
	"github.com/go-chi/chi/v5"
)

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

func main() {
	doc := openapi.DocBase("Example API (chi)", "Demonstrates friendlyerrors with chi", "0.1.0")

	openapi.Post(doc, "/snippets", "createSnippet", openapi.Endpoint{
		Summary:  "Create a snippet",
		Request:  Snippet{},
		Response: Snippet{},
	})

	r := chi.NewRouter()

	r.Handle("/swagger/*", openapi.SwaggerHandlerMust("/swagger/", doc))

	r.Post("/snippets", func(w http.ResponseWriter, r *http.Request) {
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
	log.Fatal(http.ListenAndServe(":8080", r))
}

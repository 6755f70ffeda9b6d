// mockcatalog runs a fake catalog provider for local development, so the
// storefront can be exercised without real API keys. It answers the two
// endpoints the service uses: product retrieval and checkout session create.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type price struct {
	ID         string `json:"id"`
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
}

type product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	DefaultPrice price    `json:"default_price"`
}

var catalog = map[string]product{
	"prod_Nd2Q5sbZwyT7u9": {
		ID:          "prod_Nd2Q5sbZwyT7u9",
		Name:        "Camiseta Beyond the Limits",
		Description: "Camiseta confortável em algodão, estampa exclusiva.",
		Images:      []string{"https://files.stripe.com/links/shirt-beyond.png"},
		DefaultPrice: price{
			ID:         "price_1MnYZvFAJ8rKfVy0",
			UnitAmount: 7990,
			Currency:   "brl",
		},
	},
	"prod_Nd3AKqGhyL2w8x": {
		ID:          "prod_Nd3AKqGhyL2w8x",
		Name:        "Camiseta Ignite Lab",
		Description: "",
		Images:      []string{"https://files.stripe.com/links/shirt-ignite.png"},
		DefaultPrice: price{
			ID:         "price_1MnYbHFAJ8rKfVy0",
			UnitAmount: 6490,
			Currency:   "brl",
		},
	},
}

func main() {
	addr := flag.String("addr", ":4242", "listen address")
	payURL := flag.String("pay-url", "https://pay.example", "base URL for fake checkout redirects")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/v1/products/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/v1/products/")
		p, ok := catalog[id]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"type":    "invalid_request_error",
					"message": fmt.Sprintf("No such product: '%s'", id),
				},
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p)
	})

	mux.HandleFunc("/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("line_items[0][price]") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"type":    "invalid_request_error",
					"message": "Missing line item price",
				},
			})
			return
		}
		id := "cs_test_" + uuid.NewString()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":  id,
			"url": *payURL + "/c/" + id,
		})
	})

	log.Printf("mock catalog listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

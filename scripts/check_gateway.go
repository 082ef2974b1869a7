package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/machinebox/graphql"
)

// Connectivity probe for the GraphQL gateway. Run with:
//
//	GATEWAY_URL=https://gateway.example.com/graphql go run scripts/check_gateway.go
func main() {
	endpoint := os.Getenv("GATEWAY_URL")
	if endpoint == "" {
		fmt.Fprintln(os.Stderr, "GATEWAY_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := graphql.NewClient(endpoint)
	req := graphql.NewRequest(`query { productCategories { id name } }`)

	var resp struct {
		ProductCategories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"productCategories"`
	}
	start := time.Now()
	if err := client.Run(ctx, req, &resp); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to reach gateway: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Gateway reachable in %s, %d categories visible\n",
		time.Since(start).Round(time.Millisecond), len(resp.ProductCategories))
}

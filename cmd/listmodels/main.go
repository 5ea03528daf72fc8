// Package main lists the generative models visible to GOOGLE_API_KEY and
// marks the ones that can serve generateContent, to help choose MODEL_NAME.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/phrazzld/travel-guide/internal/config"
	"github.com/phrazzld/travel-guide/internal/platform/gemini"
)

func main() {
	all := flag.Bool("all", false, "include models that do not support generateContent")
	timeout := flag.Duration("timeout", 30*time.Second, "overall request timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	models, err := gemini.ListModels(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to list models: %v", err)
	}

	if err := printModels(os.Stdout, models, *all, cfg.LLM.ModelName); err != nil {
		log.Fatalf("Failed to print models: %v", err)
	}
}

// printModels writes one row per model; the configured model is starred.
func printModels(w io.Writer, models []gemini.ModelInfo, all bool, configured string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tDISPLAY NAME\tGENERATE")
	for _, m := range models {
		supported := m.SupportsGenerateContent()
		if !supported && !all {
			continue
		}
		marker := ""
		if m.Name == configured {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", marker, m.Name, m.DisplayName, supported)
	}
	return tw.Flush()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/prompt"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/state"
)

func main() {
	schemaPath := flag.String("schema", "", "form schema file (YAML or JSON)")
	openapiPath := flag.String("openapi", "", "OpenAPI document path (alternative to -schema)")
	operation := flag.String("operation", "", "operation ID to derive the form from (with -openapi)")
	emitter := flag.String("emitter", "html", "output emitter: html or json")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "fill the form interactively before rendering")
	flag.Parse()

	ctx := context.Background()

	formSchema, err := loadSchema(ctx, *schemaPath, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	snapshot, err := buildSnapshot(ctx, formSchema, *interactive)
	if err != nil {
		log.Fatalf("Form session failed: %v", err)
	}

	gen, err := formstate.New()
	if err != nil {
		log.Fatalf("Failed to configure generator: %v", err)
	}

	rendered, err := gen.Emit(ctx, *emitter, formSchema, snapshot)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func loadSchema(ctx context.Context, schemaPath, openapiPath, operation string) (schema.Schema, error) {
	switch {
	case schemaPath != "" && openapiPath != "":
		return schema.Schema{}, errors.New("use -schema or -openapi, not both")
	case schemaPath != "":
		raw, err := os.ReadFile(schemaPath)
		if err != nil {
			return schema.Schema{}, err
		}
		return schema.Parse(raw)
	case openapiPath != "":
		if operation == "" {
			return schema.Schema{}, errors.New("-openapi requires -operation")
		}
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return schema.Schema{}, err
		}
		return schema.FromOpenAPI(ctx, raw, operation)
	default:
		return schema.Schema{}, errors.New("one of -schema or -openapi is required")
	}
}

func buildSnapshot(ctx context.Context, formSchema schema.Schema, interactive bool) (*state.Snapshot, error) {
	if !interactive {
		return state.NewBuilder().Build(), nil
	}

	session, err := prompt.New(formSchema, prompt.NewSurveyDriver())
	if err != nil {
		return nil, err
	}

	snapshot, err := session.Run(ctx)
	if errors.Is(err, prompt.ErrTooManyAttempts) {
		// Render the last attempt with its messages instead of bailing.
		return snapshot, nil
	}
	return snapshot, err
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/johnwards/temple/internal/api/admin"
	"github.com/johnwards/temple/internal/model"
	"github.com/johnwards/temple/internal/store"
	"github.com/johnwards/temple/internal/workspace"
)

func importFile(ctx context.Context, s *store.SQLiteStore, path string, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open workspace: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := workspace.Parse(f)
	if err != nil {
		return err
	}
	sum, err := admin.ImportData(ctx, s, doc)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	_, err = fmt.Fprintf(stdout, "imported %d attribute types, %d projects, %d models, %d attributes, %d associations\n",
		sum.AttributeTypes, sum.Projects, sum.Models, sum.Attributes, sum.Associations)
	return err
}

func export(ctx context.Context, s *store.SQLiteStore, stdout io.Writer) error {
	doc, err := workspace.Export(ctx, s)
	if err != nil {
		return err
	}
	return workspace.Write(stdout, doc)
}

// diagram prints the project diagram, or a single model's with args[1].
func diagram(ctx context.Context, s *store.SQLiteStore, args []string, stdout io.Writer) error {
	var (
		d   string
		err error
	)
	if len(args) == 2 {
		d, err = model.GetDiagram(ctx, s, model.GetRequest{ProjectSlug: args[0], ModelSlug: args[1]})
	} else {
		d, err = model.GetProjectDiagram(ctx, s, model.ListRequest{ProjectSlug: args[0]})
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, strings.TrimSuffix(d, "\n")+"\n")
	return err
}

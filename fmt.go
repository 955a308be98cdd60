package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wiredraw/document"
)

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Validate and normalize a drawing file",
		Long: "fmt loads a drawing, validates it, reports any wire endpoints that\n" +
			"reference missing terminals, and rewrites the file in canonical form.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args[0], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", true, "rewrite the file in place")
	return cmd
}

func runFmt(cmd *cobra.Command, path string, write bool) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	for _, id := range doc.Unresolved {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: unresolved terminal %q\n", path, id)
	}
	if !write {
		data, err := document.Marshal(doc)
		if err != nil {
			return err
		}
		cmd.Print(string(data))
		return nil
	}
	return document.Save(doc, path)
}

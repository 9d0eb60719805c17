package tasks

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteJSON writes tasks as an indented JSON array. A nil slice is written as [].
func WriteJSON(w io.Writer, list []Task) error {
	if list == nil {
		list = []Task{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}

// WriteTable writes tasks as a human readable table.
func WriteTable(w io.Writer, list []Task) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Description", "Assigned To", "Deadline", "Priority"})

	for i, t := range list {
		tw.AppendRow(table.Row{i + 1, t.Description, t.AssignedTo, t.Deadline, string(t.Priority)})
	}

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

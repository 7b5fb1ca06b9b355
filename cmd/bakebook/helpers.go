// Shared output and argument helpers for the bakebook subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ovenworks/bakebook/internal/command"
)

// printResult renders a command result: plain feedback by default, or a
// JSON document with the focus fields when --json is set.
func printResult(res command.Result) error {
	if !flagJSON {
		fmt.Println(res.Feedback)
		return nil
	}
	payload := struct {
		Feedback     string `json:"feedback"`
		FocusedView  string `json:"focusedView"`
		FocusedIndex int    `json:"focusedIndex"`
	}{
		Feedback:     res.Feedback,
		FocusedView:  res.Focus.View.String(),
		FocusedIndex: res.Focus.Index,
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseIndexArg converts a one-based positional index argument into a
// zero-based index.
func parseIndexArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("index must be a positive integer, got %q", arg)
	}
	return n - 1, nil
}

// parseItemSpecs converts repeated --item "NAME:QUANTITY" flags into
// item specs. The last colon separates the quantity, so pastry names
// may not contain colons.
func parseItemSpecs(raw []string) ([]command.ItemSpec, error) {
	specs := make([]command.ItemSpec, 0, len(raw))
	for _, s := range raw {
		sep := strings.LastIndex(s, ":")
		if sep <= 0 || sep == len(s)-1 {
			return nil, fmt.Errorf("item must be NAME:QUANTITY, got %q", s)
		}
		quantity, err := strconv.Atoi(s[sep+1:])
		if err != nil {
			return nil, fmt.Errorf("item quantity must be an integer, got %q", s[sep+1:])
		}
		specs = append(specs, command.ItemSpec{
			PastryName: strings.TrimSpace(s[:sep]),
			Quantity:   quantity,
		})
	}
	return specs, nil
}

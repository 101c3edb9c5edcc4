// Package scriptfilter implements the JSON contract Alfred expects from a
// script filter. Workflows that ship a compiled binary build an Output,
// append Items to it and hand it to Run, which writes the JSON document to
// stdout for Alfred to render.
package scriptfilter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sahilm/fuzzy"
)

// ModKey identifies a modifier key for Item.Mods.
type ModKey string

const (
	ModCmd     ModKey = "cmd"
	ModOption  ModKey = "alt"
	ModControl ModKey = "ctrl"
	ModShift   ModKey = "shift"
	ModFn      ModKey = "fn"
)

// Icon is displayed next to an item. The zero value means the workflow icon.
type Icon struct {
	Path string `json:"path"`
	Type string `json:"type,omitempty"`
}

// ImageIcon uses the image file at path as the icon.
func ImageIcon(path string) *Icon {
	return &Icon{Path: path}
}

// FileIcon uses the icon of the file at path, e.g. an .app bundle.
func FileIcon(path string) *Icon {
	return &Icon{Path: path, Type: "fileicon"}
}

// UTIIcon uses the system icon for a Uniform Type Identifier, e.g.
// "public.jpeg".
func UTIIcon(uti string) *Icon {
	return &Icon{Path: uti, Type: "filetype"}
}

func (i *Icon) validate() error {
	switch i.Type {
	case "", "fileicon", "filetype":
		return nil
	}
	return fmt.Errorf("icon type must be empty, \"fileicon\" or \"filetype\", got %q", i.Type)
}

// Mod overrides parts of an Item while its modifier key is held.
type Mod struct {
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Icon     *Icon  `json:"icon,omitempty"`
	Valid    *bool  `json:"valid,omitempty"`
}

// Text is what the user gets when copying the selected row with ⌘C or
// displaying large type with ⌘L.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// Action carries typed values to Universal Actions when the item is actioned.
type Action struct {
	Text []string `json:"text,omitempty"`
	URL  []string `json:"url,omitempty"`
	File []string `json:"file,omitempty"`
	Auto []string `json:"auto,omitempty"`
}

// Item types. TypeFile makes Alfred treat the arg as a file on disk;
// TypeFileSkipCheck does the same without checking that the file exists.
const (
	TypeDefault       = "default"
	TypeFile          = "file"
	TypeFileSkipCheck = "file:skipcheck"
)

// Item is one selectable row in Alfred's result list.
type Item struct {
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle,omitempty"`
	UID          string          `json:"uid,omitempty"`
	Arg          string          `json:"arg,omitempty"`
	Icon         *Icon           `json:"icon,omitempty"`
	Valid        *bool           `json:"valid,omitempty"`
	Match        string          `json:"match,omitempty"`
	Autocomplete string          `json:"autocomplete,omitempty"`
	Mods         map[ModKey]*Mod `json:"mods,omitempty"`
	Text         *Text           `json:"text,omitempty"`
	QuicklookURL string          `json:"quicklookurl,omitempty"`
	Action       *Action         `json:"action,omitempty"`
	Type         string          `json:"type,omitempty"`
}

func (it *Item) validate() error {
	if it.Title == "" {
		return fmt.Errorf("item title must be set")
	}
	if it.Icon != nil {
		if err := it.Icon.validate(); err != nil {
			return err
		}
	}
	switch it.Type {
	case "", TypeDefault, TypeFile, TypeFileSkipCheck:
	default:
		return fmt.Errorf("unknown item type %q", it.Type)
	}
	if it.Text != nil && it.Text.Copy == "" && it.Text.LargeType == "" {
		return fmt.Errorf("item text needs at least one of copy or largetype")
	}
	for key, mod := range it.Mods {
		switch key {
		case ModCmd, ModOption, ModControl, ModShift, ModFn:
		default:
			return fmt.Errorf("unknown modifier key %q", key)
		}
		if mod != nil && mod.Icon != nil {
			if err := mod.Icon.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Items is an ordered list of result rows. It implements fuzzy.Source so a
// workflow can narrow its results by the user's query.
type Items []*Item

// String implements fuzzy.Source. Alfred matches on the item's match field
// when set, falling back to the title, so Filter does the same.
func (its Items) String(i int) string {
	if its[i].Match != "" {
		return its[i].Match
	}
	return its[i].Title
}

// Len implements fuzzy.Source.
func (its Items) Len() int { return len(its) }

// Filter returns the items fuzzy-matching query, best match first. An empty
// query returns all items in their original order.
func (its Items) Filter(query string) Items {
	if query == "" {
		return its
	}
	matches := fuzzy.FindFrom(query, its)
	found := make(Items, 0, len(matches))
	for _, m := range matches {
		found = append(found, its[m.Index])
	}
	return found
}

// Output is the document a script filter writes to stdout.
type Output struct {
	// Rerun asks Alfred to run the filter again after this many seconds.
	// Zero disables it; otherwise it must be between 0.1 and 5.
	Rerun float64 `json:"rerun,omitempty"`
	Items Items   `json:"items"`
	// Variables are passed to downstream workflow objects and to reruns of
	// this filter, which makes them useful for keeping state between runs.
	Variables map[string]string `json:"variables,omitempty"`
}

// Append adds items to the end of the output, preserving their order.
func (o *Output) Append(items ...*Item) *Output {
	o.Items = append(o.Items, items...)
	return o
}

func (o *Output) validate() error {
	if o.Rerun != 0 && (o.Rerun < 0.1 || o.Rerun > 5) {
		return fmt.Errorf("rerun must be between 0.1 and 5 seconds, got %v", o.Rerun)
	}
	if o.Items == nil {
		return fmt.Errorf("output has no items")
	}
	for _, it := range o.Items {
		if err := it.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Emit validates the output and writes it to w as a single JSON document
// followed by a newline.
func (o *Output) Emit(w io.Writer) error {
	if err := o.validate(); err != nil {
		return err
	}
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/go-mclib/data/pkg/data/items"
	"github.com/go-mclib/menus/pkg/inventory"
	"github.com/go-mclib/menus/pkg/menu"
	"github.com/go-mclib/menus/pkg/session"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	showPage int
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show <layout.yml>",
	Short: "Print one page of a layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLayout(args[0], cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		s.OpenPage(showPage)
		if showJSON {
			return writeJSON(cmd.OutOrStdout(), s)
		}
		writeGrid(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showPage, "page", "p", 1, "page to render (clamped)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the page as JSON")
}

type slotJSON struct {
	Slot   int    `json:"slot"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Key    string `json:"key,omitempty"`
	Item   string `json:"item"`
	Count  int    `json:"count"`
}

type pageJSON struct {
	Title        string     `json:"title"`
	Rows         int        `json:"rows"`
	Page         int        `json:"page"`
	Pages        int        `json:"pages"`
	ItemsPerPage int        `json:"items_per_page"`
	HasPrevious  bool       `json:"has_previous"`
	HasNext      bool       `json:"has_next"`
	Slots        []slotJSON `json:"slots"`
}

func snapshot(s *session.Session[*items.ItemStack]) pageJSON {
	p := s.Pagination
	out := pageJSON{
		Title:        s.Title,
		Rows:         s.Rows(),
		Page:         p.Page(),
		Pages:        p.PageCount(),
		ItemsPerPage: p.ItemsPerPage(),
		HasPrevious:  !p.IsFirst(),
		HasNext:      !p.IsLast(),
		Slots:        []slotJSON{},
	}
	for slot := range s.Contents.Size() {
		if s.Contents.IsEmpty(slot) {
			continue
		}
		stack, _ := s.Contents.Get(slot)
		row, col, key, hasKey := s.Resolve(slot)
		entry := slotJSON{
			Slot:   slot,
			Row:    row,
			Column: col,
			Item:   items.ItemName(stack.ID),
			Count:  int(stack.Count),
		}
		if hasKey {
			entry.Key = string(key)
		}
		out.Slots = append(out.Slots, entry)
	}
	return out
}

func writeJSON(w io.Writer, s *session.Session[*items.ItemStack]) error {
	data, err := json.MarshalIndent(snapshot(s), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

const showCellWidth = 10

func writeGrid(w io.Writer, s *session.Session[*items.ItemStack]) {
	p := s.Pagination
	bold := color.New(color.Bold).SprintFunc()
	placed := color.New(color.FgCyan).SprintFunc()
	decor := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s  page %d/%d\n", bold(s.Title), p.Page(), p.PageCount())
	isPlaced := make(map[int]bool)
	for _, slot := range p.Placed() {
		isPlaced[slot] = true
	}
	for row := range s.Rows() {
		cells := make([]string, 0, menu.Width)
		for col := range menu.Width {
			slot := menu.ToSlot(row, col)
			text := "."
			if !s.Contents.IsEmpty(slot) {
				stack, _ := s.Contents.Get(slot)
				text = inventory.Label(stack)
			}
			text = fitCell(text)
			switch {
			case isPlaced[slot]:
				text = placed(text)
			case !s.Contents.IsEmpty(slot):
				text = decor(text)
			}
			cells = append(cells, text)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	if !p.IsLast() {
		fmt.Fprintf(w, "next: page %d\n", p.Copy().Next().Page())
	}
}

func fitCell(text string) string {
	r := []rune(text)
	if len(r) > showCellWidth {
		r = r[:showCellWidth]
	}
	return string(r) + strings.Repeat(" ", showCellWidth-len(r))
}

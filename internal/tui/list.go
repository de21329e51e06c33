// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
)

type row struct {
	id     string
	status string
	cells  []string
}

// listPage is one page of a resource listing rendered as rows.
type listPage struct {
	rows       []row
	page       int
	totalPages int
	total      int64
}

type listModel struct {
	spec    listSpec
	data    listPage
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel(spec listSpec) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spec: spec, spinner: s, loading: true}
}

func (m listModel) current() (row, bool) {
	if len(m.data.rows) == 0 || m.idx < 0 || m.idx >= len(m.data.rows) {
		return row{}, false
	}
	return m.data.rows[m.idx], true
}

func (m listModel) hasNext() bool {
	return m.data.page+1 < m.data.totalPages
}

func (m listModel) hasPrev() bool {
	return m.data.page > 0
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.data.rows) == 0:
		b.WriteString("Nothing here yet\n")
	default:
		cells := make([][]string, len(m.data.rows))
		for i, r := range m.data.rows {
			cells[i] = r.cells
		}
		b.WriteString(renderTable(m.spec.headers, cells, m.idx))
		b.WriteString("\n")
		pages := m.data.totalPages
		if pages == 0 {
			pages = 1
		}
		b.WriteString(fmt.Sprintf("\nPage %d of %d · %d total\n", m.data.page+1, pages, m.data.total))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hot := []string{"←/→: page", "c: copy id", "r: reload", "esc: back"}
	if m.spec.detailPath != nil {
		hot = append([]string{"enter: open"}, hot...)
	}
	if m.spec.nextStatus != nil {
		hot = append(hot, "s: next status")
	}
	if m.spec.remove != nil {
		hot = append(hot, "d: delete")
	}
	if m.spec.creatable {
		hot = append(hot, "n: new")
	}

	return renderPage(m.spec.title, strings.TrimRight(b.String(), "\n"), strings.Join(hot, " │ "))
}

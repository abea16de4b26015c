// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/ranking"
	"github.com/BayronJDv/funcional-final/timeline"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// renderTable lays out one row per itinerary with its three costs.
func renderTable(src timeline.GMTSource, its []core.Itinerary) string {
	total := ranking.TotalTime(src)
	flight := ranking.FlightTime(src)
	stops := ranking.StopCount()

	rows := make([][]string, len(its))
	for i, it := range its {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strings.Join(it.Codes(), " → "),
			flightNumbers(it),
			departs(it),
			arrives(it),
			strconv.Itoa(stops(it)),
			duration(flight(it)),
			duration(total(it)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "ROUTE", "FLIGHTS", "DEPARTS", "ARRIVES", "STOPS", "IN AIR", "TOTAL").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String()
}

func flightNumbers(it core.Itinerary) string {
	parts := make([]string, len(it))
	for i, f := range it {
		parts[i] = fmt.Sprintf("%s%d", f.Airline, f.Number)
	}

	return strings.Join(parts, " ")
}

// departs and arrives print local clock times, as printed on a ticket.
func departs(it core.Itinerary) string {
	if len(it) == 0 {
		return "-"
	}

	return fmt.Sprintf("%02d:%02d", it[0].DepHour, it[0].DepMinute)
}

func arrives(it core.Itinerary) string {
	if len(it) == 0 {
		return "-"
	}
	last := it[len(it)-1]

	return fmt.Sprintf("%02d:%02d", last.ArrHour, last.ArrMinute)
}

func duration(minutes int) string {
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

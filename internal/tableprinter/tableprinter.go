// Package tableprinter provides behavior to write tabular data to a given
// destination.
package tableprinter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/drills/core"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = tabwriter.FilterHTML
)

// NewTabWriter returns a tabwriter that transforms tabbed columns into aligned
// text.
func NewTabWriter(output io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(output, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
}

// PrintTable writes a table with headers to a given output destination. Rows
// shorter than the header are padded with empty cells.
func PrintTable(output io.Writer, headers []string, rows [][]string) {
	w := NewTabWriter(output)

	// column headers are at the top, so they are written first
	_, _ = fmt.Fprintln(w, strings.Join(lo.Map(headers, func(col string, _ int) string {
		return strings.ToUpper(col)
	}), "\t"))

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		_, _ = fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	_ = w.Flush()
}

// PrintCoupons writes a table of coupon codes and their discount percentage.
func PrintCoupons(output io.Writer, coupons []core.Coupon, logger log.Logger) {
	if len(coupons) == 0 {
		logger.Warningf("No coupons configured")
		return
	}
	rows := lo.Map(coupons, func(coupon core.Coupon, _ int) []string {
		return []string{
			coupon.Code,
			strconv.FormatFloat(coupon.Discount*100, 'f', -1, 64) + "%",
		}
	})
	PrintTable(output, []string{"code", "discount"}, rows)
}

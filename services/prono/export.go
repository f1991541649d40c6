package prono

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/punoko/hfr/lib/crawl"
)

// Export writes one comma-separated line per accepted post in entry
// order: user,,winner1,total1,...,winner15,total15.
func Export(w io.Writer, entries *crawl.Table[string, Record]) {
	entries.Each(func(_ string, record Record) {
		fields := make([]string, 0, 2+len(record.Results)*2)
		fields = append(fields, record.User, "")
		for _, result := range record.Results {
			fields = append(fields, string(result.Winner), strconv.Itoa(result.Total))
		}
		fmt.Fprintln(w, strings.Join(fields, ","))
	})
}
